package format

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// IsDarkBG is set once before bubbletea starts (in main.go) so that glamour
// never issues its own OSC 11 query while the program is running.
var IsDarkBG bool

// mdRenderer renders markdown to terminal-formatted output.
var (
	mdRenderer      *glamour.TermRenderer
	mdRendererMu    sync.Mutex
	mdRendererWidth int
)

// InitMarkdownRenderer initializes the glamour renderer at the given width.
func InitMarkdownRenderer(width int) {
	if width <= 0 {
		width = 80
	}
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	if width == mdRendererWidth && mdRenderer != nil {
		return
	}
	// glamour.WithAutoStyle() must NOT be used here: it queries the terminal
	// (OSC 11) which races with bubbletea's input handling.
	style := glamourstyles.LightStyleConfig
	if IsDarkBG {
		style = glamourstyles.DarkStyleConfig
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	mdRenderer = r
	mdRendererWidth = width
}

// RenderMarkdown converts markdown text to terminal-formatted output. Before
// InitMarkdownRenderer has run, or if rendering fails, text is returned
// unchanged.
func RenderMarkdown(text string) string {
	mdRendererMu.Lock()
	r := mdRenderer
	mdRendererMu.Unlock()

	if r == nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// Truncate shortens s to at most n runes, appending "…" when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
