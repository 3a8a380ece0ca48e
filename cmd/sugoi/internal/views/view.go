// Package views holds one Bubble Tea sub-model per tool plus the index
// screen, and the registry that maps routes to them.
package views

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/config"
	"github.com/germanamz/sugoi/pkg/texttools/b64"
	"github.com/germanamz/sugoi/pkg/texttools/baseconv"
	"github.com/germanamz/sugoi/pkg/texttools/regexgen"
	"golang.org/x/text/message"
)

// View is one screen of the content area. A View owns its input state; the
// app discards it on navigation and mounts a fresh one.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
	// Focus gives the view keyboard input; Blur takes it away.
	Focus() tea.Cmd
	Blur()
	SetSize(width, height int)
	// Result is the value the copy key puts on the clipboard; "" when there
	// is nothing to copy.
	Result() string
	ShortHelp() []key.Binding
}

// Env carries the dependencies views are built from.
type Env struct {
	Config  config.Config
	Printer *message.Printer
	Logger  *slog.Logger
	// Seed returns a seed for views with pseudo-random output.
	Seed func() uint64
}

// NewEnv fills in defaults for anything left zero.
func NewEnv(cfg config.Config, log *slog.Logger) Env {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Env{
		Config:  cfg,
		Printer: i18n.NewPrinter(cfg.Language),
		Logger:  log,
		Seed:    rand.Uint64,
	}
}

// memo caches a derived value for one key. The value is recomputed only
// when the key changes, so a view's output is a function of its tracked
// input and parameters and nothing else.
type memo[K comparable, V any] struct {
	valid bool
	key   K
	val   V
	err   error
}

// get returns the cached value for key, computing it when key differs from
// the cached one. changed reports whether fn ran.
func (m *memo[K, V]) get(key K, fn func(K) (V, error)) (val V, changed bool, err error) {
	if m.valid && m.key == key {
		return m.val, false, m.err
	}
	m.val, m.err = fn(key)
	m.key = key
	m.valid = true
	return m.val, true, m.err
}

// logFailure records a transform failure at debug level.
func logFailure(log *slog.Logger, tool string, err error) {
	if err != nil {
		log.Debug("transform failed", "tool", tool, "error", err)
	}
}

// ErrorMessage converts a transform error into a localized sentence.
func ErrorMessage(p *message.Printer, err error) string {
	var (
		decErr     *b64.DecodeError
		parseErr   *baseconv.ParseError
		baseErr    *baseconv.BaseError
		patternErr *regexgen.PatternError
	)

	switch {
	case errors.As(err, &decErr):
		return p.Sprintf(i18n.MsgInvalidBase64, decErr.Offset, decErr.Variant.String())
	case errors.As(err, &parseErr):
		if parseErr.Pos < 0 {
			return p.Sprintf(i18n.MsgEmptyNumber)
		}
		return p.Sprintf(i18n.MsgInvalidDigit, parseErr.Digit, parseErr.Pos, parseErr.Base)
	case errors.As(err, &baseErr):
		return p.Sprintf(i18n.MsgBaseOutOfRange, baseErr.Base, baseconv.MinBase, baseconv.MaxBase)
	case errors.As(err, &patternErr):
		return p.Sprintf(i18n.MsgInvalidPattern, patternErr.Err)
	default:
		return p.Sprintf(i18n.MsgUnknownError, err)
	}
}

// Shared key bindings.
var (
	keyToggleMode = key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "mode"))
	keyReroll     = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reroll"))
	KeyCopy       = key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy result"))
)

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(5)
	// Output only changes on input, so the cursor does not blink.
	ta.Cursor.SetMode(cursor.CursorStatic)
	return ta
}

func newTextinput(prompt string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// textareaWidth is the usable textarea width inside a content pane.
func textareaWidth(w int) int {
	return max(w-2, 10)
}

func renderTitle(title string) string {
	return styles.ViewTitleStyle.Render(title)
}

func renderOption(label string, on bool) string {
	if on {
		return styles.OptionOnStyle.Render("[x] " + label)
	}
	return styles.OptionOffStyle.Render("[ ] " + label)
}

// renderOutcome shows either the error block or the result box.
func renderOutcome(p *message.Printer, result string, err error, width int) string {
	if err != nil {
		return styles.ErrorBlockStyle.Width(max(width-2, 10)).Render(ErrorMessage(p, err))
	}
	if result == "" {
		return ""
	}
	return styles.ResultBox.Width(max(width-4, 10)).Render(result)
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
