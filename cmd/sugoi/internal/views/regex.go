package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/texttools/regexgen"
)

type regexKey struct {
	text     string
	generate bool
	seed     uint64
}

// RegexView infers a pattern from sample lines, or in generate mode
// produces sample strings from a pattern.
type RegexView struct {
	env      Env
	input    textarea.Model
	generate bool
	seed     uint64
	samples  int
	memo     memo[regexKey, string]
	out      string
	err      error
	width    int
}

// NewRegex creates an empty regex view in infer mode.
func NewRegex(env Env) View {
	v := &RegexView{
		env:     env,
		input:   newTextarea("One sample per line"),
		seed:    env.Seed(),
		samples: max(env.Config.Regex.Samples, 1),
	}
	v.recompute()
	return v
}

func (v *RegexView) Init() tea.Cmd { return nil }

func (v *RegexView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keyToggleMode):
			v.generate = !v.generate
			if v.generate {
				v.input.Placeholder = "Regular expression"
			} else {
				v.input.Placeholder = "One sample per line"
			}
			v.recompute()
			return v, nil
		case key.Matches(k, keyReroll):
			v.seed = v.env.Seed()
			v.recompute()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.recompute()
	return v, cmd
}

func (v *RegexView) recompute() {
	k := regexKey{text: v.input.Value(), generate: v.generate}
	if v.generate {
		k.seed = v.seed
	}
	out, changed, err := v.memo.get(k, func(k regexKey) (string, error) {
		if !k.generate {
			samples := sampleLines(k.text)
			if len(samples) == 0 {
				return "", nil
			}
			return regexgen.Infer(samples), nil
		}
		pattern := strings.TrimSpace(k.text)
		if pattern == "" {
			return "", nil
		}
		strs, err := regexgen.Generate(pattern, v.samples, k.seed)
		if err != nil {
			return "", err
		}
		return strings.Join(strs, "\n"), nil
	})
	v.out, v.err = out, err
	if changed {
		logFailure(v.env.Logger, "regex", err)
	}
}

// sampleLines splits text into lines, dropping blank ones.
func sampleLines(text string) []string {
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func (v *RegexView) Focus() tea.Cmd { return v.input.Focus() }
func (v *RegexView) Blur()          { v.input.Blur() }

func (v *RegexView) SetSize(width, _ int) {
	v.width = width
	v.input.SetWidth(textareaWidth(width))
}

func (v *RegexView) Result() string {
	if v.err != nil {
		return ""
	}
	return v.out
}

func (v *RegexView) ShortHelp() []key.Binding {
	if v.generate {
		return []key.Binding{keyToggleMode, keyReroll, KeyCopy}
	}
	return []key.Binding{keyToggleMode, KeyCopy}
}

func (v *RegexView) View() string {
	hint := i18n.MsgEnterSamples
	if v.generate {
		hint = i18n.MsgEnterPattern
	}

	mode := lipgloss.JoinHorizontal(lipgloss.Top,
		renderOption("infer from samples", !v.generate), "  ",
		renderOption("generate from pattern", v.generate),
	)

	return joinNonEmpty(
		renderTitle("Regex generator"),
		mode,
		styles.DimStyle.Render(v.env.Printer.Sprintf(hint)),
		v.input.View(),
		renderOutcome(v.env.Printer, v.out, v.err, v.width),
	)
}
