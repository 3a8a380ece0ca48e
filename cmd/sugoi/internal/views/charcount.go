package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/texttools/charcount"
)

// CharCounterView counts what is typed into it.
type CharCounterView struct {
	env    Env
	input  textarea.Model
	memo   memo[string, charcount.Counts]
	counts charcount.Counts
}

// NewCharCounter creates an empty character counter.
func NewCharCounter(env Env) View {
	v := &CharCounterView{
		env:   env,
		input: newTextarea("Text to count"),
	}
	v.input.SetHeight(8)
	v.recompute()
	return v
}

func (v *CharCounterView) Init() tea.Cmd { return nil }

func (v *CharCounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.recompute()
	return v, cmd
}

func (v *CharCounterView) recompute() {
	v.counts, _, _ = v.memo.get(v.input.Value(), func(text string) (charcount.Counts, error) {
		return charcount.Count(text), nil
	})
}

// Counts returns the counts for the current input.
func (v *CharCounterView) Counts() charcount.Counts { return v.counts }

func (v *CharCounterView) Focus() tea.Cmd { return v.input.Focus() }
func (v *CharCounterView) Blur()          { v.input.Blur() }

func (v *CharCounterView) SetSize(width, _ int) {
	v.input.SetWidth(textareaWidth(width))
}

func (v *CharCounterView) Result() string {
	c := v.counts
	return fmt.Sprintf("characters=%d words=%d lines=%d bytes=%d", c.Characters, c.Words, c.Lines, c.Bytes)
}

func (v *CharCounterView) ShortHelp() []key.Binding {
	return []key.Binding{KeyCopy}
}

func (v *CharCounterView) View() string {
	c := v.counts
	rows := []struct {
		label string
		n     int
	}{
		{"Characters", c.Characters},
		{"Words", c.Words},
		{"Lines", c.Lines},
		{"Bytes (UTF-8)", c.Bytes},
		{"Graphemes", c.Graphemes},
		{"Columns", c.Columns},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, styles.LabelStyle.Render(fmt.Sprintf("%-14s", r.label))+styles.ValueStyle.Render(fmt.Sprintf("%8d", r.n)))
	}

	return joinNonEmpty(
		renderTitle("Character counter"),
		v.input.View(),
		strings.Join(lines, "\n"),
	)
}
