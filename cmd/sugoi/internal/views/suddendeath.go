package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/texttools/suddendeath"
)

type suddenDeathKey struct {
	text string
	seed uint64
}

// SuddenDeathView wraps its input in the sudden death balloon.
type SuddenDeathView struct {
	env   Env
	input textarea.Model
	seed  uint64
	memo  memo[suddenDeathKey, string]
	out   string
}

// NewSuddenDeath creates an empty sudden death generator.
func NewSuddenDeath(env Env) View {
	v := &SuddenDeathView{
		env:   env,
		input: newTextarea(suddendeath.DefaultText),
		seed:  env.Seed(),
	}
	v.input.SetHeight(3)
	v.recompute()
	return v
}

func (v *SuddenDeathView) Init() tea.Cmd { return nil }

func (v *SuddenDeathView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keyReroll) {
		v.seed = v.env.Seed()
		v.recompute()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.recompute()
	return v, cmd
}

func (v *SuddenDeathView) recompute() {
	k := suddenDeathKey{text: v.input.Value()}
	if k.text == "" {
		// Only empty input depends on the seed.
		k.seed = v.seed
	}
	v.out, _, _ = v.memo.get(k, func(k suddenDeathKey) (string, error) {
		switch {
		case k.text != "":
			return suddendeath.Generate(k.text), nil
		case v.env.Config.SuddenDeath.DefaultText != "":
			return suddendeath.Generate(v.env.Config.SuddenDeath.DefaultText), nil
		default:
			return suddendeath.Random(k.seed), nil
		}
	})
}

func (v *SuddenDeathView) Focus() tea.Cmd { return v.input.Focus() }
func (v *SuddenDeathView) Blur()          { v.input.Blur() }

func (v *SuddenDeathView) SetSize(width, _ int) {
	v.input.SetWidth(textareaWidth(width))
}

func (v *SuddenDeathView) Result() string { return v.out }

func (v *SuddenDeathView) ShortHelp() []key.Binding {
	return []key.Binding{keyReroll, KeyCopy}
}

func (v *SuddenDeathView) View() string {
	return joinNonEmpty(
		renderTitle("突然の死ジェネレーター"),
		styles.DimStyle.Render(v.env.Printer.Sprintf(i18n.MsgEmptyUsesRandom)),
		v.input.View(),
		styles.ValueStyle.Render(v.out),
	)
}
