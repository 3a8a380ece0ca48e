package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/format"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/texttools/digest"
)

var keyNextAlgorithm = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next algorithm"))

// DigestView shows the digest of its input under every configured algorithm
// and highlights the chosen one.
type DigestView struct {
	env     Env
	input   textarea.Model
	algs    []digest.Algorithm
	chosen  int
	memo    memo[string, []digest.Result]
	results []digest.Result
	width   int
}

// NewDigest creates an empty digest view.
func NewDigest(env Env) View {
	algs := env.Config.DigestAlgorithms()
	if len(algs) == 0 {
		algs = digest.DefaultAlgorithms()
	}

	v := &DigestView{
		env:   env,
		input: newTextarea("Text to hash"),
		algs:  algs,
	}
	if chosen, err := digest.Parse(env.Config.Digest.Chosen); err == nil {
		for i, a := range algs {
			if a == chosen {
				v.chosen = i
			}
		}
	}
	v.recompute()
	return v
}

func (v *DigestView) Init() tea.Cmd { return nil }

func (v *DigestView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keyNextAlgorithm) {
		v.chosen = (v.chosen + 1) % len(v.algs)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.recompute()
	return v, cmd
}

func (v *DigestView) recompute() {
	v.results, _, _ = v.memo.get(v.input.Value(), func(text string) ([]digest.Result, error) {
		return digest.All(text, v.algs...), nil
	})
}

// Chosen returns the highlighted algorithm.
func (v *DigestView) Chosen() digest.Algorithm { return v.algs[v.chosen] }

func (v *DigestView) Focus() tea.Cmd { return v.input.Focus() }
func (v *DigestView) Blur()          { v.input.Blur() }

func (v *DigestView) SetSize(width, _ int) {
	v.width = width
	v.input.SetWidth(textareaWidth(width))
}

func (v *DigestView) Result() string {
	for _, r := range v.results {
		if r.Algorithm == v.Chosen() {
			return r.Hex
		}
	}
	return ""
}

func (v *DigestView) ShortHelp() []key.Binding {
	return []key.Binding{keyNextAlgorithm, KeyCopy}
}

func (v *DigestView) View() string {
	nameWidth := 0
	for _, a := range v.algs {
		nameWidth = max(nameWidth, len(a.DisplayName()))
	}

	hexWidth := 0
	if v.width > 0 {
		hexWidth = max(v.width-nameWidth-6, 8)
	}

	var rows []string
	for _, r := range v.results {
		marker, style := "  ", styles.ValueStyle
		if r.Algorithm == v.Chosen() {
			marker, style = "▸ ", styles.ChosenStyle
		}
		label := styles.LabelStyle.Render(fmt.Sprintf("%-*s", nameWidth, r.Algorithm.DisplayName()))
		rows = append(rows, marker+label+"  "+style.Render(format.Truncate(r.Hex, hexWidth)))
	}

	return joinNonEmpty(
		renderTitle("Message digest"),
		v.input.View(),
		strings.Join(rows, "\n"),
	)
}
