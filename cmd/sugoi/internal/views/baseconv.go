package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/pkg/texttools/baseconv"
)

var (
	keyNextField = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field"))
	keyPrevField = key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field"))
)

const (
	fieldNumber = iota
	fieldFrom
	fieldTo
	fieldCount
)

type baseConvKey struct {
	number, from, to string
}

type baseConvResult struct {
	value  string
	to     int
	common []baseconv.Conversion
}

// BaseConverterView converts a numeral between two bases and also shows it
// in the common bases.
type BaseConverterView struct {
	env    Env
	fields [fieldCount]textinput.Model
	focus  int
	memo   memo[baseConvKey, baseConvResult]
	out    baseConvResult
	err    error
	width  int
}

// NewBaseConverter creates an empty base converter with the configured
// default bases.
func NewBaseConverter(env Env) View {
	v := &BaseConverterView{env: env}

	number := newTextinput("number › ")
	number.Placeholder = "ff"

	from := newTextinput("from base › ")
	from.CharLimit = 2
	from.SetValue(strconv.Itoa(env.Config.BaseConverter.From))

	to := newTextinput("to base › ")
	to.CharLimit = 2
	to.SetValue(strconv.Itoa(env.Config.BaseConverter.To))

	v.fields = [fieldCount]textinput.Model{number, from, to}
	v.recompute()
	return v
}

func (v *BaseConverterView) Init() tea.Cmd { return nil }

func (v *BaseConverterView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keyNextField):
			return v, v.setFocus((v.focus + 1) % fieldCount)
		case key.Matches(k, keyPrevField):
			return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		}
	}

	prev := v.fields[v.focus].Value()

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)

	// Base fields accept decimal digits only.
	if v.focus != fieldNumber && strings.Trim(v.fields[v.focus].Value(), "0123456789") != "" {
		v.fields[v.focus].SetValue(prev)
	}

	v.recompute()
	return v, cmd
}

func (v *BaseConverterView) setFocus(i int) tea.Cmd {
	v.fields[v.focus].Blur()
	v.focus = i
	return v.fields[v.focus].Focus()
}

func (v *BaseConverterView) recompute() {
	k := baseConvKey{
		number: v.fields[fieldNumber].Value(),
		from:   v.fields[fieldFrom].Value(),
		to:     v.fields[fieldTo].Value(),
	}
	out, changed, err := v.memo.get(k, convertFields)
	v.out, v.err = out, err
	if changed {
		logFailure(v.env.Logger, "base-converter", err)
	}
}

func convertFields(k baseConvKey) (baseConvResult, error) {
	from, _ := strconv.Atoi(k.from)
	to, _ := strconv.Atoi(k.to)

	if from < baseconv.MinBase || from > baseconv.MaxBase {
		return baseConvResult{}, &baseconv.BaseError{Base: from}
	}
	if to < baseconv.MinBase || to > baseconv.MaxBase {
		return baseConvResult{}, &baseconv.BaseError{Base: to}
	}

	// A fresh, empty field shows nothing rather than an error.
	if strings.TrimSpace(k.number) == "" {
		return baseConvResult{}, nil
	}

	value, err := baseconv.Convert(k.number, from, to)
	if err != nil {
		return baseConvResult{}, err
	}
	common, err := baseconv.Common(k.number, from)
	if err != nil {
		return baseConvResult{}, err
	}
	return baseConvResult{value: value, to: to, common: common}, nil
}

func (v *BaseConverterView) Focus() tea.Cmd { return v.fields[v.focus].Focus() }

func (v *BaseConverterView) Blur() { v.fields[v.focus].Blur() }

func (v *BaseConverterView) SetSize(width, _ int) {
	v.width = width
	v.fields[fieldNumber].Width = max(width-12, 10)
}

func (v *BaseConverterView) Result() string {
	if v.err != nil {
		return ""
	}
	return v.out.value
}

func (v *BaseConverterView) ShortHelp() []key.Binding {
	return []key.Binding{keyNextField, keyPrevField, KeyCopy}
}

func (v *BaseConverterView) View() string {
	inputs := lipgloss.JoinVertical(lipgloss.Left,
		v.fields[fieldNumber].View(),
		lipgloss.JoinHorizontal(lipgloss.Top, v.fields[fieldFrom].View(), "    ", v.fields[fieldTo].View()),
	)

	result := ""
	if v.out.value != "" {
		result = fmt.Sprintf("base %d: %s", v.out.to, v.out.value)
	}

	var rows []string
	for _, c := range v.out.common {
		rows = append(rows, styles.LabelStyle.Render(fmt.Sprintf("%4d", c.Base))+"  "+styles.ValueStyle.Render(c.Value))
	}

	return joinNonEmpty(
		renderTitle("Base converter"),
		inputs,
		renderOutcome(v.env.Printer, result, v.err, v.width),
		strings.Join(rows, "\n"),
	)
}
