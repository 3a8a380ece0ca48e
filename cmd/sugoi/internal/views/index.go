package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/format"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
)

// IndexView is the placeholder shown when no tool is selected.
type IndexView struct {
	env      Env
	registry *Registry
}

// NewIndex creates the index screen. registry supplies the tool list.
func NewIndex(env Env, registry *Registry) View {
	return &IndexView{env: env, registry: registry}
}

func (v *IndexView) Init() tea.Cmd                  { return nil }
func (v *IndexView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }
func (v *IndexView) Focus() tea.Cmd                 { return nil }
func (v *IndexView) Blur()                          {}
func (v *IndexView) Result() string                 { return "" }
func (v *IndexView) ShortHelp() []key.Binding       { return nil }

func (v *IndexView) SetSize(width, _ int) {
	format.InitMarkdownRenderer(width)
}

func (v *IndexView) View() string {
	return format.RenderMarkdown(v.markdown())
}

func (v *IndexView) markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## 👈(´･_･`👈) %s\n\n", v.env.Printer.Sprintf(i18n.MsgSelectFromHere))
	if v.registry == nil {
		return sb.String()
	}
	for _, group := range []string{GroupTools, GroupGenerators} {
		fmt.Fprintf(&sb, "**%s**\n\n", group)
		for _, e := range v.registry.MenuEntries(group) {
			fmt.Fprintf(&sb, "- %s `%s`\n", e.Title, e.Route.Fragment())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
