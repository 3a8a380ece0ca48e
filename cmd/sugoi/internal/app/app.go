// Package app holds the root Bubble Tea model: it owns the router, mounts
// the routed view and draws the shell around it.
package app

import (
	"log/slog"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/format"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/i18n"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/msgs"
	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/shell"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/views"
)

// Focus says which part of the screen receives keys.
type Focus int

const (
	FocusMenu Focus = iota
	FocusView
	FocusGoto
)

const (
	menuWidth    = 30 // outer width of the menu pane, borders included
	headerHeight = 2
	footerHeight = 2
)

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	ToTool    key.Binding
	Leave     key.Binding
	Back      key.Binding
	Forward   key.Binding
	Goto      key.Binding
	Copy      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	ToTool:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "to tool")),
	Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
	Back:      key.NewBinding(key.WithKeys("[", "alt+left"), key.WithHelp("[", "back")),
	Forward:   key.NewBinding(key.WithKeys("]", "alt+right"), key.WithHelp("]", "forward")),
	Goto:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "go to #/…")),
	Copy:      views.KeyCopy,
}

// AppModel is the root bubbletea model.
type AppModel struct {
	env      views.Env
	registry *views.Registry
	router   *router.Router
	menu     *shell.Menu
	active   views.View
	focus    Focus
	gotoBox  textinput.Model
	help     help.Model
	status   string
	isError  bool
	width    int
	height   int
	copyFn   func(string) error
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *AppModel) { m.copyFn = fn }
}

// New creates the app positioned at start with the start view mounted.
func New(env views.Env, reg *views.Registry, start router.Route, opts ...Option) *AppModel {
	gotoBox := textinput.New()
	gotoBox.Prompt = "go to › "
	gotoBox.Placeholder = "#/digest"
	gotoBox.Cursor.SetMode(cursor.CursorStatic)

	m := &AppModel{
		env:      env,
		registry: reg,
		router:   router.New(start),
		menu:     shell.NewMenu(reg),
		gotoBox:  gotoBox,
		help:     help.New(),
		copyFn:   clipboard.WriteAll,
	}
	for _, o := range opts {
		o(m)
	}
	m.mount(start, start != router.Index)
	return m
}

// Route returns the current route.
func (m *AppModel) Route() router.Route { return m.router.Current() }

// Active returns the mounted view.
func (m *AppModel) Active() views.View { return m.active }

// Focus returns which pane receives keys.
func (m *AppModel) Focus() Focus { return m.focus }

// Status returns the status line text.
func (m *AppModel) Status() string { return m.status }

func (m *AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case msgs.NavigateMsg:
		t, ok := m.router.NavigateFragment(msg.Fragment)
		if !ok {
			return m, m.focusView()
		}
		return m, m.transition(t, true)

	case msgs.HistoryMsg:
		return m, m.history(msg.Forward)
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits.
	if key.Matches(msg, keys.ForceQuit) {
		return m, tea.Quit
	}

	m.status = ""
	m.isError = false

	if m.focus == FocusGoto {
		return m.handleGotoKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Goto):
		m.gotoBox.SetValue("")
		m.focus = FocusGoto
		m.active.Blur()
		return m, m.gotoBox.Focus()
	case key.Matches(msg, keys.Copy):
		m.copyResult()
		return m, nil
	}

	if m.focus == FocusView {
		if key.Matches(msg, keys.Leave) {
			m.active.Blur()
			m.focus = FocusMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.active, cmd = m.active.Update(msg)
		return m, cmd
	}

	return m.handleMenuKey(msg)
}

func (m *AppModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.menu.Move(-1)
	case key.Matches(msg, keys.Down):
		m.menu.Move(1)
	case key.Matches(msg, keys.Open):
		it := m.menu.Selected()
		if it.Disabled {
			m.status = m.env.Printer.Sprintf(i18n.MsgUnderConstruct, it.Title)
			return m, nil
		}
		if it.Route == m.router.Current() {
			return m, m.focusView()
		}
		return m, m.navigate(it.Route, true)
	case key.Matches(msg, keys.ToTool):
		return m, m.focusView()
	case key.Matches(msg, keys.Back):
		return m, func() tea.Msg { return msgs.HistoryMsg{Forward: false} }
	case key.Matches(msg, keys.Forward):
		return m, func() tea.Msg { return msgs.HistoryMsg{Forward: true} }
	default:
		// 0 is the index, 1-6 the tools in route order.
		if n, err := strconv.Atoi(msg.String()); err == nil {
			if all := router.All(); n >= 0 && n < len(all) {
				return m, m.navigate(all[n], false)
			}
		}
	}
	return m, nil
}

func (m *AppModel) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.gotoBox.Blur()
		m.focus = FocusMenu
		return m, nil
	case tea.KeyEnter:
		fragment := m.gotoBox.Value()
		m.gotoBox.Blur()
		m.focus = FocusMenu
		return m, func() tea.Msg { return msgs.NavigateMsg{Fragment: fragment} }
	}

	var cmd tea.Cmd
	m.gotoBox, cmd = m.gotoBox.Update(msg)
	return m, cmd
}

// focusView moves key input to the mounted view. The index has no input,
// so focus stays on the menu there.
func (m *AppModel) focusView() tea.Cmd {
	if m.router.Current() == router.Index {
		return nil
	}
	m.focus = FocusView
	return m.active.Focus()
}

// navigate routes to r. focusView moves input into the new view.
func (m *AppModel) navigate(r router.Route, focusView bool) tea.Cmd {
	t, ok := m.router.Navigate(r)
	if !ok {
		if focusView {
			return m.focusView()
		}
		return nil
	}
	return m.transition(t, focusView)
}

func (m *AppModel) history(forward bool) tea.Cmd {
	var (
		t  router.Transition
		ok bool
	)
	if forward {
		t, ok = m.router.Forward()
	} else {
		t, ok = m.router.Back()
	}
	if !ok {
		return nil
	}
	return m.transition(t, m.focus == FocusView)
}

// transition discards the old view and mounts a fresh one for t.To.
func (m *AppModel) transition(t router.Transition, focusView bool) tea.Cmd {
	m.active.Blur()
	m.env.Logger.Debug("route changed", "from", t.From.String(), "to", t.To.String())
	return m.mount(t.To, focusView)
}

func (m *AppModel) mount(r router.Route, focusView bool) tea.Cmd {
	m.active = m.registry.Mount(r, m.env)
	m.menu.Select(r)
	m.layout()
	m.env.Logger.Debug("view mounted", slog.String("route", r.String()))

	m.focus = FocusMenu
	cmds := []tea.Cmd{m.active.Init()}
	if focusView {
		cmds = append(cmds, m.focusView())
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) copyResult() {
	p := m.env.Printer
	res := m.active.Result()
	if res == "" {
		m.status = p.Sprintf(i18n.MsgNothingToCopy)
		return
	}
	if err := m.copyFn(res); err != nil {
		m.env.Logger.Warn("clipboard write failed", "error", err)
		m.status = p.Sprintf(i18n.MsgCopyFailed, err)
		m.isError = true
		return
	}
	m.status = p.Sprintf(i18n.MsgCopied)
}

// contentWidth is the inner width of the content pane.
func (m *AppModel) contentWidth() int {
	return max(m.width-menuWidth-4, 10)
}

func (m *AppModel) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight-1, 5)
}

func (m *AppModel) layout() {
	if m.width == 0 {
		return
	}
	m.active.SetSize(m.contentWidth(), m.bodyHeight()-2)
	m.gotoBox.Width = max(m.width-16, 10)
}

func (m *AppModel) helpBindings() []key.Binding {
	switch m.focus {
	case FocusGoto:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	case FocusView:
		return append(m.active.ShortHelp(), keys.Leave, keys.Goto)
	default:
		// Disabled bindings drop out of the footer.
		back, forward := keys.Back, keys.Forward
		back.SetEnabled(m.router.CanBack())
		forward.SetEnabled(m.router.CanForward())
		return []key.Binding{keys.Up, keys.Down, keys.Open, back, forward, keys.Goto, keys.Copy, keys.Quit}
	}
}

func (m *AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	bodyH := m.bodyHeight()

	menuPane := styles.BlurredPane
	contentPane := styles.BlurredPane
	switch m.focus {
	case FocusMenu:
		menuPane = styles.FocusedPane
	case FocusView:
		contentPane = styles.FocusedPane
	}

	menu := menuPane.Width(menuWidth - 2).Height(bodyH - 2).
		Render(m.menu.View(m.router.Current(), m.focus == FocusMenu, menuWidth-4))
	content := contentPane.Width(m.contentWidth() + 2).Height(bodyH - 2).
		Render(m.active.View())

	parts := []string{
		shell.Header(m.width),
		lipgloss.JoinHorizontal(lipgloss.Top, menu, content),
	}

	switch {
	case m.focus == FocusGoto:
		parts = append(parts, styles.PromptBorder.Render(m.gotoBox.View()))
	case m.status != "" && m.isError:
		parts = append(parts, styles.ErrorBlockStyle.Render(format.Truncate(m.status, m.width-2)))
	case m.status != "":
		parts = append(parts, styles.StatusStyle.Render(" "+format.Truncate(m.status, m.width-2)))
	default:
		parts = append(parts, "")
	}

	parts = append(parts, shell.Footer(m.width, m.help, m.helpBindings()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
