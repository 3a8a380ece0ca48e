// Package shell renders the frame around the active view: header, the
// tool menu and the footer.
package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/format"
	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/styles"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/views"
)

const (
	Title     = "SUGOI Tools"
	RepoURL   = "https://github.com/tanakh/tools"
	AuthorURL = "https://twitter.com/tanakh"
	Copyright = "Copyright (c) 2020, Hideyuki Tanaka"

	GroupUnderConstruction = "Under construction"
)

// underConstruction lists menu entries that exist only as labels.
var underConstruction = []string{"ASCII converter", "Prime factorization", "URL encode"}

// Item is one menu line. Disabled items have no route.
type Item struct {
	Title    string
	Route    router.Route
	Disabled bool
}

// Group is a labelled run of menu items.
type Group struct {
	Label string
	Items []Item
}

// Menu is the tool list with a cursor.
type Menu struct {
	groups []Group
	items  []Item
	cursor int
}

// NewMenu builds the menu from the registry's tool groups plus the
// under-construction entries.
func NewMenu(reg *views.Registry) *Menu {
	m := &Menu{}
	for _, label := range []string{views.GroupTools, views.GroupGenerators} {
		g := Group{Label: label}
		for _, e := range reg.MenuEntries(label) {
			g.Items = append(g.Items, Item{Title: e.Title, Route: e.Route})
		}
		m.groups = append(m.groups, g)
	}

	uc := Group{Label: GroupUnderConstruction}
	for _, title := range underConstruction {
		uc.Items = append(uc.Items, Item{Title: title, Disabled: true})
	}
	m.groups = append(m.groups, uc)

	for _, g := range m.groups {
		m.items = append(m.items, g.Items...)
	}
	return m
}

// Items returns every item in display order.
func (m *Menu) Items() []Item { return m.items }

// Selected returns the item under the cursor.
func (m *Menu) Selected() Item {
	if len(m.items) == 0 {
		return Item{Route: router.Index}
	}
	return m.items[m.cursor]
}

// Move shifts the cursor by delta, clamped to the list.
func (m *Menu) Move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.items)-1, 0))
}

// Select puts the cursor on route's item. Index leaves the cursor alone.
func (m *Menu) Select(route router.Route) {
	for i, it := range m.items {
		if !it.Disabled && it.Route == route {
			m.cursor = i
			return
		}
	}
}

// View renders the menu. The item for active is marked; the cursor is
// shown only when focused.
func (m *Menu) View(active router.Route, focused bool, width int) string {
	var sb strings.Builder
	i := 0
	for gi, g := range m.groups {
		if gi > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styles.MenuLabelStyle.Render(g.Label))
		sb.WriteString("\n")
		for _, it := range g.Items {
			prefix := "  "
			if focused && i == m.cursor {
				prefix = styles.MenuCursor + " "
			}
			title := format.Truncate(it.Title, max(width-3, 1))

			style := styles.MenuItemStyle
			switch {
			case it.Disabled:
				style = styles.MenuDisabledStyle
			case it.Route == active && active != router.Index:
				style = styles.MenuActiveStyle
			}
			sb.WriteString(style.Render(prefix + title))
			sb.WriteString("\n")
			i++
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Header renders the title bar with the repository and author links.
func Header(width int) string {
	links := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LinkStyle.Render(RepoURL), "  ",
		styles.LinkStyle.Render(AuthorURL),
	)
	title := styles.TitleStyle.Render(Title)

	gap := width - lipgloss.Width(title) - lipgloss.Width(links) - 2
	if gap < 2 {
		return styles.HeaderBar.Width(max(width, 1)).Render(title)
	}
	return styles.HeaderBar.Width(max(width, 1)).Render(title + strings.Repeat(" ", gap) + links)
}

// Footer renders the copyright line followed by the short key help.
func Footer(width int, h help.Model, bindings []key.Binding) string {
	h.Width = max(width-2, 0)
	return styles.FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		h.ShortHelpView(bindings),
		Copyright,
	))
}
