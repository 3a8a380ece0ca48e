package styles

import "github.com/charmbracelet/lipgloss"

// Palette with light/dark variants; lipgloss picks one from the detected
// terminal background.
var (
	ColorFg      = lipgloss.AdaptiveColor{Light: "#24292f", Dark: "#e6edf3"} // primary foreground
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#656d76", Dark: "#8b949e"} // muted/dim text
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"} // accent blue
	ColorError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"} // error red
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"} // success green
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"} // warning amber
	ColorMagenta = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bc8cff"} // purple/magenta
)

// Centralized style definitions for the TUI.
var (
	// Header.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	LinkStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Underline(true)
	HeaderBar  = lipgloss.NewStyle().
			Padding(0, 1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted)

	// Menu.
	MenuLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Bold(true)
	MenuItemStyle     = lipgloss.NewStyle().PaddingLeft(1).Foreground(ColorFg)
	MenuActiveStyle   = lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(ColorAccent)
	MenuDisabledStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(ColorMuted).Strikethrough(true)
	MenuCursor        = "▸"

	// Panes.
	FocusedPane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1)
	BlurredPane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1)

	// Tool views.
	ViewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFg).MarginBottom(1)
	LabelStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle     = lipgloss.NewStyle().Foreground(ColorFg)
	ChosenStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorMagenta)
	OptionOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	OptionOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ResultBox      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(ColorMuted).Padding(0, 1)

	// General utility styles.
	DimStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// Error block style.
	ErrorBlockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(ColorError).
			Foreground(ColorError)

	// Go-to prompt.
	PromptBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorWarning).Padding(0, 1)

	// Footer.
	FooterStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)
