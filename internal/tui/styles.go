package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/weather/internal/app"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 60
	DefaultWidth      = 80
	DefaultHeight     = 24
	ContextPanelWidth = 34
	DialogWidth       = 44
)

// Styles holds every lipgloss style used by the view, derived from one palette.
type Styles struct {
	Palette app.Palette

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Headline    lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Notice      lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Section     lipgloss.Style
	Option      lipgloss.Style
	Selected    lipgloss.Style
	Link        lipgloss.Style
	Dialog      lipgloss.Style
	Button      lipgloss.Style
	Primary     lipgloss.Style
	TableHeader lipgloss.Style
	Border      lipgloss.Color
}

// NewStyles builds the style set for a palette.
func NewStyles(p app.Palette) Styles {
	fg := lipgloss.Color(p.Foreground)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)
	highlight := lipgloss.Color(p.Highlight)
	border := lipgloss.Color(p.Border)
	surface := lipgloss.Color(p.Surface)

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Headline: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			MarginBottom(1),

		Text:  lipgloss.NewStyle().Foreground(fg),
		Muted: lipgloss.NewStyle().Foreground(muted),

		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true),

		Option: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(surface).
			Background(accent).
			Bold(true).
			Padding(0, 1),

		Link: lipgloss.NewStyle().
			Foreground(accent).
			Underline(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Button: lipgloss.NewStyle().
			Foreground(fg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2),

		Primary: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2),

		TableHeader: lipgloss.NewStyle().
			Foreground(muted).
			Bold(true),

		Border: border,
	}
}

// RenderApplicationContainer wraps content with the header, the footer and an
// outer border filling the terminal.
func (s Styles) RenderApplicationContainer(header, content, footer string, width, height int) string {
	inner := width - 4

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(s.Border).
		Width(inner).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(s.Border).
		Width(inner).
		Padding(0, 1)

	styledHeader := headerStyle.Render(header)
	styledFooter := footerStyle.Render(footer)

	// The body takes whatever height the header and footer leave.
	bodyHeight := height - 2 - lipgloss.Height(styledHeader) - lipgloss.Height(styledFooter)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	styledContent := lipgloss.NewStyle().
		Width(inner).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(content)

	innerContent := lipgloss.JoinVertical(lipgloss.Left, styledHeader, styledContent, styledFooter)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Border).
		Width(width - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderModal centers modal content over a dimmed screen.
func (s Styles) RenderModal(modal string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(s.Border),
	)
}

// SafeModalWidth keeps a modal inside the terminal.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 30 {
		maxWidth = 30
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}
