package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kvernberg/nixwright/internal/version"
)

// Application branding constants
const (
	AppName   = "NIXWRIGHT INSTALLER"
	GitHubURL = "github.com/kvernberg/nixwright"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 110 // Maximum content width before capping
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(18)
)

// RenderTitle renders a page title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderError renders an inline error message
func RenderError(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// RenderKeyValue renders one aligned "key: value" summary line
func RenderKeyValue(k, v string) string {
	return KeyStyle.Render(k) + ValueStyle.Render(v)
}

// BuildHeaderContent creates header content with app name and page title
func BuildHeaderContent(pageTitle string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(pageTitle)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ·  ", right)
}

// RenderApplicationContainer is the wrapper for every screen in the
// application. It provides the full-screen bordered panel, the header with
// the application name and current page title, and the footer help line.
// Every page View is placed inside it by the engine.
func RenderApplicationContainer(content, pageTitle, footerText string, terminalWidth, terminalHeight int) string {
	header := BuildHeaderContent(pageTitle)
	footer := HelpStyle.Render(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(inner),
	)
}

// ContentWidth returns the usable content width inside the container for a
// given terminal width.
func ContentWidth(terminalWidth int) int {
	w := terminalWidth - 6
	if w < MinTerminalWidth-6 {
		w = MinTerminalWidth - 6
	}
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	return w
}
