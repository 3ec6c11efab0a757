package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ohm-tools/bandcode/internal/version"
)

// Application branding constants
const (
	AppName   = "BANDCODE"
	GitHubURL = "github.com/ohm-tools/bandcode"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	// Title style for the application header
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Active tab style
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// Inactive tab style
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)

	// Section label style for input fields and results
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	// Focused field label style
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(12)

	// Value style for decoded results
	ValueStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Content box style
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	// Selected band marker style
	SelectedBandStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Muted inline text style
	MutedStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)
)

// RenderTabBar renders the tab selector for the two conversion directions
func RenderTabBar(active Tab) string {
	specs := InactiveTabStyle.Render("specs to colors")
	codes := InactiveTabStyle.Render("colors to specs")
	switch active {
	case TabSpecs:
		specs = ActiveTabStyle.Render("specs to colors")
	case TabCodes:
		codes = ActiveTabStyle.Render("colors to specs")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, specs, " ", codes)
}
