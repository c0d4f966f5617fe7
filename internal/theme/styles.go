package theme

import "github.com/charmbracelet/lipgloss"

// Text decoration styles used by help output
var (
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	CyanStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	DimStyle = lipgloss.NewStyle().
			Faint(true)

	UnderlineStyle = lipgloss.NewStyle().
			Underline(true)

	YellowStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)

// Status line styles
var (
	FailureStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	TerminatedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)

// Git status styles
var (
	StagedStyle = lipgloss.NewStyle().
			Foreground(ColorStaged)

	UnstagedStyle = lipgloss.NewStyle().
			Foreground(ColorUnstaged)

	UntrackedStyle = lipgloss.NewStyle().
			Foreground(ColorUntracked)
)
