package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// ANSI base colors so output follows the terminal palette
const (
	ColorCyan   Color = "6"
	ColorGreen  Color = "2"
	ColorRed    Color = "1"
	ColorYellow Color = "3"
	ColorBlue   Color = "4"
	ColorGray   Color = "8"
)

// Git status colors
const (
	ColorStaged    Color = "2" // Green
	ColorUnstaged  Color = "1" // Red
	ColorUntracked Color = "8" // Gray
)
