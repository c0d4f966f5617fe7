package clirk

import "github.com/monokit-dev/monokit/internal/theme"

// Status symbols
const (
	SymbolSuccess    = "✔"
	SymbolFailure    = "✖"
	SymbolWarning    = "⚠"
	SymbolTerminated = "■"
	SymbolInfo       = "ℹ"
)

// Success formats a success line
func Success(msg string) string {
	return theme.SuccessStyle.Render(SymbolSuccess + " " + msg)
}

// Failure formats a failure line
func Failure(msg string) string {
	return theme.FailureStyle.Render(SymbolFailure + " " + msg)
}

// Warning formats a warning line
func Warning(msg string) string {
	return theme.WarningStyle.Render(SymbolWarning + " " + msg)
}

// Terminated formats a line announcing that the program was stopped
func Terminated(msg string) string {
	return theme.TerminatedStyle.Render(SymbolTerminated + " " + msg)
}

// Info formats an informational line
func Info(msg string) string {
	return theme.InfoStyle.Render(SymbolInfo + " " + msg)
}

// Dim formats secondary text
func Dim(msg string) string {
	return theme.DimStyle.Render(msg)
}
