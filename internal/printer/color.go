package printer

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// SetNoColor switches every style to plain text when disabled is true and
// back to the detected terminal profile otherwise.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// ConfigureColor disables colors when requested, when NO_COLOR is set, or
// when stdout is not a terminal (build logs, pipes).
func ConfigureColor(noColor bool) {
	SetNoColor(noColor || os.Getenv("NO_COLOR") != "" || !IsTTY())
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
