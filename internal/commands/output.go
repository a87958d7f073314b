package commands

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/galanta/cit/internal/render"
)

// assistantStyles returns the label and bubble styles of the chat screen
// for the current theme.
func assistantStyles() (label, bubble lipgloss.Style) {
	theme := render.GetTUITheme()

	label = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	bubble = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text).
		Padding(0, 1).
		MarginBottom(1)

	return label, bubble
}

func successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(render.GetTUITheme().Secondary)
}

func warningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(render.GetTUITheme().Warning)
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or 80 when it is not a terminal
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}
