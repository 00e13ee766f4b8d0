package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the shell's output so colors are dropped when it is not a terminal
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	board   lipgloss.Style
	correct lipgloss.Style
	wrong   lipgloss.Style
	warning lipgloss.Style
	subtle  lipgloss.Style
	errText lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		header:  r.NewStyle().Bold(true).Underline(true),
		board:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		correct: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
		wrong:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),            // Yellow
		subtle:  r.NewStyle().Foreground(lipgloss.Color("8")),
		errText: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
