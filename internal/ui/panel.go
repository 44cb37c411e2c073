package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output targets for the print helpers; tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// CountdownBar renders the remaining share of a countdown, e.g. "█████░░░░░ 30s".
func CountdownBar(remaining, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if remaining < 0 {
		remaining = 0
	}
	filled := int(float64(remaining) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	t := Current()
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %2ds", bar, remaining)
}

// PanelString frames inner with the theme's border.
func PanelString(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Fprintln(Stdout, PanelString(strings.Join(lines, "\n")))
}

func OK(msg string)   { fmt.Fprintln(Stdout, Current().Success.Render(Current().SymOK+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, Current().Error.Render(Current().SymFail+" "+msg)) }
