package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every renderer pulls from.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Warning lipgloss.Style
	Word, ThemeWord, Help                         lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BarFull, BarEmpty string
	SymOK, SymFail    string
	SymLink           string
}

var current = themeFor("classic")

// SetTheme switches the palette: classic (default), neon or mono.
func SetTheme(name string) { current = themeFor(name) }

// Current returns the active theme.
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:      "neon",
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
			Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
			Word:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
			ThemeWord: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("226")),
			Help:      lipgloss.NewStyle().Faint(true),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("201"),
			BarFull:     "█", BarEmpty: "░",
			SymOK: "✔", SymFail: "✖", SymLink: "⟷",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Warning: plain.Bold(true),
			Word: plain.Bold(true), ThemeWord: plain.Italic(true), Help: plain,

			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			BarFull:     "#", BarEmpty: "-",
			SymOK: "ok", SymFail: "x", SymLink: "&",
		}
	default:
		return Theme{
			Name:      "classic",
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
			Word:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			ThemeWord: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
			Help:      lipgloss.NewStyle().Faint(true),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			BarFull:     "█", BarEmpty: "░",
			SymOK: "✔", SymFail: "✖", SymLink: "&",
		}
	}
}
