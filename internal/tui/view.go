package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/wordlink/internal/model"
	"github.com/idilsaglam/wordlink/internal/ui"
)

const barWidth = 20

func (m Model) View() string {
	snap := m.ctrl.Snapshot()
	if snap.State == model.StateCannotStart {
		return m.cannotStartView(snap)
	}

	t := ui.Current()
	var b strings.Builder

	b.WriteString(t.Title.Render("wordlink"))
	b.WriteString(t.Muted.Render(fmt.Sprintf("   round %d", snap.Round.Number)))
	b.WriteString("\n\n")
	b.WriteString(roundLine(snap.Round))
	b.WriteString("\n\n")
	b.WriteString(m.ti.View())
	b.WriteString("\n\n")
	b.WriteString(timerLine(snap.Timer))
	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(t.Accent.Render(m.flash))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	out := ui.PanelString(b.String())
	if snap.ShowHistory {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.historyView(snap.Entries))
	}
	return out
}

func roundLine(r model.Round) string {
	t := ui.Current()
	line := t.Word.Render(r.Word1) + "  " + t.Muted.Render(t.SymLink) + "  " + t.Word.Render(r.Word2)
	if r.HasTheme() {
		line += t.Muted.Render("   theme: ") + t.ThemeWord.Render(r.Theme)
	}
	return line
}

func timerLine(st model.TimerState) string {
	t := ui.Current()
	if !st.Enabled {
		return t.Muted.Render("timer off")
	}
	bar := ui.CountdownBar(st.Remaining, st.Total, barWidth)
	if st.Warning {
		return t.Warning.Render(bar)
	}
	return t.Muted.Render(bar)
}

// historyView lists as many entries as fit under the game panel, newest first.
func (m Model) historyView(entries []model.LogEntry) string {
	t := ui.Current()
	room := m.height - 16
	if room < 3 {
		room = 3
	}
	lines := []string{t.Title.Render("History")}
	for i, e := range entries {
		if i == room {
			lines = append(lines, t.Muted.Render(fmt.Sprintf("… %d more", len(entries)-room)))
			break
		}
		prefix := ""
		if e.Theme != "" {
			prefix = t.ThemeWord.Render("[" + e.Theme + "] ")
		}
		lines = append(lines, prefix+t.Title.Render(e.Pair()+":")+" "+e.Connection)
	}
	return ui.PanelString(strings.Join(lines, "\n"))
}

func (m Model) cannotStartView(snap model.Snapshot) string {
	t := ui.Current()
	lines := []string{
		t.Error.Render(t.SymFail + " Cannot start"),
		"",
		snap.Error,
		"",
		t.Help.Render("Provide a word list with -words or WORDLINK_WORDS. Press esc to quit."),
	}
	return ui.PanelString(strings.Join(lines, "\n"))
}
