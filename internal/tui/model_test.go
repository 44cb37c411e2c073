package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/wordlink/internal/game"
	"github.com/idilsaglam/wordlink/internal/model"
	"github.com/idilsaglam/wordlink/internal/words"
)

func newTestModel(t *testing.T, timer bool, list ...string) Model {
	t.Helper()
	if len(list) == 0 {
		list = []string{"River", "Clock", "Echo", "Glass", "Ocean"}
	}
	ctrl := game.New(words.NewPool(list, "test"), game.Options{
		TimerEnabled: timer,
		Rand:         rand.New(rand.NewPCG(7, 7)),
	})
	return New(ctrl)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return mm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestSubmitEmptyIsIgnored(t *testing.T) {
	m := newTestModel(t, false)
	before := m.ctrl.Round()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "   ")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.Entries()) != 0 {
		t.Fatalf("expected no entries, got %d", len(m.Entries()))
	}
	if m.ctrl.Round() != before {
		t.Fatal("round advanced on empty submit")
	}
}

func TestSubmitLogsAndClearsInput(t *testing.T) {
	m := newTestModel(t, false)
	before := m.ctrl.Round()

	m = typeText(t, m, "time flows")
	if m.ti.Value() != "time flows" {
		t.Fatalf("input not captured: %q", m.ti.Value())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Word1 != before.Word1 || entries[0].Word2 != before.Word2 || entries[0].Connection != "time flows" {
		t.Fatalf("unexpected entry %+v for round %+v", entries[0], before)
	}
	if m.ti.Value() != "" {
		t.Fatalf("input should be cleared, got %q", m.ti.Value())
	}
	if m.ctrl.Round().Number != before.Number+1 {
		t.Fatal("expected the round to advance")
	}
	if !strings.Contains(m.View(), "time flows") {
		t.Fatal("history should show the entry")
	}
}

func TestNewWordsAndTheme(t *testing.T) {
	m := newTestModel(t, false)
	m = typeText(t, m, "draft")
	start := m.ctrl.Round().Number

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.ctrl.Round().Number != start+1 {
		t.Fatal("ctrl+n should start a new round")
	}
	if m.ti.Value() != "" {
		t.Fatal("new round should clear the input")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if !m.ctrl.Round().HasTheme() {
		t.Fatal("ctrl+t should set a theme")
	}
	if !strings.Contains(m.View(), m.ctrl.Round().Theme) {
		t.Fatal("view should show the theme")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.ctrl.Round().HasTheme() {
		t.Fatal("ctrl+r should remove the theme")
	}
}

func TestToggleTimerSchedulesTick(t *testing.T) {
	m := newTestModel(t, false)
	if cmd := m.scheduleTick(); cmd != nil {
		t.Fatal("no tick expected while the timer is off")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("enabling the timer should schedule a tick")
	}
	if !m.ctrl.TimerRunning() {
		t.Fatal("timer should be running")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Fatal("disabling the timer should not schedule a tick")
	}
	if m.ctrl.TimerRunning() {
		t.Fatal("timer should be stopped")
	}
}

func TestTickMessages(t *testing.T) {
	m := newTestModel(t, true)
	start := m.ctrl.Round().Number
	m = typeText(t, m, "half")

	stale := tickMsg{id: m.ctrl.TickID() + 100}
	m, cmd := update(t, m, stale)
	if cmd != nil {
		t.Fatal("stale tick must not be rescheduled")
	}
	if m.ctrl.TimerState().Remaining != 60 {
		t.Fatal("stale tick must not count")
	}

	for i := 0; i < 59; i++ {
		m, cmd = update(t, m, tickMsg{id: m.ctrl.TickID()})
		if cmd == nil {
			t.Fatalf("tick %d not rescheduled", i+1)
		}
	}
	if st := m.ctrl.TimerState(); st.Remaining != 1 || !st.Warning {
		t.Fatalf("expected 1s with warning, got %+v", st)
	}
	if m.ti.Value() != "half" {
		t.Fatal("ticks must not clear the input")
	}

	m, cmd = update(t, m, tickMsg{id: m.ctrl.TickID()})
	if cmd == nil {
		t.Fatal("forced round should schedule the next countdown")
	}
	if m.ctrl.Round().Number != start+1 {
		t.Fatalf("expected one forced advance, round %d", m.ctrl.Round().Number)
	}
	if m.ctrl.TimerState().Remaining != 60 {
		t.Fatal("countdown should reset to 60")
	}
	if m.ti.Value() != "" {
		t.Fatal("forced round should clear the input")
	}
}

func TestCannotStartView(t *testing.T) {
	m := newTestModel(t, true, "A", "B", "C")
	if m.ctrl.State() != model.StateCannotStart {
		t.Fatalf("expected cannot_start, got %s", m.ctrl.State())
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("init should at least blink the cursor")
	}

	m = typeText(t, m, "x")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if len(m.Entries()) != 0 || m.ctrl.Round().Number != 0 {
		t.Fatal("cannot_start must ignore game input")
	}
	if !strings.Contains(m.View(), "Cannot start") {
		t.Fatalf("expected error view, got:\n%s", m.View())
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit message")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("size not stored: %dx%d", m.width, m.height)
	}
}
