package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/wordlink/internal/game"
	"github.com/idilsaglam/wordlink/internal/model"
)

// tickMsg is one elapsed countdown second, tagged with the countdown it belongs to.
type tickMsg struct{ id uint64 }

// Model is the Bubble Tea model around one controller.
type Model struct {
	ctrl *game.Controller
	keys keyMap
	help help.Model
	ti   textinput.Model

	lastRound int
	flash     string // short status line, cleared on the next key

	width, height int
	tickEvery     time.Duration
}

// New wraps ctrl. The controller must not be used elsewhere while the program runs.
func New(ctrl *game.Controller) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What connects them?"
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		ctrl:      ctrl,
		keys:      defaultKeyMap(),
		help:      help.New(),
		ti:        ti,
		lastRound: ctrl.Round().Number,
		width:     80,
		height:    24,
		tickEvery: time.Second,
	}
}

// Entries returns the log recorded so far, in insertion order.
func (m Model) Entries() []model.LogEntry { return m.ctrl.Entries() }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleTick())
}

// scheduleTick returns the single pending tick for the live countdown, or nil.
func (m Model) scheduleTick() tea.Cmd {
	if !m.ctrl.TimerRunning() {
		return nil
	}
	id := m.ctrl.TickID()
	return tea.Tick(m.tickEvery, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ti.Width = max(msg.Width-8, 10)
		return m, nil

	case tickMsg:
		if !m.ctrl.Tick(msg.id) {
			// stale countdown: let it die
			return m, nil
		}
		m.syncRound()
		return m, m.scheduleTick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.ctrl.State() == model.StateCannotStart {
			return m, nil
		}
		m.flash = ""

		switch {
		case key.Matches(msg, m.keys.Submit):
			if _, ok := m.ctrl.LogAssociation(m.ti.Value()); !ok {
				return m, nil
			}
			m.syncRound()
			return m, m.scheduleTick()

		case key.Matches(msg, m.keys.NewWords):
			if err := m.ctrl.GenerateRound(); err != nil {
				m.flash = err.Error()
				return m, nil
			}
			m.syncRound()
			return m, m.scheduleTick()

		case key.Matches(msg, m.keys.NewTheme):
			if err := m.ctrl.GenerateTheme(); err != nil {
				m.flash = err.Error()
			}
			return m, nil

		case key.Matches(msg, m.keys.ClearTheme):
			m.ctrl.ClearTheme()
			return m, nil

		case key.Matches(msg, m.keys.ToggleTimer):
			if m.ctrl.ToggleTimer() {
				m.flash = "timer on"
			} else {
				m.flash = "timer off"
			}
			return m, m.scheduleTick()
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// syncRound clears the input whenever the controller moved to a new round.
func (m *Model) syncRound() {
	if n := m.ctrl.Round().Number; n != m.lastRound {
		m.lastRound = n
		m.ti.Reset()
	}
}
