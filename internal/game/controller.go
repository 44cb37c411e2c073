// Package game holds the round controller: word selection under uniqueness
// constraints, the association log and the round countdown.
//
// A Controller is not safe for concurrent use. Every front end drives it from a
// single event loop (the Bubble Tea program, or one goroutine per browser session).
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/wordlink/internal/model"
	"github.com/idilsaglam/wordlink/internal/words"
)

// Controller owns one game session.
type Controller struct {
	pool  *words.Pool
	opts  Options
	clock clockwork.Clock
	log   zerolog.Logger

	state    model.State
	errMsg   string
	round    model.Round
	hasRound bool

	entries     []model.LogEntry
	showHistory bool

	timer countdown
}

// New builds a controller over pool. A pool of MinPoolSize words or fewer puts the
// controller in the cannot-start state; otherwise the first round is generated immediately.
func New(pool *words.Pool, opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		pool:  pool,
		opts:  opts,
		clock: opts.Clock,
		log:   opts.Logger,
		state: model.StateReady,
	}
	c.timer.enabled = opts.TimerEnabled

	if pool.Len() <= MinPoolSize {
		c.state = model.StateCannotStart
		c.errMsg = fmt.Sprintf("Need more than %d words to play, have %d (source: %s).",
			MinPoolSize, pool.Len(), pool.Source())
		c.timer.enabled = false
		c.log.Error().Int("words", pool.Len()).Str("source", pool.Source()).Msg("cannot start: word pool too small")
		return c
	}

	if err := c.GenerateRound(); err != nil {
		c.fail(err)
	}
	return c
}

// State reports whether rounds can be played.
func (c *Controller) State() model.State { return c.state }

// Round returns the current round. It is the zero Round before the first round
// and in the cannot-start state.
func (c *Controller) Round() model.Round { return c.round }

// Entries returns the log in insertion order.
func (c *Controller) Entries() []model.LogEntry {
	out := make([]model.LogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// SelectWord draws uniformly from the pool until the word is not excluded.
func (c *Controller) SelectWord(exclude ...string) (string, error) {
	n := c.pool.Len()
	if n == 0 {
		return "", ErrEmptyPool
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		if w != "" {
			skip[w] = struct{}{}
		}
	}
	candidates := 0
	for i := 0; i < n; i++ {
		if _, ok := skip[c.pool.At(i)]; !ok {
			candidates++
		}
	}
	if candidates == 0 {
		return "", ErrPoolExhausted
	}

	for {
		w := c.pool.At(c.opts.Rand.IntN(n))
		if _, ok := skip[w]; !ok {
			return w, nil
		}
	}
}

// GenerateRound draws a fresh pair that differs from each other and from the theme,
// then restarts the countdown when the timer is enabled.
func (c *Controller) GenerateRound() error {
	if c.state == model.StateCannotStart {
		return ErrCannotStart
	}

	theme := c.round.Theme
	w1, err := c.SelectWord(theme)
	if err != nil {
		return fmt.Errorf("select first word: %w", err)
	}
	w2, err := c.SelectWord(w1, theme)
	if err != nil {
		return fmt.Errorf("select second word: %w", err)
	}

	c.round = model.Round{
		Number: c.round.Number + 1,
		Word1:  w1,
		Word2:  w2,
		Theme:  theme,
	}
	c.hasRound = true

	c.stopTimer()
	if c.timer.enabled {
		c.startTimer()
	}

	c.log.Debug().
		Int("round", c.round.Number).
		Str("word1", w1).
		Str("word2", w2).
		Str("theme", theme).
		Msg("new round")
	return nil
}

// GenerateTheme picks a theme word distinct from the current pair.
// The pair and the countdown are left untouched.
func (c *Controller) GenerateTheme() error {
	if c.state == model.StateCannotStart {
		return ErrCannotStart
	}

	var exclude []string
	if c.hasRound {
		exclude = []string{c.round.Word1, c.round.Word2}
	}
	theme, err := c.SelectWord(exclude...)
	if err != nil {
		return fmt.Errorf("select theme: %w", err)
	}
	c.round.Theme = theme

	c.log.Debug().Int("round", c.round.Number).Str("theme", theme).Msg("new theme")
	return nil
}

// ClearTheme drops the theme word. Following rounds show a pair only.
func (c *Controller) ClearTheme() {
	c.round.Theme = ""
}

// LogAssociation records input against the current round and advances to a new one.
// Blank input is ignored and reported as false.
func (c *Controller) LogAssociation(input string) (model.LogEntry, bool) {
	if c.state == model.StateCannotStart || !c.hasRound {
		return model.LogEntry{}, false
	}
	connection := strings.TrimSpace(input)
	if connection == "" {
		return model.LogEntry{}, false
	}

	entry := model.LogEntry{
		ID:         uuid.NewString(),
		Theme:      c.round.Theme,
		Word1:      c.round.Word1,
		Word2:      c.round.Word2,
		Connection: connection,
		CreatedAt:  c.clock.Now(),
	}
	c.entries = append(c.entries, entry)
	c.showHistory = true

	c.log.Info().
		Int("round", c.round.Number).
		Str("pair", entry.Pair()).
		Str("connection", connection).
		Msg("association logged")

	if err := c.GenerateRound(); err != nil {
		c.fail(err)
	}
	return entry, true
}

// Snapshot copies everything a renderer needs. Entries are newest-first.
func (c *Controller) Snapshot() model.Snapshot {
	return model.Snapshot{
		State:       c.state,
		Error:       c.errMsg,
		Round:       c.round,
		Timer:       c.TimerState(),
		Entries:     model.Newest(c.entries),
		ShowHistory: c.showHistory,
	}
}

// fail moves the controller to the cannot-start state after a selection error.
// It only happens if the pool cannot satisfy the distinctness constraints.
func (c *Controller) fail(err error) {
	c.state = model.StateCannotStart
	c.errMsg = err.Error()
	c.stopTimer()
	c.timer.enabled = false
	c.log.Error().Err(err).Msg("round generation failed")
}
