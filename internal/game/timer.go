package game

import "github.com/idilsaglam/wordlink/internal/model"

// countdown is the timer sub-state machine: Stopped or Running.
//
// Every start and stop issues a new id. A front end schedules one pending tick
// tagged with TickID() and hands the tag back to Tick; ticks carrying an older id
// are dropped, so at most one countdown is ever live.
type countdown struct {
	enabled   bool
	running   bool
	remaining int
	id        uint64
}

func (c *Controller) startTimer() {
	c.timer.id++
	c.timer.running = true
	c.timer.remaining = c.opts.RoundSeconds
}

func (c *Controller) stopTimer() {
	c.timer.id++
	c.timer.running = false
}

// SetTimer turns the countdown on (restarting it at the full round length) or off.
func (c *Controller) SetTimer(enabled bool) {
	if c.state == model.StateCannotStart {
		return
	}
	c.timer.enabled = enabled
	c.stopTimer()
	if enabled {
		c.startTimer()
	}
	c.log.Debug().Bool("enabled", enabled).Msg("timer toggled")
}

// ToggleTimer flips the countdown and returns the new setting.
func (c *Controller) ToggleTimer() bool {
	c.SetTimer(!c.timer.enabled)
	return c.timer.enabled
}

// TickID identifies the live countdown. Ticks must carry it.
func (c *Controller) TickID() uint64 { return c.timer.id }

// TimerRunning reports whether a tick should be pending.
func (c *Controller) TimerRunning() bool { return c.timer.running }

// Tick applies one elapsed second to the countdown identified by id.
// It returns false for stale ids and when the countdown is stopped.
// Reaching zero stops the countdown and forces a new round, which restarts it.
func (c *Controller) Tick(id uint64) bool {
	if !c.timer.running || id != c.timer.id {
		return false
	}
	c.timer.remaining--
	if c.timer.remaining > 0 {
		return true
	}

	c.timer.remaining = 0
	c.stopTimer()
	c.log.Debug().Int("round", c.round.Number).Msg("time is up")
	if err := c.GenerateRound(); err != nil {
		c.fail(err)
	}
	return true
}

// TimerState reports the countdown for rendering.
func (c *Controller) TimerState() model.TimerState {
	return model.TimerState{
		Enabled:   c.timer.enabled,
		Running:   c.timer.running,
		Remaining: c.timer.remaining,
		Total:     c.opts.RoundSeconds,
		Warning:   c.timer.running && c.opts.WarnSeconds > 0 && c.timer.remaining <= c.opts.WarnSeconds,
	}
}
