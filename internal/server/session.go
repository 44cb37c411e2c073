package server

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/wordlink/internal/game"
)

// Sender delivers server messages to one browser.
type Sender interface {
	Send(message any) error
}

// Command is one player action forwarded from the websocket.
type Command struct {
	Type       MessageType
	Enabled    bool
	Connection string
}

// Session is one browser's game. Run is the only goroutine that touches the
// controller: commands and countdown ticks are serialized through its select loop.
type Session struct {
	id    string
	ctrl  *game.Controller
	clock clockwork.Clock
	out   Sender
	log   zerolog.Logger

	in   chan Command
	done chan struct{}

	ticker clockwork.Ticker
	tickID uint64
}

// NewSession wires a controller to an outbound sender.
func NewSession(id string, ctrl *game.Controller, clock clockwork.Clock, out Sender, logger zerolog.Logger) *Session {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Session{
		id:    id,
		ctrl:  ctrl,
		clock: clock,
		out:   out,
		log:   logger,
		in:    make(chan Command, 16),
		done:  make(chan struct{}),
	}
}

// ID returns the session id sent to the browser.
func (s *Session) ID() string { return s.id }

// Submit queues a command. It returns false once the session has stopped.
func (s *Session) Submit(cmd Command) bool {
	select {
	case s.in <- cmd:
		return true
	case <-s.done:
		return false
	}
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} { return s.done }

// Run drives the session until ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	defer close(s.done)
	defer s.stopTicker()

	s.rearm()
	s.publish()

	for {
		var tickC <-chan time.Time
		if s.ticker != nil {
			tickC = s.ticker.Chan()
		}

		select {
		case <-ctx.Done():
			s.log.Info().Int("entries", len(s.ctrl.Entries())).Msg("session ended")
			return

		case cmd := <-s.in:
			if !s.handle(cmd) {
				continue
			}
			s.rearm()
			s.publish()

		case <-tickC:
			if !s.ctrl.Tick(s.tickID) {
				continue
			}
			s.rearm()
			s.publish()
		}
	}
}

// handle applies cmd and reports whether the state may have changed.
func (s *Session) handle(cmd Command) bool {
	var err error
	switch cmd.Type {
	case MsgNewWords:
		err = s.ctrl.GenerateRound()
	case MsgNewTheme:
		err = s.ctrl.GenerateTheme()
	case MsgClearTheme:
		s.ctrl.ClearTheme()
	case MsgSetTimer:
		s.ctrl.SetTimer(cmd.Enabled)
	case MsgSubmit:
		if _, ok := s.ctrl.LogAssociation(cmd.Connection); !ok {
			return false
		}
	case MsgPing:
		s.send(NewServerMessage(MsgPong, nil, s.clock.Now()))
		return false
	default:
		s.sendError(ErrCodeInvalidMessage, "Unknown message type")
		return false
	}

	if err != nil {
		if errors.Is(err, game.ErrCannotStart) {
			s.sendError(ErrCodeCannotStart, "Word pool too small to play")
		} else {
			s.sendError(ErrCodeInternalError, err.Error())
		}
		return false
	}
	return true
}

// rearm keeps exactly one ticker alive for the controller's live countdown.
func (s *Session) rearm() {
	if !s.ctrl.TimerRunning() {
		s.stopTicker()
		s.tickID = s.ctrl.TickID()
		return
	}
	if s.ticker != nil && s.tickID == s.ctrl.TickID() {
		return
	}
	s.stopTicker()
	s.ticker = s.clock.NewTicker(time.Second)
	s.tickID = s.ctrl.TickID()
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

func (s *Session) publish() {
	s.send(NewServerMessage(MsgState, &StatePayload{
		SessionID: s.id,
		Snapshot:  s.ctrl.Snapshot(),
	}, s.clock.Now()))
}

func (s *Session) sendError(code, message string) {
	s.send(NewServerMessage(MsgError, &ErrorPayload{Code: code, Message: message}, s.clock.Now()))
}

func (s *Session) send(msg *ServerMessage) {
	if err := s.out.Send(msg); err != nil {
		s.log.Warn().Err(err).Str("type", string(msg.Type)).Msg("send failed")
	}
}
