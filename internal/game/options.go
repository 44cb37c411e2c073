package game

import (
	"math/rand/v2"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const (
	// MinPoolSize is the smallest pool the controller accepts; anything at or below it cannot start.
	MinPoolSize = 3

	DefaultRoundSeconds = 60
	DefaultWarnSeconds  = 10

	// NoWarning as Options.WarnSeconds turns the low-time warning off.
	NoWarning = -1
)

// Options tune a Controller. The zero value is usable.
type Options struct {
	RoundSeconds int  // countdown length per round
	WarnSeconds  int  // countdown at or below this shows the warning; 0 means default, NoWarning disables
	TimerEnabled bool // start with the countdown on

	Rand   *rand.Rand      // word selection; seeded from the runtime when nil
	Clock  clockwork.Clock // entry timestamps; real clock when nil
	Logger zerolog.Logger  // zero value discards
}

func (o Options) withDefaults() Options {
	if o.RoundSeconds <= 0 {
		o.RoundSeconds = DefaultRoundSeconds
	}
	switch {
	case o.WarnSeconds < 0:
		o.WarnSeconds = NoWarning
	case o.WarnSeconds == 0 || o.WarnSeconds >= o.RoundSeconds:
		o.WarnSeconds = min(DefaultWarnSeconds, o.RoundSeconds-1)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	return o
}
