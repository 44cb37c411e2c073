package game

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/idilsaglam/wordlink/internal/model"
	"github.com/idilsaglam/wordlink/internal/words"
)

func testPool(list ...string) *words.Pool {
	if len(list) == 0 {
		list = []string{"A", "B", "C", "D"}
	}
	return words.NewPool(list, "test")
}

func newTestController(t *testing.T, pool *words.Pool, opts Options) *Controller {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	return New(pool, opts)
}

func assertDistinct(t *testing.T, r model.Round) {
	t.Helper()
	if r.Word1 == "" || r.Word2 == "" {
		t.Fatalf("round has empty words: %+v", r)
	}
	if r.Word1 == r.Word2 {
		t.Fatalf("word1 == word2: %+v", r)
	}
	if r.HasTheme() && (r.Theme == r.Word1 || r.Theme == r.Word2) {
		t.Fatalf("theme collides with pair: %+v", r)
	}
}

func TestNewGeneratesFirstRound(t *testing.T) {
	c := newTestController(t, testPool(), Options{})

	if c.State() != model.StateReady {
		t.Fatalf("expected ready, got %s", c.State())
	}
	r := c.Round()
	if r.Number != 1 {
		t.Fatalf("expected round 1, got %d", r.Number)
	}
	assertDistinct(t, r)
}

func TestGenerateRoundNeverRepeatsWord(t *testing.T) {
	c := newTestController(t, testPool("A", "B", "C", "D"), Options{})

	for i := 0; i < 1000; i++ {
		if err := c.GenerateRound(); err != nil {
			t.Fatalf("generate round: %v", err)
		}
		assertDistinct(t, c.Round())
	}
}

func TestThemedRoundsArePairwiseDistinct(t *testing.T) {
	c := newTestController(t, testPool("A", "B", "C", "D"), Options{})

	for i := 0; i < 1000; i++ {
		if i%3 == 0 {
			if err := c.GenerateTheme(); err != nil {
				t.Fatalf("generate theme: %v", err)
			}
			assertDistinct(t, c.Round())
		}
		if err := c.GenerateRound(); err != nil {
			t.Fatalf("generate round: %v", err)
		}
		if !c.Round().HasTheme() {
			t.Fatal("theme should persist across rounds")
		}
		assertDistinct(t, c.Round())
	}
}

func TestGenerateThemeKeepsPair(t *testing.T) {
	c := newTestController(t, testPool(), Options{})
	before := c.Round()

	if err := c.GenerateTheme(); err != nil {
		t.Fatalf("generate theme: %v", err)
	}
	after := c.Round()
	if after.Word1 != before.Word1 || after.Word2 != before.Word2 || after.Number != before.Number {
		t.Fatalf("theme changed the pair: before %+v after %+v", before, after)
	}
	if !after.HasTheme() {
		t.Fatal("expected a theme")
	}

	c.ClearTheme()
	if c.Round().HasTheme() {
		t.Fatal("expected theme cleared")
	}
}

func TestSelectWord(t *testing.T) {
	c := newTestController(t, testPool(), Options{})

	for i := 0; i < 200; i++ {
		w, err := c.SelectWord("A", "B", "C")
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if w != "D" {
			t.Fatalf("expected D, got %q", w)
		}
	}

	if _, err := c.SelectWord("A", "B", "C", "D"); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}
}

func TestSelectWordEmptyPool(t *testing.T) {
	c := &Controller{pool: words.NewPool(nil, "test"), opts: Options{}.withDefaults()}
	if _, err := c.SelectWord(); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestLogAssociationEmptyInputIsNoop(t *testing.T) {
	c := newTestController(t, testPool(), Options{})
	before := c.Round()

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, ok := c.LogAssociation(in); ok {
			t.Fatalf("expected %q to be ignored", in)
		}
	}
	if len(c.Entries()) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(c.Entries()))
	}
	if c.Round() != before {
		t.Fatalf("round advanced: before %+v after %+v", before, c.Round())
	}
	if c.Snapshot().ShowHistory {
		t.Fatal("history should stay hidden")
	}
}

func TestLogAssociationRecordsAndAdvances(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	c := newTestController(t, testPool(), Options{Clock: clock})
	if err := c.GenerateTheme(); err != nil {
		t.Fatalf("generate theme: %v", err)
	}
	before := c.Round()

	entry, ok := c.LogAssociation("  x  ")
	if !ok {
		t.Fatal("expected entry to be logged")
	}
	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got != entry {
		t.Fatalf("returned entry differs from log: %+v vs %+v", entry, got)
	}
	if got.Connection != "x" || got.Word1 != before.Word1 || got.Word2 != before.Word2 || got.Theme != before.Theme {
		t.Fatalf("entry does not match round %+v: %+v", before, got)
	}
	if got.ID == "" {
		t.Fatal("expected entry id")
	}
	if !got.CreatedAt.Equal(clock.Now()) {
		t.Fatalf("expected timestamp %v, got %v", clock.Now(), got.CreatedAt)
	}
	if c.Round().Number != before.Number+1 {
		t.Fatalf("expected round %d, got %d", before.Number+1, c.Round().Number)
	}
	if !c.Snapshot().ShowHistory {
		t.Fatal("history should be visible after first entry")
	}
}

func TestSnapshotEntriesNewestFirst(t *testing.T) {
	c := newTestController(t, testPool(), Options{})
	for _, s := range []string{"first", "second", "third"} {
		if _, ok := c.LogAssociation(s); !ok {
			t.Fatalf("log %q failed", s)
		}
	}

	snap := c.Snapshot()
	if len(snap.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(snap.Entries))
	}
	if snap.Entries[0].Connection != "third" || snap.Entries[2].Connection != "first" {
		t.Fatalf("expected newest-first order, got %+v", snap.Entries)
	}
	if c.Entries()[0].Connection != "first" {
		t.Fatal("Entries should keep insertion order")
	}
}

func TestSmallPoolCannotStart(t *testing.T) {
	tests := []struct {
		name string
		pool *words.Pool
	}{
		{"empty", words.NewPool(nil, "test")},
		{"one", testPool("A")},
		{"three", testPool("A", "B", "C")},
		{"duplicates collapse", testPool("A", "a", "B", "C")},
		{"fallback", words.Fallback()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, tt.pool, Options{TimerEnabled: true})

			if c.State() != model.StateCannotStart {
				t.Fatalf("expected cannot_start, got %s", c.State())
			}
			if c.Snapshot().Error == "" {
				t.Fatal("expected an error message")
			}
			if !errors.Is(c.GenerateRound(), ErrCannotStart) {
				t.Fatal("expected ErrCannotStart from GenerateRound")
			}
			if !errors.Is(c.GenerateTheme(), ErrCannotStart) {
				t.Fatal("expected ErrCannotStart from GenerateTheme")
			}
			if _, ok := c.LogAssociation("x"); ok {
				t.Fatal("expected LogAssociation to be ignored")
			}
			c.SetTimer(true)
			if c.TimerRunning() {
				t.Fatal("timer must not run")
			}
			if c.Round() != (model.Round{}) {
				t.Fatalf("expected no round, got %+v", c.Round())
			}
		})
	}
}
