package pending

import (
	"sync"
	"time"

	"github.com/DevalGit/AccountEntry/internal/clock"
)

// State describes where an input is in its settling window.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSettled State = "settled"
)

// Tracker models a fixed settling delay after an input, with
// last-write-wins supersession: a newer input restarts the window and
// the older input's eventual effect is discarded. It replaces the usual
// boolean-flag-plus-timeout arrangement with an explicit state machine.
type Tracker struct {
	clk   clock.Clock
	delay time.Duration

	mu         sync.Mutex
	key        string
	generation uint64
	settleAt   time.Time
}

func NewTracker(clk clock.Clock, delay time.Duration) *Tracker {
	return &Tracker{clk: clk, delay: delay}
}

// Begin records a new input and restarts the settling window. An empty
// key resets the tracker to idle. Returns the input's generation; inputs
// from older generations have been superseded.
func (t *Tracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	t.key = key
	if key == "" {
		t.settleAt = time.Time{}
	} else {
		t.settleAt = t.clk.Now().Add(t.delay)
	}
	return t.generation
}

// Reset returns the tracker to idle, superseding any pending input.
func (t *Tracker) Reset() {
	t.Begin("")
}

// State reports the current settling state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.key == "" {
		return StateIdle
	}
	if t.clk.Now().Before(t.settleAt) {
		return StatePending
	}
	return StateSettled
}

// Key returns the most recent input.
func (t *Tracker) Key() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.key
}

// Current reports whether the generation is still the latest input.
func (t *Tracker) Current(generation uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return generation == t.generation
}
