package market

import (
	"math/rand"
	"time"
)

// Clock abstracts wall-clock access so tests can pin time and assert
// exact evolution outputs.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

// NewLiveRand returns a time-seeded rand source for production wiring.
func NewLiveRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
