// Package testutil provides assertions and deterministic fixtures shared
// across package tests.
package testutil

import (
	"math/rand"
	"time"
)

// FixedClock is a Clock implementation pinned to a settable instant.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the pinned instant forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// NewFixedClock pins a clock to the given unix second.
func NewFixedClock(unixSec int64) *FixedClock {
	return &FixedClock{T: time.Unix(unixSec, 0).UTC()}
}

// NewSeededRand returns a deterministic rand source for reproducible tests.
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
