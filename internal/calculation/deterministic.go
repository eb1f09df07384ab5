package calculation

import (
	"math/rand/v2"
	"time"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc supplies the run seed when the caller leaves it at zero.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// resolveSeed returns seed, or a fresh non-zero seed from seedFunc when seed is zero.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := seedFunc()
	if s == 0 {
		s = 1
	}
	return s
}

// trialRand returns the generator for one trial. Keying on (seed, trial) keeps every
// trial's draws independent of scheduling, so any worker count yields the same outcomes.
func trialRand(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(trial)))
}
