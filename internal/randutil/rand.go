package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so a tournament replays
// identically given the same value.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ResolveSeed returns seed unchanged unless it is zero, in which case a
// time-based seed is chosen. Callers should log the resolved value so a run
// can be reproduced.
func ResolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
