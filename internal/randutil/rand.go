// Package randutil builds the seeded generators handed to random strategies.
// Every generator is owned by exactly one strategy; nothing here is global.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. The same seed
// always yields the same sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream under seed, so a
// batch of matches can each own a generator and still be reproducible.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

// SeedFromTime picks a seed when the caller did not ask for one.
func SeedFromTime(now time.Time) int64 {
	return int64(mix(uint64(now.UnixNano())))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
