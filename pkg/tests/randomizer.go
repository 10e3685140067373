package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// IntRange returns a value in [lo, hi].
	IntRange func(lo, hi int) int
	// Int64Range returns a value in [lo, hi].
	Int64Range func(lo, hi int64) int64
}

func NewRandomizer() Randomizer {
	return NewSeededRandomizer(time.Now().Unix())
}

func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		IntRange: func(lo, hi int) int {
			return lo + random.Intn(hi-lo+1)
		},
		Int64Range: func(lo, hi int64) int64 {
			return lo + random.Int63n(hi-lo+1)
		},
	}
}
