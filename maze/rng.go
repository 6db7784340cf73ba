// Package maze - RNG utilities for the carver.
//
// Goals:
//   - Determinism: an explicit seed reproduces the wall set exactly.
//   - Encapsulation: a single stream factory; no time-based sources hidden
//     anywhere — the unseeded path derives from the process-global source.
//   - Concurrency: *rand.Rand is not goroutine-safe; every Generate call
//     owns its stream unless the caller injects one.
package maze

import "math/rand"

// streamFromOptions resolves the random stream for one Generate call.
// Precedence: injected Rand, then explicit Seed, then a fresh
// non-reproducible stream seeded from the process-global source.
//
// Complexity: O(1).
func streamFromOptions(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	if o.Seeded {
		return rand.New(rand.NewSource(o.Seed))
	}

	return rand.New(rand.NewSource(rand.Int63()))
}

// shuffleOffsets performs an in-place Fisher–Yates shuffle of the four
// direction offsets using rng.
//
// Complexity: O(1) (fixed length 4).
func shuffleOffsets(dirs *[4][2]int, rng *rand.Rand) {
	var i, j int
	for i = len(dirs) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}
