package generate

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// rngFromSeed returns a deterministic *rand.Rand for seed != 0. A zero
// seed draws 8 bytes of OS entropy instead, so every run gets an
// independent stream.
//
// math/rand.Rand is not goroutine-safe; one stream per sampler.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := cryptorand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
		if seed == 0 {
			// entropy unavailable or (vanishingly unlikely) all-zero draw
			seed = 0x9e3779b97f4a7c15
		}
	}
	return rand.New(rand.NewSource(int64(seed)))
}
