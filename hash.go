package bloom

import (
	"math/rand/v2"

	"github.com/dchest/siphash"
)

// Rand is a source of hasher keys. *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type Rand interface {
	Uint64() uint64
}

// globalRand draws from the process-wide math/rand/v2 generator, which is
// randomly seeded and safe for concurrent use.
type globalRand struct{}

func (globalRand) Uint64() uint64 { return rand.Uint64() }

// hasher is a single SipHash-2-4 function identified by its 128-bit key. The
// key never changes; every digest is computed from scratch.
type hasher struct {
	k0, k1 uint64
}

func newHasher(r Rand) hasher {
	return hasher{k0: r.Uint64(), k1: r.Uint64()}
}

func (h hasher) sum(key []byte) uint64 {
	return siphash.Hash(h.k0, h.k1, key)
}
