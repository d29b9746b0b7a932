package bloom

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a Bloom filter with a fixed number of bits and k independently
// keyed hash functions.
//
// Bits are only ever set, never cleared, so an element that has been added
// is always reported as present. Elements that were never added may be
// reported as present too (a false positive); the chance grows as the filter
// fills up.
//
// A Filter is not safe for concurrent use. Callers that share one must guard
// every method, TestAndSet in particular, with their own lock.
type Filter struct {
	bits    *bitset.BitSet
	m       uint64
	hashers []hasher
}

// Option configures a Filter at construction.
type Option func(*options)

type options struct {
	rand Rand
}

// WithRand draws the hasher keys from r instead of the process-wide
// generator. Filters built from identically seeded sources hash identically.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// NewWithBits creates an empty filter of m bits for n expected elements. The
// number of hash functions is derived with HashesForBits.
func NewWithBits(m, n uint64, opts ...Option) (*Filter, error) {
	k, err := HashesForBits(m, n)
	if err != nil {
		return nil, err
	}
	return newFilter(m, k, opts...)
}

// NewWithHashes creates an empty filter with k hash functions for n expected
// elements. The number of bits is derived with BitsForHashes.
func NewWithHashes(k, n uint64, opts ...Option) (*Filter, error) {
	m, err := BitsForHashes(k, n)
	if err != nil {
		return nil, err
	}
	return newFilter(m, k, opts...)
}

func newFilter(m, k uint64, opts ...Option) (*Filter, error) {
	if m == 0 {
		return nil, ErrZeroBits
	}
	if k == 0 {
		return nil, ErrZeroHashes
	}
	if m > maxBits {
		return nil, fmt.Errorf("%w: %d bits", ErrSizeOverflow, m)
	}
	if k > MaxHashes {
		return nil, fmt.Errorf("%w: %d hashes", ErrSizeOverflow, k)
	}

	// bitset.New hands back an empty set when the allocation fails.
	b := bitset.New(uint(m))
	if b.Len() != uint(m) {
		return nil, fmt.Errorf("%w: cannot allocate %d bits", ErrSizeOverflow, m)
	}

	o := options{rand: globalRand{}}
	for _, opt := range opts {
		opt(&o)
	}

	hashers := make([]hasher, k)
	for i := range hashers {
		hashers[i] = newHasher(o.rand)
	}
	return &Filter{
		bits:    b,
		m:       m,
		hashers: hashers,
	}, nil
}

// Locations returns the bit index chosen by each hash function for x, in
// hash function order. The result is the same for every call on f.
func (f *Filter) Locations(x Hashable) []uint64 {
	return f.locations(keyOf(x))
}

func (f *Filter) locations(key []byte) []uint64 {
	locs := make([]uint64, len(f.hashers))
	for i, h := range f.hashers {
		locs[i] = h.sum(key) % f.m
	}
	return locs
}

// SetBytes adds key to the filter.
func (f *Filter) SetBytes(key []byte) {
	for _, h := range f.hashers {
		f.bits.Set(uint(h.sum(key) % f.m))
	}
}

// TestBytes returns true if key was probably added to the filter and false if
// it definitely was not.
func (f *Filter) TestBytes(key []byte) bool {
	for _, h := range f.hashers {
		if !f.bits.Test(uint(h.sum(key) % f.m)) {
			return false
		}
	}
	return true
}

// TestAndSetBytes reports whether key was probably present and adds it if it
// was not.
func (f *Filter) TestAndSetBytes(key []byte) bool {
	if f.TestBytes(key) {
		return true
	}
	f.SetBytes(key)
	return false
}

// Set adds x to the filter.
func (f *Filter) Set(x Hashable) { f.SetBytes(keyOf(x)) }

// Test returns true if x was probably added to the filter.
func (f *Filter) Test(x Hashable) bool { return f.TestBytes(keyOf(x)) }

// TestAndSet reports whether x was probably present and adds it if it was not.
func (f *Filter) TestAndSet(x Hashable) bool { return f.TestAndSetBytes(keyOf(x)) }

// SetString adds key to the filter.
func (f *Filter) SetString(key string) { f.SetBytes(toBytes(key)) }

// TestString returns true if key was probably added to the filter.
func (f *Filter) TestString(key string) bool { return f.TestBytes(toBytes(key)) }

// TestAndSetString reports whether key was probably present and adds it if it
// was not.
func (f *Filter) TestAndSetString(key string) bool { return f.TestAndSetBytes(toBytes(key)) }

// Stats returns the number of hash functions and the number of bits.
func (f *Filter) Stats() (hashes, nbits uint64) {
	return uint64(len(f.hashers)), f.m
}

// Count returns the number of set bits.
func (f *Filter) Count() uint64 { return uint64(f.bits.Count()) }

// Size returns the approximate number of distinct elements in the filter,
// estimated from the fraction of set bits. Once every bit is set the estimate
// is unbounded and Size returns math.MaxInt.
func (f *Filter) Size() int {
	m := float64(f.m)
	k := float64(len(f.hashers))
	X := float64(f.bits.Count())
	if X >= m {
		return math.MaxInt
	}
	// n* = -(m/k) ln[1 - x/m]
	return int(math.Floor(-((m / k) * math.Log(1-(X/m))) + 0.5))
}

// FalsePositiveRate returns the probability that Test reports an element
// that was never added, given the bits set so far.
func (f *Filter) FalsePositiveRate() float64 {
	return math.Pow(float64(f.bits.Count())/float64(f.m), float64(len(f.hashers)))
}
