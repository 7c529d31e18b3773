package hashtable

import (
	"encoding/binary"
	"math"

	"github.com/spaolacci/murmur3"
)

// HashFunc maps a key to a bucket index, the result MUST be in [0, capacity).
// It must be a pure function of its arguments, resizing relies on that.
type HashFunc func(key int, capacity int) int

// goldenRatioFrac is the fractional part of the golden ratio
const goldenRatioFrac = 0.6180339887

func mod(a int, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// DefaultHash combines multiplicative hashing with a plain modulo:
//
//	hash1 = floor(capacity * frac(key * A))
//	hash2 = key mod capacity
//	index = (hash1 + hash2) mod capacity
//
// A is the fractional part of the golden ratio.
// Negative keys are mapped into [0, capacity) as well.
func DefaultHash(key int, capacity int) int {
	product := float64(key) * goldenRatioFrac
	frac := product - math.Floor(product)

	hash1 := int(math.Floor(float64(capacity) * frac))
	hash2 := mod(key, capacity)

	return mod(hash1+hash2, capacity)
}

// MurmurHash hashes the little endian bytes of the key with murmur3
func MurmurHash(key int, capacity int) int {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], uint64(key))
	return int(murmur3.Sum64(data[:]) % uint64(capacity))
}
