package dhash

import "github.com/cespare/xxhash/v2"

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// fnv1a computes a 64-bit FNV-1a hash of the key
func fnv1a(key string) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

// hash1 picks the home slot of key in [0, capacity).
func hash1(key string, capacity int) uint64 {
	return fnv1a(key) % uint64(capacity)
}

// hash2 is independent of hash1. The result lies in [0, capacity-2] so
// that the probe step hash2+1 stays within [1, capacity-1].
func hash2(key string, capacity int) uint64 {
	if capacity < 2 {
		return 0
	}
	return xxhash.Sum64String(key) % uint64(capacity-1)
}

// probe returns the slot index visited by the given attempt for key.
func probe(key string, capacity, attempt int) int {
	return newProber(key, capacity).at(attempt)
}

// prober caches both hashes of a key for the length of one probe loop.
type prober struct {
	home     uint64
	step     uint64
	capacity uint64
}

func newProber(key string, capacity int) prober {
	return prober{
		home:     hash1(key, capacity),
		step:     hash2(key, capacity) + 1,
		capacity: uint64(capacity),
	}
}

func (p prober) at(attempt int) int {
	return int((p.home + uint64(attempt)*p.step) % p.capacity)
}
