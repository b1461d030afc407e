package dhash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRanges(t *testing.T) {
	for _, capacity := range []int{2, 3, 5, 53, 101, 1009} {
		for i := 0; i < 500; i++ {
			key := fmt.Sprintf("key-%d", i)

			h1 := hash1(key, capacity)
			assert.Less(t, h1, uint64(capacity))

			step := hash2(key, capacity) + 1
			assert.GreaterOrEqual(t, step, uint64(1))
			assert.LessOrEqual(t, step, uint64(capacity-1))
		}
	}
}

func TestProbeFirstAttemptIsHome(t *testing.T) {
	for _, key := range []string{"", "a", "INCREMENT", "a much longer key with spaces"} {
		assert.Equal(t, int(hash1(key, 53)), probe(key, 53, 0))
	}
}

func TestProbeFormula(t *testing.T) {
	key := "apples"
	capacity := 101
	h1 := hash1(key, capacity)
	h2 := hash2(key, capacity)

	for attempt := 0; attempt < 300; attempt++ {
		want := int((h1 + uint64(attempt)*(h2+1)) % uint64(capacity))
		assert.Equal(t, want, probe(key, capacity, attempt))
	}
}

// With a prime capacity the first capacity attempts visit every slot once.
func TestProbeVisitsEverySlot(t *testing.T) {
	for _, capacity := range []int{2, 3, 7, 53, 101, 1009} {
		for i := 0; i < 50; i++ {
			key := fmt.Sprintf("k%d", i)
			seen := make(map[int]bool, capacity)

			for attempt := 0; attempt < capacity; attempt++ {
				idx := probe(key, capacity, attempt)
				require.False(t, seen[idx], "capacity %d key %q revisited slot %d", capacity, key, idx)
				seen[idx] = true
			}
			assert.Len(t, seen, capacity)
		}
	}
}

func TestHashesAreDeterministic(t *testing.T) {
	assert.Equal(t, hash1("stable", 53), hash1("stable", 53))
	assert.Equal(t, hash2("stable", 53), hash2("stable", 53))
	assert.Equal(t, fnv1a("stable"), fnv1a("stable"))
	assert.Equal(t, uint64(offset64), fnv1a(""))
}
