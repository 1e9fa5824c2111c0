package cuckoomap

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Modelled after
// https://github.com/efficient/cuckoofilter/blob/master/example/test.cc
// to make test setup and results comparable.
func TestFalsePositiveRate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1M-key false positive rate measurement in short mode")
	}

	const totalItems = 1_000_000

	key := func(i uint64) []byte {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], i)
		return b[:]
	}

	m := NewWithCapacity(totalItems)

	// We might not be able to get all items in, but still there should be
	// enough so we can just use what has fit in and continue with the test.
	var numInserted uint64
	for i := uint64(0); i < totalItems; i++ {
		if err := m.Put(key(i), Value{}); err != nil {
			break
		}
		numInserted++
	}
	assert.Greater(t, numInserted, uint64(0))

	// The range [0, numInserted) is known to be in the map, up to the one
	// victim the final failed Put may have dropped.
	misses := 0
	for i := uint64(0); i < numInserted; i++ {
		if !m.ContainsKey(key(i)) {
			misses++
		}
	}
	assert.LessOrEqual(t, misses, 1)

	// The range [totalItems, 2*totalItems) is known *not* to be in the map;
	// every claimed hit is a false positive.
	falseQueries := 0
	for i := uint64(totalItems); i < 2*totalItems; i++ {
		if m.ContainsKey(key(i)) {
			falseQueries++
		}
	}
	rate := float64(falseQueries) / float64(totalItems)

	t.Logf("elements inserted: %v", numInserted)
	t.Logf("memory usage: %v", formatBytes(m.MemoryInBytes()))
	t.Logf("false positive rate: %.4f%%", 100*rate)
	assert.Less(t, rate, 0.03)
}
