package cuckoomap

import (
	"fmt"
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/dgryski/go-farm"
)

func benchKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%06d", i))
	}
	return keys
}

func benchmarkPut(b *testing.B, hasher1, hasher2 Hash64WithSeedFunc) {
	keys := benchKeys(1000)
	m, err := NewMap(uint64(len(keys)*2), hasher1, hasher2)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, k := range keys {
			if _, err := m.PutIfAbsent(k, Value{}); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPutFarmhash(b *testing.B) {
	benchmarkPut(b, farm.Hash64WithSeed, xxhash.Checksum64S)
}

func BenchmarkPutXxhash(b *testing.B) {
	benchmarkPut(b, xxhash.Checksum64S, farm.Hash64WithSeed)
}

func BenchmarkGet(b *testing.B) {
	keys := benchKeys(1000)
	m := NewWithCapacity(uint64(len(keys) * 2))
	for _, k := range keys {
		if err := m.Put(k, Value{}); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Get(keys[n%len(keys)])
	}
}

func BenchmarkNew(b *testing.B) {
	for n := 0; n < b.N; n++ {
		New()
	}
}

func BenchmarkClear(b *testing.B) {
	m := New()
	for n := 0; n < b.N; n++ {
		m.Clear()
	}
}
