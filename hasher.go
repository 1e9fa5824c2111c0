package cuckoomap

import (
	"github.com/OneOfOne/xxhash"
	"github.com/dgryski/go-farm"
)

// Hash64WithSeedFunc is the pluggable hash function family: it consumes an
// arbitrary byte slice and a seed and yields a 64-bit digest. Swapping
// families changes collision statistics and performance, not the algorithm.
type Hash64WithSeedFunc func(b []byte, seed uint64) uint64

var (
	defaultHasher1 Hash64WithSeedFunc = farm.Hash64WithSeed
	defaultHasher2 Hash64WithSeedFunc = xxhash.Checksum64S
)
