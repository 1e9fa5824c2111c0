package cuckoomap

const (
	// FingerprintSize is the fixed fingerprint width in bytes.
	FingerprintSize = 1
	// ValueSize is the fixed value payload width in bytes.
	ValueSize = 1
	// DefaultCapacity is the bucket count allocated by New().
	DefaultCapacity = 1 << 20
	// MaxEvictions caps the displacement chain a single Put may perform
	// before it gives up with ErrNotEnoughSpace.
	MaxEvictions = 500
)

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}
