package cuckoomap

// Value is the fixed-size payload carried alongside a fingerprint. It is
// opaque to the map: copied by value, never interpreted.
type Value [ValueSize]byte

// Bucket is a single (fingerprint, value) slot. Single-slot buckets trade
// maximum achievable load factor for branch-free O(1) slot logic, compared
// to the multi-slot buckets of classic cuckoo filters.
//
// The zero Bucket is NOT empty (the sentinel is non-zero); buckets must be
// initialized via clear() or emptyBucket().
type Bucket struct {
	fp    fingerprint
	value Value
}

func emptyBucket() Bucket {
	return Bucket{fp: emptyFp()}
}

// set stores (fp, value) if the slot is empty or already holds fp, in which
// case the value is overwritten. Returns false on a different occupant,
// leaving the slot untouched.
func (b *Bucket) set(fp fingerprint, value Value) bool {
	if b.fp.isEmpty() || b.fp == fp {
		b.fp = fp
		b.value = value
		return true
	}
	return false
}

// reset empties the slot iff it holds exactly fp.
func (b *Bucket) reset(fp fingerprint) bool {
	if b.fp == fp {
		b.fp = emptyFp()
		// value needs no invalidation, emptiness is decided by the
		// fingerprint alone
		return true
	}
	return false
}

// clear unconditionally empties the slot, discarding the value.
func (b *Bucket) clear() {
	b.fp = emptyFp()
}

func (b *Bucket) isEmpty() bool {
	return b.fp.isEmpty()
}

// FingerprintBytes exports the raw fingerprint bytes for external
// persistence formats. The sentinel bytes of an empty slot export as-is.
func (b *Bucket) FingerprintBytes() []byte {
	out := make([]byte, FingerprintSize)
	copy(out, b.fp[:])
	return out
}

// BucketFromFingerprintBytes reconstructs a bucket from raw fingerprint
// bytes as exported by FingerprintBytes. The value is left at its zero
// default: value persistence is the external serialization format's
// responsibility. Sentinel bytes reconstruct an empty bucket.
func BucketFromFingerprintBytes(p []byte) (Bucket, error) {
	if len(p) != FingerprintSize {
		return emptyBucket(), ErrInvalidArgument
	}
	var fp fingerprint
	copy(fp[:], p)
	return Bucket{fp: fp}, nil
}
