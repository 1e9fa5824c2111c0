/*
 * Fixed-capacity Cuckoo hash map implementation
 * LICENSE: MIT
 */

package cuckoomap

import (
	"encoding/binary"
	"fmt"
	"time"
	"unsafe"

	fastrand "github.com/detailyang/fastrand-go"
)

// fingerprintSalt seeds the re-hash that perturbs a digest whose top byte
// collides with the empty sentinel.
const fingerprintSalt = 0x9e3779b97f4a7c15

// To simplify API design, we only accept []byte as key
//	for a struct, you can marshal/hash it before insertion
//
// The map stores a 1-byte compressed fingerprint of each key, never the key
// itself:
//	|----------------|	key digest
//	|-|			fp (compressed fingerprint)
//
// Consequences a caller must accept:
//	1) keys cannot be enumerated, only probed
//	2) two keys sharing fingerprint and bucket index are indistinguishable,
//	   so Get can report a value for a key never inserted (false positive)
//	   and a colliding Put overwrites the earlier entry's value
//	3) no false negatives: a key that was stored and not evicted or deleted
//	   is always found
//
// The bucket array length is fixed at construction. There is no resize: a
// bigger table can only be rebuilt by re-inserting from the caller's own
// source of keys, since fingerprints cannot be re-hashed losslessly.
//
// NOTE: This struct is NOT thread safe
type Map struct {
	// [*] single-slot bucket array
	buckets []Bucket
	count   uint64

	// Total bucket count, i.e. len(buckets), always a power of two
	bucketCount uint64

	seed1 uint64
	seed2 uint64

	hasher1 Hash64WithSeedFunc
	hasher2 Hash64WithSeedFunc

	// Picks the start of an eviction chain among the two candidate
	// indices. Injectable so tests can pin exact eviction trajectories.
	random func() uint32
}

// triple is everything the map ever knows about a key. Indices are kept at
// full width and reduced modulo the bucket count on access.
type triple struct {
	fp fingerprint
	i1 uint64
	i2 uint64
}

func (t triple) randomIndex(random func() uint32) uint64 {
	if random()&1 == 0 {
		return t.i1
	}
	return t.i2
}

func newMap(capacity uint64, hasher1, hasher2 Hash64WithSeedFunc, random func() uint32) (*Map, error) {
	if hasher1 == nil || hasher2 == nil || random == nil {
		return nil, ErrInvalidArgument
	}

	bucketCount := nextPowerOfTwo(capacity)
	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		buckets[i].clear()
	}

	seed1 := uint64(time.Now().UnixNano())
	seed2 := seed1 * 17

	return &Map{
		buckets:     buckets,
		bucketCount: bucketCount,
		seed1:       seed1,
		seed2:       seed2,
		hasher1:     hasher1,
		hasher2:     hasher2,
		random:      random,
	}, nil
}

// NewMap returns a Map with capacity rounded up to the next power of two
// (minimum 1) and the given hash function families.
func NewMap(capacity uint64, hasher1, hasher2 Hash64WithSeedFunc) (*Map, error) {
	return newMap(capacity, hasher1, hasher2, fastrand.FastRand)
}

// New returns a Map with DefaultCapacity and the default hash families
// (farmhash for keys, xxhash for alternate indices).
func New() *Map {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity is New with an explicit capacity, rounded up to the next
// power of two, minimum 1.
func NewWithCapacity(capacity uint64) *Map {
	m, _ := newMap(capacity, defaultHasher1, defaultHasher2, fastrand.FastRand)
	return m
}

func (m *Map) bucketAt(i uint64) *Bucket {
	return &m.buckets[i&(m.bucketCount-1)]
}

// fingerprintFromHash derives a non-sentinel fingerprint from a 64-bit
// digest. A digest whose top byte equals the empty sentinel is re-hashed
// with a salt until it yields a representable fingerprint; this never
// surfaces to callers.
func (m *Map) fingerprintFromHash(h uint64) fingerprint {
	for byte(h>>56) == emptyFingerprint {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], h)
		h = m.hasher2(buf[:], fingerprintSalt)
	}
	return fingerprint{byte(h >> 56)}
}

// altIndex computes the other candidate index as a pure function of the
// fingerprint and one known index. XOR makes it involutive:
// altIndex(altIndex(i, fp), fp) == i, which is what keeps eviction chains
// well-defined without ever consulting the original key.
func (m *Map) altIndex(i uint64, fp fingerprint) uint64 {
	return i ^ m.hasher2(fp[:], m.seed2)
}

func (m *Map) deriveTriple(key []byte) triple {
	h := m.hasher1(key, m.seed1)
	fp := m.fingerprintFromHash(h)
	return triple{
		fp: fp,
		i1: h,
		i2: m.altIndex(h, fp),
	}
}

// Get reports the value stored for key.
// A false result means the key is definitely absent; a true result may be a
// false positive for a key colliding on fingerprint and bucket index.
func (m *Map) Get(key []byte) (Value, bool) {
	t := m.deriveTriple(key)
	if b := m.bucketAt(t.i1); b.fp == t.fp {
		return b.value, true
	}
	if b := m.bucketAt(t.i2); b.fp == t.fp {
		return b.value, true
	}
	return Value{}, false
}

// ContainsKey reports whether key is (probably) present.
func (m *Map) ContainsKey(key []byte) bool {
	_, ok := m.Get(key)
	return ok
}

// Put stores value under key. If both candidate buckets hold unrelated
// entries, occupants are displaced along a chain of at most MaxEvictions
// alternate positions until one lands in a free slot.
//
// When the chain cap is exceeded, Put returns ErrNotEnoughSpace with an
// unusual contract: the requested key/value pair HAS been stored, and the
// last displaced entry, belonging to some unrelated key, was dropped. This
// is a lossy failure as the table saturates, not a rollback; callers
// recover by rebuilding with a larger capacity.
func (m *Map) Put(key []byte, value Value) error {
	t := m.deriveTriple(key)
	if m.put(t.i1, t.fp, value) || m.put(t.i2, t.fp, value) {
		return nil
	}

	// Both candidates occupied by different fingerprints. Start the chain
	// at a random candidate to avoid systematic bias toward one slot.
	i := t.randomIndex(m.random)
	current := Bucket{fp: t.fp, value: value}

	for k := 0; k < MaxEvictions; k++ {
		b := m.bucketAt(i)

		// Swap the occupant out. Occupied to occupied, count unchanged.
		kicked := *b
		*b = current

		// The kicked entry's other candidate follows from its own
		// fingerprint.
		i = m.altIndex(i, kicked.fp)
		if m.put(i, kicked.fp, kicked.value) {
			return nil
		}
		current = kicked
	}

	// current is dropped here: the requested pair is in the table, the
	// last displaced entry is not.
	return ErrNotEnoughSpace
}

// PutIfAbsent stores value under key unless the key (or a collision of it)
// is already present. Returns true iff the map was mutated.
func (m *Map) PutIfAbsent(key []byte, value Value) (bool, error) {
	if _, ok := m.Get(key); ok {
		return false, nil
	}
	if err := m.Put(key, value); err != nil {
		return false, err
	}
	return true, nil
}

// Del removes key. Returns true iff an entry was found and removed.
func (m *Map) Del(key []byte) bool {
	t := m.deriveTriple(key)
	return m.remove(t.i1, t.fp) || m.remove(t.i2, t.fp)
}

// Clear empties every bucket in O(capacity).
func (m *Map) Clear() {
	if m.IsEmpty() {
		return
	}
	for i := range m.buckets {
		m.buckets[i].clear()
	}
	m.count = 0
}

// put is the only counted placement path. The counter moves exactly once
// per empty-to-occupied transition, so a same-fingerprint overwrite leaves
// it alone and Count always equals the number of non-empty buckets.
func (m *Map) put(i uint64, fp fingerprint, value Value) bool {
	b := m.bucketAt(i)
	wasEmpty := b.isEmpty()
	if b.set(fp, value) {
		if wasEmpty {
			m.count++
		}
		return true
	}
	return false
}

func (m *Map) remove(i uint64, fp fingerprint) bool {
	if m.bucketAt(i).reset(fp) {
		m.count--
		return true
	}
	return false
}

// Count returns the number of occupied buckets.
func (m *Map) Count() uint64 {
	return m.count
}

func (m *Map) IsEmpty() bool {
	return m.count == 0
}

// Capacity returns the fixed bucket count.
func (m *Map) Capacity() uint64 {
	return m.bucketCount
}

// LoadFactor returns the fraction of non-empty buckets over capacity. This
// is an O(capacity) scan of the actual array, intended for diagnostics, not
// hot paths.
func (m *Map) LoadFactor() float64 {
	filled := uint64(0)
	for i := range m.buckets {
		if !m.buckets[i].isEmpty() {
			filled++
		}
	}
	return float64(filled) / float64(m.bucketCount)
}

// MemoryInBytes returns struct overhead plus the bucket array footprint.
func (m *Map) MemoryInBytes() uint64 {
	return uint64(unsafe.Sizeof(*m)) + m.bucketCount*uint64(unsafe.Sizeof(Bucket{}))
}

func (m *Map) String() string {
	return fmt.Sprintf("%T{count: %v, buckets: %v, loadFactor: %.3f, memory: %v}",
		*m, m.count, m.bucketCount, m.LoadFactor(), formatBytes(m.MemoryInBytes()))
}
