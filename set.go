/*
 * Fixed-capacity Cuckoo hash set implementation
 * LICENSE: MIT
 */

package cuckoomap

import (
	"fmt"
	"strings"
)

// Set is a membership-only view over Map: keys carry a zero Value. It
// inherits the Map's probabilistic contract, including false positives and
// the lossy ErrNotEnoughSpace behavior of Add.
type Set struct {
	Map
}

// NewSet returns a Set with capacity rounded up to the next power of two
// (minimum 1) and the given hash function families.
func NewSet(capacity uint64, hasher1, hasher2 Hash64WithSeedFunc) (*Set, error) {
	m, err := NewMap(capacity, hasher1, hasher2)
	if err != nil {
		return nil, err
	}
	return &Set{Map: *m}, nil
}

// NewDefaultSet returns a Set with DefaultCapacity and the default hash
// families.
func NewDefaultSet() *Set {
	return &Set{Map: *New()}
}

// NewSetWithCapacity is NewDefaultSet with an explicit capacity.
func NewSetWithCapacity(capacity uint64) *Set {
	return &Set{Map: *NewWithCapacity(capacity)}
}

// Add inserts key if absent. Returns true iff the set was mutated.
func (s *Set) Add(key []byte) (bool, error) {
	return s.Map.PutIfAbsent(key, Value{})
}

// Contains reports whether key is (probably) in the set.
func (s *Set) Contains(key []byte) bool {
	return s.Map.ContainsKey(key)
}

// Del removes key. Returns true iff an entry was found and removed.
func (s *Set) Del(key []byte) bool {
	return s.Map.Del(key)
}

func (s *Set) String() string {
	return strings.ReplaceAll(s.Map.String(), fmt.Sprintf("%T", Map{}), fmt.Sprintf("%T", Set{}))
}
