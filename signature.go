package signet

import (
	"math/bits"
	"strings"
)

// Signature is a set of component ids. An entity's signature records which
// components it owns; a system's signature records which it requires.
type Signature uint32

// Compile-time check that Signature holds MaxComponents bits.
const _ = Signature(1 << (MaxComponents - 1))

// Set enables the bit for id.
func (s *Signature) Set(id ComponentID) {
	*s |= 1 << id
}

// Unset disables the bit for id.
func (s *Signature) Unset(id ComponentID) {
	*s &^= 1 << id
}

// Reset clears every bit.
func (s *Signature) Reset() {
	*s = 0
}

// Test reports whether the bit for id is set.
func (s Signature) Test(id ComponentID) bool {
	return s&(1<<id) != 0
}

// Contains reports whether every bit set in sub is also set in s. An entity
// belongs to a system iff entitySignature.Contains(systemSignature).
func (s Signature) Contains(sub Signature) bool {
	return s&sub == sub
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether no bit is set.
func (s Signature) IsEmpty() bool {
	return s == 0
}

// String renders the signature as MaxComponents binary digits, highest id
// first, the way std::bitset prints.
func (s Signature) String() string {
	var b strings.Builder
	b.Grow(MaxComponents)
	for i := MaxComponents - 1; i >= 0; i-- {
		if s.Test(ComponentID(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
