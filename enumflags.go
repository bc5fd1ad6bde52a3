package enumflags

import (
	"fmt"
	"strconv"
)

// Flag is a single named member of a closed enumeration.
// Implementations must return a stable zero-based declaration ordinal
// from FlagIndex and a stable display name from FlagLabel.
type Flag interface {
	FlagIndex() int
	FlagLabel() string
}

// Set is a bitmask of flags from one enumeration.
// Every operation is pure and returns a new Set, the receiver is never mutated.
type Set uint32

// NoFlags is the empty set
const NoFlags Set = 0

// setBits is the number of usable bit positions in a Set
const setBits = 32

// ValueOf returns the bit value of f, computed as 1 shifted left by the
// flag's ordinal. Panics when the ordinal is outside [0, 32): an
// enumeration with more than 32 flags does not fit a Set.
func ValueOf(f Flag) Set {
	index := f.FlagIndex()
	if index < 0 || index >= setBits {
		panic("enumflags: flag index " + strconv.Itoa(index) + " out of range [0, 32)")
	}
	return Set(1) << index
}

// BinaryString returns the unsigned binary digits of the flag's bit value,
// zero-padded on the left to at least 8 characters.
func BinaryString(f Flag) string {
	return fmt.Sprintf("%08b", uint32(ValueOf(f)))
}

// Has reports whether f is a member of s
func (s Set) Has(f Flag) bool {
	return s&ValueOf(f) != 0
}

// Add returns a new set with f added,
// adding an already present flag returns the same value
func (s Set) Add(f Flag) Set {
	return s | ValueOf(f)
}

// Remove returns a new set with f removed,
// removing an absent flag returns the same value
func (s Set) Remove(f Flag) Set {
	return s &^ ValueOf(f)
}

// Toggle returns a new set with the membership of f inverted,
// toggling twice returns the original set
func (s Set) Toggle(f Flag) Set {
	return s ^ ValueOf(f)
}

// String ...
func (s Set) String() string {
	return strconv.FormatUint(uint64(s), 10)
}
