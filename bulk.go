package enumflags

import "strings"

// HasAny reports whether at least one flag in flags is a member of s.
// Returns false for an empty flags slice.
func HasAny[F Flag](s Set, flags []F) bool {
	for _, f := range flags {
		if s.Has(f) {
			return true
		}
	}
	return false
}

// HasAll reports whether every flag in flags is a member of s.
// Returns true for an empty flags slice.
func HasAll[F Flag](s Set, flags []F) bool {
	for _, f := range flags {
		if !s.Has(f) {
			return false
		}
	}
	return true
}

// FlagsOf returns the flags of all that are members of s, preserving the
// order of all. The result is a newly allocated slice, later changes to
// all do not affect it.
func FlagsOf[F Flag](s Set, all []F) []F {
	result := make([]F, 0, len(all))
	for _, f := range all {
		if s.Has(f) {
			result = append(result, f)
		}
	}
	return result
}

// Describe returns the labels of the flags of all that are members of s,
// joined by " | ". Returns "none" when no flag matches.
func Describe[F Flag](s Set, all []F) string {
	matched := FlagsOf(s, all)
	if len(matched) == 0 {
		return "none"
	}

	labels := make([]string, 0, len(matched))
	for _, f := range matched {
		labels = append(labels, f.FlagLabel())
	}
	return strings.Join(labels, " | ")
}

// Combine returns the union of the bit values of flags, NoFlags for an
// empty slice. Passing the full declared enumeration yields the mask of
// every flag.
func Combine[F Flag](flags []F) Set {
	result := NoFlags
	for _, f := range flags {
		result |= ValueOf(f)
	}
	return result
}

// AddAll returns a new set with every flag in flags added
func AddAll[F Flag](s Set, flags []F) Set {
	for _, f := range flags {
		s = s.Add(f)
	}
	return s
}

// RemoveAll returns a new set with every flag in flags removed
func RemoveAll[F Flag](s Set, flags []F) Set {
	for _, f := range flags {
		s = s.Remove(f)
	}
	return s
}

// ToggleAll returns a new set with every flag in flags toggled, left to
// right. A flag repeated an odd number of times ends up toggled, an even
// number of times leaves it unchanged.
func ToggleAll[F Flag](s Set, flags []F) Set {
	for _, f := range flags {
		s = s.Toggle(f)
	}
	return s
}
