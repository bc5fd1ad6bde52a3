package enumflags

// Null represents an optional value of type T
type Null[T any] struct {
	Valid bool
	Data  T
}

// NullSet is an optional Set, for flag sets loaded from sources where the
// value may be absent
type NullSet = Null[Set]

// SomeSet returns a valid NullSet holding s
func SomeSet(s Set) NullSet {
	return NullSet{
		Valid: true,
		Data:  s,
	}
}

// OrNoFlags returns the held set, or NoFlags when s is absent
func OrNoFlags(s NullSet) Set {
	if !s.Valid {
		return NoFlags
	}
	return s.Data
}

// HasOrFalse reports whether f is a member of an optional set,
// an absent set has no members
func HasOrFalse(s NullSet, f Flag) bool {
	if !s.Valid {
		return false
	}
	return s.Data.Has(f)
}

// HasAnyOrFalse ...
func HasAnyOrFalse[F Flag](s NullSet, flags []F) bool {
	if !s.Valid {
		return false
	}
	return HasAny(s.Data, flags)
}

// HasAllOrFalse reports whether every flag in flags is a member of an
// optional set. Returns false whenever s is absent, including for an
// empty flags slice, unlike HasAll which is vacuously true on empty input.
func HasAllOrFalse[F Flag](s NullSet, flags []F) bool {
	if !s.Valid {
		return false
	}
	return HasAll(s.Data, flags)
}
