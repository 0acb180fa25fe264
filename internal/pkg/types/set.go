package types

// Set is a generic hash set for comparable types. Add modifies the set in
// place.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Contains reports whether value is a member of the set.
func (s Set[T]) Contains(value T) bool {
	_, ok := s[value]
	return ok
}

// Unique returns a new slice with the elements of values in order of first
// appearance and every duplicate dropped. The input is never modified.
func Unique[T comparable](values []T) []T {
	seen := NewSet[T]()
	out := make([]T, 0, len(values))
	for _, v := range values {
		if seen.Contains(v) {
			continue
		}

		seen.Add(v)
		out = append(out, v)
	}

	return out
}
