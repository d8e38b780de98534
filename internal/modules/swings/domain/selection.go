package domain

// CompareCapacity is the number of swings that can be compared side by side.
const CompareCapacity = 2

// Selection is an ordered set of at most CompareCapacity ids. Index 0 holds
// the oldest remaining pick; it is the element evicted when another id is
// toggled on while the selection is full. The zero value is empty and ready
// to use. A Selection belongs to a single screen and is not safe for
// concurrent use.
type Selection[T comparable] struct {
	items []T
}

// Toggle removes id when present, appends it when there is room, and
// otherwise evicts the oldest pick so the result is [newest, id].
func (s *Selection[T]) Toggle(id T) {
	if i := s.index(id); i >= 0 {
		next := make([]T, 0, CompareCapacity)
		next = append(next, s.items[:i]...)
		s.items = append(next, s.items[i+1:]...)
		return
	}
	if len(s.items) < CompareCapacity {
		s.items = append(s.items, id)
		return
	}
	next := make([]T, 0, CompareCapacity)
	next = append(next, s.items[1:]...)
	s.items = append(next, id)
}

// Items returns the selected ids in selection order.
func (s *Selection[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Selection[T]) Len() int { return len(s.items) }

func (s *Selection[T]) Contains(id T) bool { return s.index(id) >= 0 }

// Position is the 1-based badge shown next to a selected swing, or 0.
func (s *Selection[T]) Position(id T) int {
	return s.index(id) + 1
}

// CanCompare reports whether the selection is full.
func (s *Selection[T]) CanCompare() bool {
	return len(s.items) == CompareCapacity
}

// Pair returns both picks in order once the selection is full.
func (s *Selection[T]) Pair() (T, T, bool) {
	var zero T
	if !s.CanCompare() {
		return zero, zero, false
	}
	return s.items[0], s.items[1], true
}

func (s *Selection[T]) Clear() {
	s.items = nil
}

func (s *Selection[T]) index(id T) int {
	for i, item := range s.items {
		if item == id {
			return i
		}
	}
	return -1
}
