package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nextround/internal/modules/swings/domain"
)

func TestSelectionToggleEvictsOldest(t *testing.T) {
	t.Parallel()
	var s domain.Selection[int]
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	if diff := cmp.Diff([]int{2, 3}, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if !s.CanCompare() {
		t.Fatalf("full selection should be comparable")
	}
}

func TestSelectionToggleRemovesPresentID(t *testing.T) {
	t.Parallel()
	var s domain.Selection[int]
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)
	if diff := cmp.Diff([]int{2}, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if s.CanCompare() {
		t.Fatalf("single pick should not be comparable")
	}
}

func TestSelectionToggleTwiceRestores(t *testing.T) {
	t.Parallel()
	var s domain.Selection[string]
	s.Toggle("a")
	before := s.Items()
	s.Toggle("b")
	s.Toggle("b")
	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Fatalf("double toggle changed selection (-want +got):\n%s", diff)
	}
}

func TestSelectionNeverExceedsCapacity(t *testing.T) {
	t.Parallel()
	var s domain.Selection[int]
	for _, id := range []int{5, 1, 5, 2, 3, 3, 4, 1, 9} {
		s.Toggle(id)
		if s.Len() > domain.CompareCapacity {
			t.Fatalf("selection grew to %d after toggling %d", s.Len(), id)
		}
		seen := map[int]bool{}
		for _, item := range s.Items() {
			if seen[item] {
				t.Fatalf("duplicate %d in %v", item, s.Items())
			}
			seen[item] = true
		}
		if s.CanCompare() != (s.Len() == domain.CompareCapacity) {
			t.Fatalf("CanCompare disagrees with size %d", s.Len())
		}
	}
}

func TestSelectionPositionAndPair(t *testing.T) {
	t.Parallel()
	var s domain.Selection[int]
	if _, _, ok := s.Pair(); ok {
		t.Fatalf("empty selection should not yield a pair")
	}
	s.Toggle(7)
	s.Toggle(4)
	if got := s.Position(7); got != 1 {
		t.Fatalf("position of 7 = %d, want 1", got)
	}
	if got := s.Position(4); got != 2 {
		t.Fatalf("position of 4 = %d, want 2", got)
	}
	if got := s.Position(99); got != 0 {
		t.Fatalf("position of absent id = %d, want 0", got)
	}
	first, second, ok := s.Pair()
	if !ok || first != 7 || second != 4 {
		t.Fatalf("pair = (%d, %d, %v)", first, second, ok)
	}
	s.Clear()
	if s.Len() != 0 || s.Contains(7) {
		t.Fatalf("clear left %v", s.Items())
	}
}

func TestSelectionItemsIsACopy(t *testing.T) {
	t.Parallel()
	var s domain.Selection[int]
	s.Toggle(1)
	items := s.Items()
	items[0] = 42
	if !s.Contains(1) {
		t.Fatalf("mutating Items result leaked into selection")
	}
}
