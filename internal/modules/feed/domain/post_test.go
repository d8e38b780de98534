package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nextround/internal/modules/feed/domain"
)

func TestDisplayLikes(t *testing.T) {
	t.Parallel()
	item := domain.Item{Post: domain.Post{Likes: 24}}
	if got := item.DisplayLikes(); got != 24 {
		t.Fatalf("unliked = %d", got)
	}
	item.Liked = true
	if got := item.DisplayLikes(); got != 25 {
		t.Fatalf("liked = %d", got)
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()
	posts := []domain.Post{{ID: 1}, {ID: 2}, {ID: 3}}
	ids := func(ps []domain.Post) []int {
		out := []int{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	first, more := domain.Paginate(posts, 1, 2)
	if diff := cmp.Diff([]int{1, 2}, ids(first)); diff != "" || !more {
		t.Fatalf("page 1 mismatch (more=%v):\n%s", more, diff)
	}
	second, more := domain.Paginate(posts, 2, 2)
	if diff := cmp.Diff([]int{3}, ids(second)); diff != "" || more {
		t.Fatalf("page 2 mismatch (more=%v):\n%s", more, diff)
	}
	third, more := domain.Paginate(posts, 3, 2)
	if len(third) != 0 || more {
		t.Fatalf("page 3 should be empty, got %v (more=%v)", ids(third), more)
	}
}

func TestClosestGolferToleratesTypos(t *testing.T) {
	t.Parallel()
	golfers := []domain.Golfer{{Name: "Mike Johnson", Handicap: 8}, {Name: "Sarah Williams", Handicap: 15}}

	got, distance, ok := domain.ClosestGolfer(golfers, "sara wiliams")
	if !ok || got.Name != "Sarah Williams" || distance != 2 {
		t.Fatalf("got %+v distance %d ok %v", got, distance, ok)
	}
	if _, _, ok := domain.ClosestGolfer(golfers, "Tiger Woods"); ok {
		t.Fatalf("distant name should not match")
	}
	if _, _, ok := domain.ClosestGolfer(golfers, "  "); ok {
		t.Fatalf("blank query should not match")
	}
}
