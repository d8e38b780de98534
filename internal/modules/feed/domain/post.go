package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// MaxGolferDistance is the largest edit distance FindGolfer accepts.
const MaxGolferDistance = 3

type Golfer struct {
	Name     string
	Handicap int
}

type Post struct {
	ID       int
	Golfer   Golfer
	Score    int
	Tips     []string
	Date     time.Time
	Likes    int
	Comments int
	Rating   float64
}

func (p Post) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("post id must be positive")
	}
	if strings.TrimSpace(p.Golfer.Name) == "" {
		return fmt.Errorf("post golfer is required")
	}
	if p.Likes < 0 || p.Comments < 0 {
		return fmt.Errorf("post counters must not be negative")
	}
	return nil
}

// Item is a post as one viewer sees it.
type Item struct {
	Post  Post
	Liked bool
}

// DisplayLikes adds the viewer's own like to the base count.
func (i Item) DisplayLikes() int {
	if i.Liked {
		return i.Post.Likes + 1
	}
	return i.Post.Likes
}

type Page struct {
	Items   []Item
	Number  int
	HasMore bool
}

// Paginate slices posts into 1-based pages of size posts each. Pages past
// the end are empty.
func Paginate(posts []Post, number, size int) ([]Post, bool) {
	start := (number - 1) * size
	if start >= len(posts) {
		return nil, false
	}
	end := start + size
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], end < len(posts)
}

// ClosestGolfer finds the golfer whose name is nearest to query, ignoring
// case. ok is false when nothing is within MaxGolferDistance edits.
func ClosestGolfer(golfers []Golfer, query string) (golfer Golfer, distance int, ok bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Golfer{}, 0, false
	}
	best := -1
	for i, g := range golfers {
		d := levenshtein.ComputeDistance(query, strings.ToLower(g.Name))
		if best < 0 || d < distance {
			best, distance = i, d
		}
	}
	if best < 0 || distance > MaxGolferDistance {
		return Golfer{}, 0, false
	}
	return golfers[best], distance, true
}
