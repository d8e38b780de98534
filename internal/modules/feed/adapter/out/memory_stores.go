package out

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nextround/internal/modules/feed/domain"
	feedout "nextround/internal/modules/feed/port/out"
	"nextround/internal/platform/catalog"
	apperrors "nextround/internal/platform/errors"
)

type CatalogPostStore struct {
	posts []domain.Post
	byID  map[int]int
}

func NewCatalogPostStore(seed []catalog.Post) (feedout.PostStore, error) {
	store := &CatalogPostStore{posts: make([]domain.Post, 0, len(seed)), byID: map[int]int{}}
	for _, entry := range seed {
		date, err := catalog.ParseDate(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("seed post %d: %w", entry.ID, err)
		}
		post := domain.Post{
			ID:       entry.ID,
			Golfer:   domain.Golfer{Name: entry.Golfer.Name, Handicap: entry.Golfer.Handicap},
			Score:    entry.Score,
			Tips:     append([]string(nil), entry.Tips...),
			Date:     date,
			Likes:    entry.Likes,
			Comments: entry.Comments,
			Rating:   entry.Rating,
		}
		if err := post.Validate(); err != nil {
			return nil, fmt.Errorf("seed post %d: %w", entry.ID, err)
		}
		store.posts = append(store.posts, post)
	}
	sort.SliceStable(store.posts, func(i, j int) bool {
		return store.posts[i].Date.After(store.posts[j].Date)
	})
	for i, p := range store.posts {
		store.byID[p.ID] = i
	}
	return store, nil
}

func (s *CatalogPostStore) List(_ context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *CatalogPostStore) FindByID(_ context.Context, id int) (domain.Post, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Post{}, fmt.Errorf("post %d: %w", id, apperrors.ErrNotFound)
	}
	return s.posts[i], nil
}

type MemoryLikeStore struct {
	mu    sync.Mutex
	liked map[int]struct{}
}

func NewMemoryLikeStore() feedout.LikeStore {
	return &MemoryLikeStore{liked: map[int]struct{}{}}
}

func (s *MemoryLikeStore) Toggle(_ context.Context, postID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.liked[postID]; ok {
		delete(s.liked, postID)
		return false, nil
	}
	s.liked[postID] = struct{}{}
	return true, nil
}

func (s *MemoryLikeStore) Liked(_ context.Context, postID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.liked[postID]
	return ok, nil
}
