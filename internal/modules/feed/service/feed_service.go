package service

import (
	"context"
	"fmt"

	"nextround/internal/modules/feed/domain"
	feedout "nextround/internal/modules/feed/port/out"
	apperrors "nextround/internal/platform/errors"
)

type FeedService struct {
	posts    feedout.PostStore
	likes    feedout.LikeStore
	pageSize int
}

func NewFeedService(posts feedout.PostStore, likes feedout.LikeStore, pageSize int) *FeedService {
	if pageSize < 1 {
		pageSize = 1
	}
	return &FeedService{posts: posts, likes: likes, pageSize: pageSize}
}

// List returns one page of the feed. When golfer is set only that golfer's
// posts are paged.
func (s *FeedService) List(ctx context.Context, number int, golfer string) (domain.Page, error) {
	if number < 1 {
		return domain.Page{}, fmt.Errorf("%w: page must be at least 1", apperrors.ErrInvalidInput)
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return domain.Page{}, err
	}
	if golfer != "" {
		filtered := posts[:0:0]
		for _, p := range posts {
			if p.Golfer.Name == golfer {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}
	slice, more := domain.Paginate(posts, number, s.pageSize)
	page := domain.Page{Number: number, HasMore: more, Items: make([]domain.Item, 0, len(slice))}
	for _, p := range slice {
		liked, err := s.likes.Liked(ctx, p.ID)
		if err != nil {
			return domain.Page{}, err
		}
		page.Items = append(page.Items, domain.Item{Post: p, Liked: liked})
	}
	return page, nil
}

func (s *FeedService) ToggleLike(ctx context.Context, postID int) (domain.Item, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return domain.Item{}, err
	}
	liked, err := s.likes.Toggle(ctx, postID)
	if err != nil {
		return domain.Item{}, err
	}
	return domain.Item{Post: post, Liked: liked}, nil
}

func (s *FeedService) FindGolfer(ctx context.Context, name string) (domain.Golfer, int, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return domain.Golfer{}, 0, err
	}
	seen := map[string]struct{}{}
	golfers := make([]domain.Golfer, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.Golfer.Name]; ok {
			continue
		}
		seen[p.Golfer.Name] = struct{}{}
		golfers = append(golfers, p.Golfer)
	}
	golfer, distance, ok := domain.ClosestGolfer(golfers, name)
	if !ok {
		return domain.Golfer{}, 0, fmt.Errorf("golfer %q: %w", name, apperrors.ErrNotFound)
	}
	return golfer, distance, nil
}
