package out

import (
	"context"

	"nextround/internal/modules/feed/domain"
)

// PostStore lists posts newest first.
type PostStore interface {
	List(ctx context.Context) ([]domain.Post, error)
	FindByID(ctx context.Context, id int) (domain.Post, error)
}

// LikeStore holds the viewer's likes. Toggle reports the new state.
type LikeStore interface {
	Toggle(ctx context.Context, postID int) (bool, error)
	Liked(ctx context.Context, postID int) (bool, error)
}
