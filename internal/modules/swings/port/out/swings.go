package out

import (
	"context"

	"nextround/internal/modules/swings/domain"
)

type SwingStore interface {
	List(ctx context.Context) ([]domain.Swing, error)
	FindByID(ctx context.Context, id int) (domain.Swing, error)
	// Add assigns the next free id and returns the stored swing.
	Add(ctx context.Context, swing domain.Swing) (domain.Swing, error)
}

type SwingIndex interface {
	Reset(ctx context.Context) error
	UpsertSwing(ctx context.Context, swing domain.Swing) error
	SortedIDs(ctx context.Context, key domain.SortKey) ([]int, error)
}
