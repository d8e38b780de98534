package out

import (
	"context"

	"nextround/internal/modules/profile/domain"
)

type ProfileStore interface {
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}

// Checkout takes payment for a plan change.
type Checkout interface {
	Charge(ctx context.Context, request domain.CheckoutRequest) (domain.Receipt, error)
}
