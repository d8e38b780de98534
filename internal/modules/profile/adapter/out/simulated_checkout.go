package out

import (
	"context"
	"errors"
	"time"

	"nextround/internal/modules/profile/domain"
	profileout "nextround/internal/modules/profile/port/out"
	"nextround/internal/platform/clock"
	"nextround/internal/platform/id"
)

var errCardDeclined = errors.New("card declined")

// SimulatedCheckout stands in for a hosted payment page. It never moves
// money; it waits for Latency and hands back a receipt.
type SimulatedCheckout struct {
	clock   clock.Clock
	idGen   id.Generator
	Latency time.Duration
	Decline bool
}

func NewSimulatedCheckout(clock clock.Clock, idGen id.Generator, latency time.Duration) *SimulatedCheckout {
	return &SimulatedCheckout{clock: clock, idGen: idGen, Latency: latency}
}

var _ profileout.Checkout = (*SimulatedCheckout)(nil)

func (c *SimulatedCheckout) Charge(ctx context.Context, request domain.CheckoutRequest) (domain.Receipt, error) {
	if c.Latency > 0 {
		timer := time.NewTimer(c.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}
	if c.Decline || request.AmountCents <= 0 {
		return domain.Receipt{}, errCardDeclined
	}
	return domain.Receipt{ID: c.idGen.New(), Plan: request.Plan, PaidAt: c.clock.Now()}, nil
}
