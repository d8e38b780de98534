package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidHandicap = errors.New("invalid handicap")
	ErrCheckoutFailed  = errors.New("checkout failed")
)

const (
	MinHandicap = -10.0
	MaxHandicap = 54.0

	// LowUploadsMargin is how close to the free limit the upgrade prompt
	// starts appearing.
	LowUploadsMargin = 10

	ProPriceCents = 199
	ProPriceLabel = "$1.99/month"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) Validate() error {
	switch p {
	case PlanFree, PlanPro:
		return nil
	default:
		return fmt.Errorf("unsupported plan %q", string(p))
	}
}

type Profile struct {
	Name         string
	Email        string
	Handicap     string
	Plan         Plan
	TotalSwings  int
	BestScore    int
	AverageScore int
	Improvement  int
	UploadsUsed  int
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := p.Plan.Validate(); err != nil {
		return err
	}
	if _, err := ParseHandicap(p.Handicap); err != nil {
		return err
	}
	if p.UploadsUsed < 0 {
		return fmt.Errorf("uploads used must not be negative")
	}
	return nil
}

// ParseHandicap accepts a decimal handicap index within the playable range.
func ParseHandicap(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidHandicap, value)
	}
	if v < MinHandicap || v > MaxHandicap {
		return 0, fmt.Errorf("%w: %v is outside %v..%v", ErrInvalidHandicap, v, MinHandicap, MaxHandicap)
	}
	return v, nil
}

type Usage struct {
	Used      int
	Limit     int
	Unlimited bool
}

func (u Usage) Exhausted() bool {
	return !u.Unlimited && u.Used >= u.Limit
}

func (u Usage) Low() bool {
	return !u.Unlimited && u.Used >= u.Limit-LowUploadsMargin
}

func (u Usage) Remaining() int {
	if u.Unlimited || u.Used >= u.Limit {
		return 0
	}
	return u.Limit - u.Used
}

type CheckoutRequest struct {
	Email       string
	Plan        Plan
	AmountCents int
}

type Receipt struct {
	ID     string
	Plan   Plan
	PaidAt time.Time
}
