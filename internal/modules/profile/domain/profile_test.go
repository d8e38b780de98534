package domain_test

import (
	"errors"
	"testing"

	"nextround/internal/modules/profile/domain"
)

func TestParseHandicap(t *testing.T) {
	t.Parallel()
	for _, value := range []string{"12", " 0 ", "-10", "54", "7.4"} {
		if _, err := domain.ParseHandicap(value); err != nil {
			t.Fatalf("%q should be accepted: %v", value, err)
		}
	}
	for _, value := range []string{"", "twelve", "-10.5", "55"} {
		if _, err := domain.ParseHandicap(value); !errors.Is(err, domain.ErrInvalidHandicap) {
			t.Fatalf("%q: expected ErrInvalidHandicap, got %v", value, err)
		}
	}
}

func TestUsageThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		usage     domain.Usage
		exhausted bool
		low       bool
		remaining int
	}{
		{"fresh", domain.Usage{Used: 3, Limit: 50}, false, false, 47},
		{"near limit", domain.Usage{Used: 40, Limit: 50}, false, true, 10},
		{"at limit", domain.Usage{Used: 50, Limit: 50}, true, true, 0},
		{"pro", domain.Usage{Used: 500, Limit: 50, Unlimited: true}, false, false, 0},
	}
	for _, tc := range cases {
		if got := tc.usage.Exhausted(); got != tc.exhausted {
			t.Fatalf("%s: exhausted = %v", tc.name, got)
		}
		if got := tc.usage.Low(); got != tc.low {
			t.Fatalf("%s: low = %v", tc.name, got)
		}
		if got := tc.usage.Remaining(); got != tc.remaining {
			t.Fatalf("%s: remaining = %d", tc.name, got)
		}
	}
}
