package geocode

import (
	"context" // Request scoped cancellation
	"errors"  // Error inspection
	"time"    // Breaker windows

	"github.com/sirupsen/logrus"             // Logging
	gobreaker "github.com/sony/gobreaker/v2" // Circuit breaker

	"places_api/internal/domain" // Location type
)

// BreakerGeocoder wraps a Geocoder with a circuit breaker so a failing upstream
// is not hammered by every place creation
type BreakerGeocoder struct {
	next Geocoder
	cb   *gobreaker.CircuitBreaker[domain.Location]
}

// NewBreakerGeocoder wraps next. The breaker opens after 5 consecutive upstream
// failures and probes again after 30 seconds.
func NewBreakerGeocoder(next Geocoder) *BreakerGeocoder {
	cb := gobreaker.NewCircuitBreaker[domain.Location](gobreaker.Settings{
		Name:        "geocode-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// An unknown address is a valid answer, not an upstream failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoResults) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Geocoder circuit breaker state change")
		},
	})
	return &BreakerGeocoder{next: next, cb: cb}
}

// Geocode delegates to the wrapped Geocoder unless the breaker is open
func (b *BreakerGeocoder) Geocode(ctx context.Context, address string) (domain.Location, error) {
	return b.cb.Execute(func() (domain.Location, error) {
		return b.next.Geocode(ctx, address)
	})
}

// State returns the current breaker state
func (b *BreakerGeocoder) State() gobreaker.State {
	return b.cb.State()
}
