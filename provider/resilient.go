package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/git-pkgs/licenses"
)

// Retrying wraps a provider with exponential-backoff retries, for
// record sources that fail transiently.
type Retrying struct {
	inner      Provider
	maxRetries uint64
	initial    time.Duration
	max        time.Duration
}

// RetryOption configures a Retrying provider.
type RetryOption func(*Retrying)

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(n uint64) RetryOption {
	return func(r *Retrying) {
		r.maxRetries = n
	}
}

// WithInitialInterval sets the first backoff delay.
func WithInitialInterval(d time.Duration) RetryOption {
	return func(r *Retrying) {
		r.initial = d
	}
}

// WithMaxInterval caps the backoff delay.
func WithMaxInterval(d time.Duration) RetryOption {
	return func(r *Retrying) {
		r.max = d
	}
}

// NewRetrying creates a retrying wrapper around inner with the given
// options. Defaults: 5 retries, 500ms initial delay, 30s cap.
func NewRetrying(inner Provider, opts ...RetryOption) *Retrying {
	r := &Retrying{
		inner:      inner,
		maxRetries: 5,
		initial:    500 * time.Millisecond,
		max:        30 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Records consults the inner provider, retrying failures with
// exponential backoff until the retry budget or the context runs out.
func (r *Retrying) Records(ctx context.Context) ([]licenses.Record, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initial
	b.MaxInterval = r.max
	b.Reset()

	var records []licenses.Record
	op := func() error {
		recs, err := r.inner.Records(ctx)
		if err != nil {
			return err
		}
		records = recs
		return nil
	}

	if err := backoff.Retry(op, backoff.WithMaxRetries(backoff.WithContext(b, ctx), r.maxRetries)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return records, nil
}

// Breaking wraps a provider with a circuit breaker, for hosts that
// revalidate licenses periodically against a source that can go down.
// The breaker trips after 5 consecutive failures and its reset window
// backs off exponentially from 30s up to 5m.
type Breaking struct {
	inner   Provider
	breaker *circuit.Breaker
}

// NewBreaking creates a circuit-breaking wrapper around inner.
func NewBreaking(inner Provider) *Breaking {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}

	return &Breaking{
		inner:   inner,
		breaker: circuit.NewBreakerWithOptions(opts),
	}
}

// Records consults the inner provider unless the circuit is open.
func (b *Breaking) Records(ctx context.Context) ([]licenses.Record, error) {
	if !b.breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open: %w", ErrUnavailable)
	}

	var records []licenses.Record
	err := b.breaker.Call(func() error {
		recs, err := b.inner.Records(ctx)
		if err != nil {
			return err
		}
		records = recs
		return nil
	}, 0)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// State returns the breaker state, "open" or "closed" (for health checks).
func (b *Breaking) State() string {
	if b.breaker.Tripped() {
		return "open"
	}
	return "closed"
}
