// Package freshness flags timestamped market data that is too old to
// trust for decisions.
package freshness

import (
	"fmt"
	"time"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

// DefaultThreshold is the age beyond which displayed financial data
// must be flagged to the user.
const DefaultThreshold = 5 * time.Minute

// Checker classifies the age of a market datum against a threshold.
type Checker struct {
	threshold time.Duration
	now       func() time.Time
}

// NewChecker creates a checker with the given threshold.
// A non-positive threshold falls back to DefaultThreshold.
func NewChecker(threshold time.Duration) *Checker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Checker{threshold: threshold, now: time.Now}
}

// Threshold returns the configured freshness threshold.
func (c *Checker) Threshold() time.Duration {
	return c.threshold
}

// IsStale reports whether the datum is older than the threshold.
// The boundary is inclusive of freshness: a datum exactly at the
// threshold age is not stale. A zero timestamp is rejected.
func (c *Checker) IsStale(observedAt time.Time) (bool, error) {
	if observedAt.IsZero() {
		return false, fmt.Errorf("%w: zero timestamp", ports.ErrInvalidTimestamp)
	}
	return c.now().Sub(observedAt) > c.threshold, nil
}

// IsStaleRaw parses an RFC 3339 timestamp string (the shape the hosted
// API returns) and checks it.
func (c *Checker) IsStaleRaw(raw string) (bool, error) {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ports.ErrInvalidTimestamp, raw, err)
	}
	return c.IsStale(ts)
}

// IsSnapshotStale checks the age of a live price snapshot, rejecting
// snapshots that carry a non-positive price.
func (c *Checker) IsSnapshotStale(snap domain.PriceSnapshot) (bool, error) {
	if snap.Price <= 0 {
		return false, fmt.Errorf("%w: snapshot price must be positive, got %v", ports.ErrInvalidInput, snap.Price)
	}
	return c.IsStale(snap.ObservedAt)
}
