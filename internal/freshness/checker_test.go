package freshness

import (
	"errors"
	"testing"
	"time"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

func TestIsStale(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		age         time.Duration
		threshold   time.Duration
		expected    bool
		expectError bool
	}{
		{name: "fresh", age: time.Minute, expected: false},
		// The boundary is inclusive of freshness.
		{name: "exactly at threshold", age: 5 * time.Minute, expected: false},
		{name: "one millisecond past threshold", age: 5*time.Minute + time.Millisecond, expected: true},
		{name: "well past threshold", age: time.Hour, expected: true},
		{name: "custom threshold respected", age: 2 * time.Second, threshold: time.Second, expected: true},
		{name: "future timestamp is fresh", age: -time.Minute, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(tt.threshold)
			checker.now = func() time.Time { return now }

			got, err := checker.IsStale(now.Add(-tt.age))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("age %v threshold %v: expected %v, got %v", tt.age, tt.threshold, tt.expected, got)
			}
		})
	}
}

func TestIsStaleZeroTimestamp(t *testing.T) {
	checker := NewChecker(0)
	_, err := checker.IsStale(time.Time{})
	if !errors.Is(err, ports.ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestIsStaleRaw(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	checker := NewChecker(0)
	checker.now = func() time.Time { return now }

	stale, err := checker.IsStaleRaw("2026-03-14T11:50:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stale {
		t.Error("expected a ten minute old timestamp to be stale")
	}

	_, err = checker.IsStaleRaw("not-a-timestamp")
	if !errors.Is(err, ports.ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestIsSnapshotStale(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	checker := NewChecker(0)
	checker.now = func() time.Time { return now }

	stale, err := checker.IsSnapshotStale(domain.PriceSnapshot{Price: 61250.5, ObservedAt: now.Add(-time.Minute)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stale {
		t.Error("expected a minute-old snapshot to be fresh")
	}

	_, err = checker.IsSnapshotStale(domain.PriceSnapshot{Price: 0, ObservedAt: now})
	if !errors.Is(err, ports.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for non-positive price, got %v", err)
	}
}

func TestNewCheckerDefaultThreshold(t *testing.T) {
	if got := NewChecker(0).Threshold(); got != DefaultThreshold {
		t.Errorf("expected default threshold %v, got %v", DefaultThreshold, got)
	}
	if got := NewChecker(time.Minute).Threshold(); got != time.Minute {
		t.Errorf("expected one minute threshold, got %v", got)
	}
}
