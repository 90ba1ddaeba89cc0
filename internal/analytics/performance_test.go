package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

func closedTrade(id string, pnlPct float64) *domain.Trade {
	exit := 100 + pnlPct
	return &domain.Trade{
		ID:         id,
		AssetID:    "bitcoin",
		EntryPrice: 100,
		ExitPrice:  &exit,
		PnlPct:     &pnlPct,
		Status:     domain.StatusClosed,
		Direction:  domain.DirectionLong,
	}
}

func withDirection(t *domain.Trade, dir domain.Direction) *domain.Trade {
	t.Direction = dir
	return t
}

func withTimes(t *domain.Trade, openedAt, closedAt time.Time) *domain.Trade {
	t.OpenedAt = openedAt
	t.ClosedAt = &closedAt
	return t
}

func TestAggregate(t *testing.T) {
	trades := []*domain.Trade{
		closedTrade("t1", 10),
		closedTrade("t2", -5),
		closedTrade("t3", 20),
		closedTrade("t4", -3),
	}

	summary, err := Aggregate(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Count != 4 {
		t.Errorf("expected 4 trades, got %d", summary.Count)
	}
	if summary.AvgPercent != 5.5 {
		t.Errorf("expected 5.5 avg percent, got %v", summary.AvgPercent)
	}
	if summary.TotalCurrency != 220 {
		t.Errorf("expected 220 total currency, got %v", summary.TotalCurrency)
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary, err := Aggregate(nil, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != (Summary{}) {
		t.Errorf("expected zero summary for empty input, got %+v", summary)
	}
}

func TestAggregateSumsRoundedTerms(t *testing.T) {
	// Each term rounds to cents before summing, matching the per-trade
	// figures displayed alongside the total: 0.1235% of 1000 -> 1.24,
	// so three trades total 3.72, not round(3.705) = 3.71.
	trades := []*domain.Trade{
		closedTrade("t1", 0.1235),
		closedTrade("t2", 0.1235),
		closedTrade("t3", 0.1235),
	}

	summary, err := Aggregate(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalCurrency != 3.72 {
		t.Errorf("expected 3.72 (3 x 1.24), got %v", summary.TotalCurrency)
	}
}

func TestAggregateRejectsMalformedInput(t *testing.T) {
	open := &domain.Trade{ID: "open", EntryPrice: 100, Status: domain.StatusOpen}

	tests := []struct {
		name   string
		trades []*domain.Trade
		size   float64
	}{
		{name: "open trade in the set", trades: []*domain.Trade{closedTrade("t1", 10), open}, size: 1000},
		{name: "closed trade without pnl", trades: []*domain.Trade{{ID: "bad", Status: domain.StatusClosed}}, size: 1000},
		{name: "zero position size", trades: []*domain.Trade{closedTrade("t1", 10)}, size: 0},
		{name: "negative position size", trades: []*domain.Trade{closedTrade("t1", 10)}, size: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.trades, tt.size)
			if !errors.Is(err, ports.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDetailedStats(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	trades := []*domain.Trade{
		withTimes(closedTrade("t1", 10), base, base.Add(48*time.Hour)),
		withTimes(withDirection(closedTrade("t2", -5), domain.DirectionShort), base, base.Add(24*time.Hour)),
		withTimes(closedTrade("t3", 20), base, base.Add(72*time.Hour)),
		withDirection(closedTrade("t4", -3), domain.DirectionTrim),
	}

	stats, err := DetailedStats(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalTrades != 4 {
		t.Errorf("expected 4 trades, got %d", stats.TotalTrades)
	}
	if stats.Wins != 2 || stats.Losses != 2 {
		t.Errorf("expected 2 wins / 2 losses, got %d / %d", stats.Wins, stats.Losses)
	}
	if stats.BestTrade.ID != "t3" {
		t.Errorf("expected best trade t3, got %s", stats.BestTrade.ID)
	}
	if stats.WorstTrade.ID != "t2" {
		t.Errorf("expected worst trade t2, got %s", stats.WorstTrade.ID)
	}

	// Trim (t4) is excluded from the direction breakdown.
	if stats.LongWins != 2 || stats.LongLosses != 0 {
		t.Errorf("expected 2 long wins / 0 long losses, got %d / %d", stats.LongWins, stats.LongLosses)
	}
	if stats.ShortWins != 0 || stats.ShortLosses != 1 {
		t.Errorf("expected 0 short wins / 1 short loss, got %d / %d", stats.ShortWins, stats.ShortLosses)
	}

	// t4 has no timestamps, so only three duration samples.
	if stats.DurationSamples != 3 {
		t.Errorf("expected 3 duration samples, got %d", stats.DurationSamples)
	}
	if stats.AvgDuration != 48*time.Hour {
		t.Errorf("expected 48h average duration, got %v", stats.AvgDuration)
	}
	if stats.MaxDuration != 72*time.Hour {
		t.Errorf("expected 72h max duration, got %v", stats.MaxDuration)
	}
	if stats.MinDuration != 24*time.Hour {
		t.Errorf("expected 24h min duration, got %v", stats.MinDuration)
	}
}

func TestDetailedStatsEmpty(t *testing.T) {
	stats, err := DetailedStats(nil, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalTrades != 0 || stats.BestTrade != nil || stats.WorstTrade != nil {
		t.Errorf("expected zeroed stats for empty input, got %+v", stats)
	}
}

func TestDetailedStatsTieBreakKeepsEarliest(t *testing.T) {
	// Strict comparison means the first of two equal trades stays best
	// (and worst); this keeps output deterministic for a given order.
	trades := []*domain.Trade{
		closedTrade("first", 10),
		closedTrade("second", 10),
		closedTrade("third", -10),
		closedTrade("fourth", -10),
	}

	stats, err := DetailedStats(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BestTrade.ID != "first" {
		t.Errorf("expected tie to keep earliest best trade, got %s", stats.BestTrade.ID)
	}
	if stats.WorstTrade.ID != "third" {
		t.Errorf("expected tie to keep earliest worst trade, got %s", stats.WorstTrade.ID)
	}
}

func TestDetailedStatsMissingDirectionCountsAsLong(t *testing.T) {
	trades := []*domain.Trade{
		withDirection(closedTrade("t1", 5), ""),
		withDirection(closedTrade("t2", -5), ""),
	}

	stats, err := DetailedStats(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.LongWins != 1 || stats.LongLosses != 1 {
		t.Errorf("expected missing direction to count as long, got %d wins / %d losses", stats.LongWins, stats.LongLosses)
	}
	if stats.ShortWins != 0 || stats.ShortLosses != 0 {
		t.Errorf("expected no short trades, got %d / %d", stats.ShortWins, stats.ShortLosses)
	}
}

func TestDetailedStatsSkipsNegativeDurations(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	trades := []*domain.Trade{
		withTimes(closedTrade("t1", 5), base, base.Add(-time.Hour)), // clock skew in source data
		withTimes(closedTrade("t2", 5), base, base.Add(time.Hour)),
	}

	stats, err := DetailedStats(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DurationSamples != 1 {
		t.Errorf("expected the negative span to be skipped, got %d samples", stats.DurationSamples)
	}
	if stats.AvgDuration != time.Hour {
		t.Errorf("expected 1h average, got %v", stats.AvgDuration)
	}
}

func TestDetailedStatsZeroPnlCountsAsWin(t *testing.T) {
	trades := []*domain.Trade{closedTrade("t1", 0)}

	stats, err := DetailedStats(trades, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Wins != 1 || stats.Losses != 0 {
		t.Errorf("expected break-even trade to count as a win, got %d / %d", stats.Wins, stats.Losses)
	}
}
