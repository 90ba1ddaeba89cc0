// Package analytics rolls closed trades into the summary figures the
// dashboard displays. Totals are built from the individually rounded
// per-trade currency terms so the sum always matches the per-trade
// figures shown next to it, to the cent.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/pnl"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

// Summary holds the headline aggregate over a set of closed trades.
type Summary struct {
	Count         int     // Number of closed trades
	TotalCurrency float64 // Sum of per-trade currency P&L, each term rounded to cents
	AvgPercent    float64 // Mean pnl percent, rounded to 1 decimal place
}

// DetailedTradeStats holds the richer breakdown behind the summary.
type DetailedTradeStats struct {
	TotalTrades int
	Wins        int // Trades with pnl_pct >= 0
	Losses      int

	BestTrade  *domain.Trade // Strictly best by pnl_pct; earliest wins ties
	WorstTrade *domain.Trade // Strictly worst by pnl_pct; earliest wins ties

	// Direction breakdown. Trims are partial exits, not directional
	// bets, and are excluded. Trades without a direction count as long.
	LongWins    int
	LongLosses  int
	ShortWins   int
	ShortLosses int

	// Holding-period statistics over trades where both timestamps are
	// present and the span is non-negative.
	DurationSamples int
	AvgDuration     time.Duration // Arithmetic mean, rounded to the nearest millisecond
	MaxDuration     time.Duration
	MinDuration     time.Duration
}

// Aggregate computes the headline summary for a set of closed trades.
// An empty set yields a zero Summary. Any trade that is not closed or
// lacks a realized pnl percent fails the whole call; no partial figures
// are ever returned.
func Aggregate(trades []*domain.Trade, positionSize float64) (Summary, error) {
	if err := validateInput(trades, positionSize); err != nil {
		return Summary{}, err
	}
	if len(trades) == 0 {
		return Summary{}, nil
	}

	totalCurrency := decimal.Zero
	totalPercent := decimal.Zero
	for _, trade := range trades {
		totalCurrency = totalCurrency.Add(pnl.CurrencyTerm(*trade.PnlPct, positionSize))
		totalPercent = totalPercent.Add(decimal.NewFromFloat(*trade.PnlPct))
	}

	return Summary{
		Count:         len(trades),
		TotalCurrency: totalCurrency.InexactFloat64(),
		AvgPercent:    pnl.RoundPercent(totalPercent.Div(decimal.NewFromInt(int64(len(trades))))),
	}, nil
}

// DetailedStats computes the full breakdown for a set of closed trades.
// An empty set yields zeroed stats.
func DetailedStats(trades []*domain.Trade, positionSize float64) (DetailedTradeStats, error) {
	if err := validateInput(trades, positionSize); err != nil {
		return DetailedTradeStats{}, err
	}

	stats := DetailedTradeStats{}
	if len(trades) == 0 {
		return stats, nil
	}

	// Best/worst are seeded from the first element and only displaced by
	// a strictly better/worse pnl, so on ties the earliest trade in
	// input order wins. Keeps output stable for stable input order.
	best := trades[0]
	worst := trades[0]

	var totalDuration time.Duration

	for _, trade := range trades {
		stats.TotalTrades++
		pct := *trade.PnlPct
		won := pct >= 0
		if won {
			stats.Wins++
		} else {
			stats.Losses++
		}

		if pct > *best.PnlPct {
			best = trade
		}
		if pct < *worst.PnlPct {
			worst = trade
		}

		switch trade.EffectiveDirection() {
		case domain.DirectionLong:
			if won {
				stats.LongWins++
			} else {
				stats.LongLosses++
			}
		case domain.DirectionShort:
			if won {
				stats.ShortWins++
			} else {
				stats.ShortLosses++
			}
		}

		if d, ok := trade.HoldingPeriod(); ok {
			if stats.DurationSamples == 0 || d > stats.MaxDuration {
				stats.MaxDuration = d
			}
			if stats.DurationSamples == 0 || d < stats.MinDuration {
				stats.MinDuration = d
			}
			stats.DurationSamples++
			totalDuration += d
		}
	}

	stats.BestTrade = best
	stats.WorstTrade = worst
	if stats.DurationSamples > 0 {
		mean := totalDuration / time.Duration(stats.DurationSamples)
		stats.AvgDuration = mean.Round(time.Millisecond)
	}
	return stats, nil
}

func validateInput(trades []*domain.Trade, positionSize float64) error {
	if math.IsNaN(positionSize) || math.IsInf(positionSize, 0) || positionSize <= 0 {
		return fmt.Errorf("%w: position size must be positive, got %v", ports.ErrInvalidInput, positionSize)
	}
	for i, trade := range trades {
		if trade == nil {
			return fmt.Errorf("%w: nil trade at index %d", ports.ErrInvalidInput, i)
		}
		if !trade.HasRealizedPnl() {
			return fmt.Errorf("%w: trade %q at index %d is not a closed trade with realized pnl", ports.ErrInvalidInput, trade.ID, i)
		}
	}
	return nil
}
