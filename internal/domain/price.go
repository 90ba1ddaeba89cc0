package domain

import "time"

// PriceSnapshot is a live price observation supplied by the data-access
// layer, used for unrealized P&L and staleness checks.
type PriceSnapshot struct {
	Price        float64   // Last traded price; must be positive
	Change24hPct float64   // Percent change over the trailing 24h
	ObservedAt   time.Time // When the price was observed
}
