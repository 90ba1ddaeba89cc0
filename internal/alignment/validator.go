// Package alignment sanity-checks a displayed signal stance against
// recent price movement, so the dashboard never shows a buy call during
// a clearly bearish move (or the reverse).
package alignment

import "github.com/huku-dev/vela-sub000/internal/domain"

// DefaultTolerancePct is the drift band, in percent, within which any
// stance is considered compatible with the price move. Small pullbacks
// and dead-cat bounces stay inside it.
const DefaultTolerancePct = 2.0

// Config holds configuration for the alignment validator.
type Config struct {
	TolerancePct float64
}

// Validator checks signal stances against 24h price changes.
type Validator struct {
	tolerance float64
}

// New creates a validator. A non-positive tolerance falls back to
// DefaultTolerancePct.
func New(cfg Config) *Validator {
	tolerance := cfg.TolerancePct
	if tolerance <= 0 {
		tolerance = DefaultTolerancePct
	}
	return &Validator{tolerance: tolerance}
}

// IsAligned reports whether the displayed signal color is compatible
// with the given price change. Green (buy) is misaligned when price is
// down more than the tolerance; red (sell) is misaligned when price is
// up more than the tolerance. Grey (wait) is always aligned, as is any
// unrecognized color.
func (v *Validator) IsAligned(color domain.SignalColor, priceChangePct float64) bool {
	switch color {
	case domain.ColorGreen:
		return priceChangePct >= -v.tolerance
	case domain.ColorRed:
		return priceChangePct <= v.tolerance
	default:
		return true
	}
}

// IsAlignedWithSnapshot checks the stance against a live price
// snapshot's 24h change.
func (v *Validator) IsAlignedWithSnapshot(color domain.SignalColor, snap domain.PriceSnapshot) bool {
	return v.IsAligned(color, snap.Change24hPct)
}
