package domain

import "time"

// TradeStatus represents the lifecycle state of a paper trade.
// The only transition is open -> closed; once closed, PnlPct and
// ExitPrice are fixed inputs to every calculation in this engine.
type TradeStatus string

const (
	StatusOpen   TradeStatus = "open"
	StatusClosed TradeStatus = "closed"
)

// Direction represents the directional intent of a trade.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
	// DirectionTrim marks a partial exit. Trims are not directional bets
	// and are excluded from long/short breakdowns.
	DirectionTrim Direction = "trim"
)

// Trade represents a single trade record as supplied by the data-access
// layer. The engine only reads trades; it never mutates them.
type Trade struct {
	ID            string      // Unique identifier (usually from the hosted DB)
	AssetID       string      // Asset this trade was taken on (e.g. "bitcoin")
	EntryPrice    float64     // Price at which the position was entered
	ExitPrice     *float64    // Exit price; nil while the trade is open
	PnlPct        *float64    // Realized P&L percent; nil while the trade is open
	Status        TradeStatus // Current lifecycle state
	Direction     Direction   // Empty means unspecified; breakdowns treat it as long
	OpenedAt      time.Time   // Timestamp when the trade was entered
	ClosedAt      *time.Time  // Timestamp when the trade was exited; nil while open
	EntrySignalID string      // Signal that opened the trade (optional)
	ExitSignalID  string      // Signal that closed the trade (optional)
}

// IsClosed checks whether the trade has completed its lifecycle.
func (t *Trade) IsClosed() bool {
	return t.Status == StatusClosed
}

// HasRealizedPnl reports whether the trade carries a usable realized P&L
// figure. Open trades and malformed closed rows both return false.
func (t *Trade) HasRealizedPnl() bool {
	return t.Status == StatusClosed && t.PnlPct != nil
}

// EffectiveDirection resolves an absent direction to long. Rows predating
// the direction column carry no value and have always been bucketed as
// longs by the dashboard; revisit with the data owner before changing.
func (t *Trade) EffectiveDirection() Direction {
	if t.Direction == "" {
		return DirectionLong
	}
	return t.Direction
}

// HoldingPeriod returns the time between entry and exit, or false when
// either timestamp is missing or the span is negative.
func (t *Trade) HoldingPeriod() (time.Duration, bool) {
	if t.OpenedAt.IsZero() || t.ClosedAt == nil || t.ClosedAt.IsZero() {
		return 0, false
	}
	d := t.ClosedAt.Sub(t.OpenedAt)
	if d < 0 {
		return 0, false
	}
	return d, true
}
