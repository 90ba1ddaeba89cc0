// Package pnl provides the pure profit-and-loss arithmetic used across
// the dashboard. All formulas compute in decimal and round exactly once
// at the final step: currency amounts to 2 places (half-up to cents),
// percentages to 1 place. Intermediate values are never rounded.
package pnl

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

const (
	currencyPlaces = 2
	percentPlaces  = 1
)

// Realized computes the currency P&L of a closed position:
// (exit - entry) * units, rounded to cents.
func Realized(entryPrice, exitPrice, units float64) (float64, error) {
	if err := requirePositive("entry price", entryPrice); err != nil {
		return 0, err
	}
	if err := requirePositive("exit price", exitPrice); err != nil {
		return 0, err
	}
	if err := requirePositive("units", units); err != nil {
		return 0, err
	}
	entry := decimal.NewFromFloat(entryPrice)
	exit := decimal.NewFromFloat(exitPrice)
	amount := exit.Sub(entry).Mul(decimal.NewFromFloat(units))
	return amount.Round(currencyPlaces).InexactFloat64(), nil
}

// RealizedPercent computes the percent P&L of a closed long position:
// (exit - entry) / entry * 100, rounded to 1 decimal place.
func RealizedPercent(entryPrice, exitPrice float64) (float64, error) {
	if err := requirePositive("entry price", entryPrice); err != nil {
		return 0, err
	}
	if err := requirePositive("exit price", exitPrice); err != nil {
		return 0, err
	}
	entry := decimal.NewFromFloat(entryPrice)
	exit := decimal.NewFromFloat(exitPrice)
	pct := exit.Sub(entry).Div(entry).Mul(decimal.NewFromInt(100))
	return pct.Round(percentPlaces).InexactFloat64(), nil
}

// UnrealizedPercent computes the percent P&L of an open position against
// a live price. A long gains as price rises; a short gains as price
// falls, so the numerator flips sign for shorts.
func UnrealizedPercent(entryPrice, currentPrice float64, dir domain.Direction) (float64, error) {
	if err := requirePositive("entry price", entryPrice); err != nil {
		return 0, err
	}
	if err := requirePositive("current price", currentPrice); err != nil {
		return 0, err
	}
	entry := decimal.NewFromFloat(entryPrice)
	current := decimal.NewFromFloat(currentPrice)

	var diff decimal.Decimal
	switch dir {
	case domain.DirectionLong:
		diff = current.Sub(entry)
	case domain.DirectionShort:
		diff = entry.Sub(current)
	default:
		return 0, fmt.Errorf("%w: direction must be long or short, got %q", ports.ErrInvalidInput, dir)
	}
	pct := diff.Div(entry).Mul(decimal.NewFromInt(100))
	return pct.Round(percentPlaces).InexactFloat64(), nil
}

// PercentToCurrency converts a percent P&L into a currency amount for a
// given position size: pct / 100 * size, rounded to cents.
func PercentToCurrency(pct, positionSize float64) (float64, error) {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("%w: percent must be a finite number, got %v", ports.ErrInvalidInput, pct)
	}
	if err := requirePositive("position size", positionSize); err != nil {
		return 0, err
	}
	amount := percentToCurrency(decimal.NewFromFloat(pct), decimal.NewFromFloat(positionSize))
	return amount.InexactFloat64(), nil
}

// percentToCurrency is the unrounded-input, rounded-output core shared
// with the aggregation engine, which needs the decimal term to sum
// per-trade figures without float drift.
func percentToCurrency(pct, positionSize decimal.Decimal) decimal.Decimal {
	return pct.Div(decimal.NewFromInt(100)).Mul(positionSize).Round(currencyPlaces)
}

// CurrencyTerm exposes the rounded per-trade currency term as a decimal
// for callers that sum many of them.
func CurrencyTerm(pct, positionSize float64) decimal.Decimal {
	return percentToCurrency(decimal.NewFromFloat(pct), decimal.NewFromFloat(positionSize))
}

// RoundPercent rounds a decimal percent to display precision.
func RoundPercent(pct decimal.Decimal) float64 {
	return pct.Round(percentPlaces).InexactFloat64()
}

func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ports.ErrInvalidInput, name, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ports.ErrInvalidInput, name, v)
	}
	return nil
}
