package enrichment

import "github.com/huku-dev/vela-sub000/internal/domain"

// reasonText maps signal reason codes to the plain-English headline
// shown when no brief was written for the signal.
var reasonText = map[string]string{
	domain.ReasonEmaCrossUp:      "Momentum turned bullish",
	domain.ReasonEmaCrossDown:    "Momentum turned bearish",
	domain.ReasonStopLoss:        "Stop-loss triggered",
	domain.ReasonATRStopLoss:     "Volatility stop triggered",
	domain.ReasonTrendBreak:      "Price broke below trend",
	domain.ReasonTrailingStop:    "Trailing stop locked in gains",
	domain.ReasonChop:            "Market too choppy to act",
	domain.ReasonRSIOutOfRange:   "Momentum reading out of range",
	domain.ReasonTrendDisagree:   "Signal disagreed with the trend",
	domain.ReasonAntiWhipsaw:     "Held back to avoid a whipsaw",
	domain.ReasonLowVolume:       "Volume too thin to confirm",
	domain.ReasonNoChange:        "No change in stance",
	domain.ReasonPullbackReentry: "Re-entered after a pullback",
	domain.ReasonBTCCrash:        "Exited on a Bitcoin-wide drop",
	domain.ReasonRSIVelocity:     "Momentum shifted too fast",
}

// lookup is one step of a headline fallback chain; ok is false when the
// step has nothing to offer.
type lookup func() (string, bool)

// firstPresent short-circuits on the first lookup that yields a value.
func firstPresent(lookups ...lookup) (string, bool) {
	for _, fn := range lookups {
		if v, ok := fn(); ok {
			return v, true
		}
	}
	return "", false
}

// resolveHeadline runs the fallback chain for one signal: explicit
// brief headline, then the reason-code mapping, then nothing. A miss is
// not an error; the dashboard simply renders no headline.
func resolveHeadline(brief *domain.Brief, signal *domain.Signal) (string, bool) {
	return firstPresent(
		func() (string, bool) {
			if brief != nil && brief.Headline != "" {
				return brief.Headline, true
			}
			return "", false
		},
		func() (string, bool) {
			if signal == nil {
				return "", false
			}
			text, ok := reasonText[signal.ReasonCode]
			return text, ok
		},
	)
}
