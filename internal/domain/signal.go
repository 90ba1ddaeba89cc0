package domain

import "time"

// SignalColor is the three-state stance the system takes on an asset:
// green = buy, red = exit/sell, grey = wait.
type SignalColor string

const (
	ColorGreen SignalColor = "green"
	ColorRed   SignalColor = "red"
	ColorGrey  SignalColor = "grey"
)

// Signal reason codes emitted by the signal rules. The enrichment
// pipeline maps these to plain-English headlines when no brief exists.
const (
	ReasonEmaCrossUp      = "ema_cross_up"
	ReasonEmaCrossDown    = "ema_cross_down"
	ReasonStopLoss        = "stop_loss"
	ReasonATRStopLoss     = "atr_stop_loss"
	ReasonTrendBreak      = "trend_break"
	ReasonTrailingStop    = "trailing_stop"
	ReasonChop            = "chop"
	ReasonRSIOutOfRange   = "rsi_out_of_range"
	ReasonTrendDisagree   = "trend_disagree"
	ReasonAntiWhipsaw     = "anti_whipsaw"
	ReasonLowVolume       = "low_volume"
	ReasonNoChange        = "no_change"
	ReasonPullbackReentry = "pullback_reentry"
	ReasonBTCCrash        = "btc_crash"
	ReasonRSIVelocity     = "rsi_velocity"
)

// Signal is a point-in-time directional assessment of an asset.
// Read-only input supplied by the data-access layer.
type Signal struct {
	ID         string
	AssetID    string
	Color      SignalColor
	ReasonCode string
	Timestamp  time.Time
}
