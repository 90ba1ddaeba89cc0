package domain

import "time"

// BriefType classifies a narrative brief.
type BriefType string

const (
	BriefSignalChange BriefType = "signal_change"
	BriefContinuation BriefType = "continuation"
	BriefDailyDigest  BriefType = "daily_digest"
)

// Brief is a narrative entry describing a signal state or change.
// Callers supply briefs ordered newest-first.
type Brief struct {
	ID        string
	AssetID   string
	SignalID  string // Signal this brief narrates; empty when unlinked
	Type      BriefType
	Headline  string
	Summary   string
	CreatedAt time.Time
}
