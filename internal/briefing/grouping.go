// Package briefing folds a chronological stream of narrative briefs
// into contiguous runs sharing the same signal state, so history pages
// can render a compact grouped timeline instead of a flat list.
package briefing

import (
	"time"

	"github.com/huku-dev/vela-sub000/internal/domain"
)

// GroupKind classifies a group of briefs.
type GroupKind string

const (
	// GroupSignalChange marks a run containing at least one
	// signal-change brief.
	GroupSignalChange GroupKind = "signal_change"
	// GroupContinuation marks a run of purely narrative updates.
	GroupContinuation GroupKind = "continuation"
)

// Group is a contiguous run of briefs sharing one resolved signal color.
// Members keep the caller's newest-first order.
type Group struct {
	Kind     GroupKind
	Color    domain.SignalColor
	Briefs   []*domain.Brief
	NewestAt time.Time
	OldestAt time.Time
}

// GroupBriefs walks a newest-first brief sequence once and flushes a
// group each time the resolved color changes. Brief type never starts a
// group by itself, but any signal-change member upgrades the group's
// kind. Each brief's color comes from the lookup by signal id, falling
// back to fallback for unlinked briefs.
//
// The input is never reordered; output groups are newest-first, as are
// the briefs inside each group.
func GroupBriefs(briefs []*domain.Brief, colors map[string]domain.SignalColor, fallback domain.SignalColor) []Group {
	if len(briefs) == 0 {
		return nil
	}

	resolve := func(b *domain.Brief) domain.SignalColor {
		if b.SignalID != "" {
			if color, ok := colors[b.SignalID]; ok {
				return color
			}
		}
		return fallback
	}

	var groups []Group
	current := newGroup(briefs[0], resolve(briefs[0]))

	for _, brief := range briefs[1:] {
		color := resolve(brief)
		if color != current.Color {
			groups = append(groups, *current)
			current = newGroup(brief, color)
			continue
		}
		current.Briefs = append(current.Briefs, brief)
		// Members arrive newest-first, so the oldest is always the
		// latest appended.
		current.OldestAt = brief.CreatedAt
		if brief.Type == domain.BriefSignalChange {
			current.Kind = GroupSignalChange
		}
	}

	return append(groups, *current)
}

func newGroup(first *domain.Brief, color domain.SignalColor) *Group {
	kind := GroupContinuation
	if first.Type == domain.BriefSignalChange {
		kind = GroupSignalChange
	}
	return &Group{
		Kind:     kind,
		Color:    color,
		Briefs:   []*domain.Brief{first},
		NewestAt: first.CreatedAt,
		OldestAt: first.CreatedAt,
	}
}
