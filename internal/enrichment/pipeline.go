// Package enrichment joins trade records with their signal and brief
// narratives to build the view models the history page renders.
package enrichment

import (
	"context"
	"fmt"
	"sync"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

// EnrichedTrade is a trade plus the resolved narrative headlines for
// its entry and exit signals. An empty headline means the fallback
// chain found nothing and the dashboard renders no text.
type EnrichedTrade struct {
	Trade         *domain.Trade
	EntryHeadline string
	ExitHeadline  string
}

// headlineEntry is a resolved cache slot. Negative results are cached
// too, so a signal id that resolved to nothing is never re-fetched.
type headlineEntry struct {
	headline string
	ok       bool
}

// Pipeline enriches trades against the data-access layer. The headline
// cache grows across pages within a session and is never invalidated;
// inserts are idempotent, so concurrent pagination requests racing to
// resolve the same id are harmless. Create one per session and Reset on
// logout.
type Pipeline struct {
	signals ports.SignalRepository
	briefs  ports.BriefRepository
	logger  ports.Logger

	mu        sync.RWMutex
	headlines map[string]headlineEntry
}

// New creates an enrichment pipeline.
func New(signals ports.SignalRepository, briefs ports.BriefRepository, logger ports.Logger) (*Pipeline, error) {
	if signals == nil || briefs == nil {
		return nil, fmt.Errorf("%w: signal and brief repositories are required", ports.ErrConfigurationError)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger is required", ports.ErrConfigurationError)
	}
	return &Pipeline{
		signals:   signals,
		briefs:    briefs,
		logger:    logger,
		headlines: make(map[string]headlineEntry),
	}, nil
}

// Enrich attaches entry and exit headlines to each trade. Only signal
// ids not already in the cache are fetched, in one batch per call, so
// repeated pagination never re-resolves an id already seen. Output
// order mirrors input order.
func (p *Pipeline) Enrich(ctx context.Context, trades []*domain.Trade) ([]EnrichedTrade, error) {
	if len(trades) == 0 {
		return nil, nil
	}

	missing := p.collectUnseen(trades)
	if len(missing) > 0 {
		if err := p.resolveBatch(ctx, missing); err != nil {
			return nil, err
		}
	}

	enriched := make([]EnrichedTrade, 0, len(trades))
	for _, trade := range trades {
		enriched = append(enriched, EnrichedTrade{
			Trade:         trade,
			EntryHeadline: p.cachedHeadline(trade.EntrySignalID),
			ExitHeadline:  p.cachedHeadline(trade.ExitSignalID),
		})
	}
	return enriched, nil
}

// Reset clears the session cache. Called on logout.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.headlines = make(map[string]headlineEntry)
}

// SelectBestTrade folds over the trades and keeps the one with the
// strictly greatest realized pnl percent; ties keep the earlier trade.
// Open trades and closed rows without a pnl are ignored. Returns nil
// when nothing qualifies. Over an all-losing set this selects the least
// bad trade rather than fabricating a winner.
func SelectBestTrade(trades []*domain.Trade) *domain.Trade {
	var best *domain.Trade
	for _, trade := range trades {
		if trade == nil || !trade.HasRealizedPnl() {
			continue
		}
		if best == nil || *trade.PnlPct > *best.PnlPct {
			best = trade
		}
	}
	return best
}

func (p *Pipeline) collectUnseen(trades []*domain.Trade) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	seen := make(map[string]bool)
	var missing []string
	for _, trade := range trades {
		for _, id := range []string{trade.EntrySignalID, trade.ExitSignalID} {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			if _, ok := p.headlines[id]; !ok {
				missing = append(missing, id)
			}
		}
	}
	return missing
}

func (p *Pipeline) resolveBatch(ctx context.Context, ids []string) error {
	signals, err := p.signals.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetching signals: %w", err)
	}
	briefs, err := p.briefs.FindBySignalIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetching briefs: %w", err)
	}

	p.logger.Debug(ctx, "resolved signal headlines",
		map[string]interface{}{"requested": len(ids), "signals": len(signals), "briefs": len(briefs)})

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range ids {
		headline, ok := resolveHeadline(briefs[id], signals[id])
		// Last write wins; every writer resolves the same id to the
		// same value, so racing pages agree.
		p.headlines[id] = headlineEntry{headline: headline, ok: ok}
	}
	return nil
}

func (p *Pipeline) cachedHeadline(signalID string) string {
	if signalID == "" {
		return ""
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if entry, ok := p.headlines[signalID]; ok && entry.ok {
		return entry.headline
	}
	return ""
}
