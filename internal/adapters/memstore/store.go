// Package memstore is an in-memory implementation of the repository
// ports. In production those ports are backed by the hosted database
// through the data-access layer; this adapter stands in for it in
// tests and in the report tool, which load fixtures instead.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/ports"
)

// Store holds signals, briefs and trades in memory. Safe for
// concurrent readers and writers.
type Store struct {
	mu      sync.RWMutex
	signals map[string]*domain.Signal
	briefs  []*domain.Brief
	trades  []*domain.Trade
}

var (
	_ ports.SignalRepository = (*Store)(nil)
	_ ports.BriefRepository  = (*Store)(nil)
	_ ports.TradeRepository  = (*Store)(nil)
)

// New creates an empty store.
func New() *Store {
	return &Store{signals: make(map[string]*domain.Signal)}
}

// AddSignal stores a signal, minting an id when the record has none,
// and returns the id.
func (s *Store) AddSignal(signal *domain.Signal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if signal.ID == "" {
		signal.ID = uuid.NewString()
	}
	s.signals[signal.ID] = signal
	return signal.ID
}

// AddBrief stores a brief, minting an id when the record has none, and
// returns the id.
func (s *Store) AddBrief(brief *domain.Brief) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if brief.ID == "" {
		brief.ID = uuid.NewString()
	}
	s.briefs = append(s.briefs, brief)
	return brief.ID
}

// AddTrade stores a trade, minting an id when the record has none, and
// returns the id.
func (s *Store) AddTrade(trade *domain.Trade) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if trade.ID == "" {
		trade.ID = uuid.NewString()
	}
	s.trades = append(s.trades, trade)
	return trade.ID
}

// FindByIDs retrieves the signals for the given ids. Unknown ids are
// absent from the result map.
func (s *Store) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Signal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*domain.Signal, len(ids))
	for _, id := range ids {
		if signal, ok := s.signals[id]; ok {
			out[id] = signal
		}
	}
	return out, nil
}

// FindBySignalIDs retrieves at most one brief per signal id. When
// several briefs reference the same signal, the most recent wins.
func (s *Store) FindBySignalIDs(ctx context.Context, ids []string) (map[string]*domain.Brief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make(map[string]*domain.Brief)
	for _, brief := range s.briefs {
		if brief.SignalID == "" || !wanted[brief.SignalID] {
			continue
		}
		if existing, ok := out[brief.SignalID]; !ok || brief.CreatedAt.After(existing.CreatedAt) {
			out[brief.SignalID] = brief
		}
	}
	return out, nil
}

// FindRecentByAsset retrieves the most recent briefs for an asset,
// newest-first, up to limit (0 means no limit).
func (s *Store) FindRecentByAsset(ctx context.Context, assetID string, limit int) ([]*domain.Brief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Brief
	for _, brief := range s.briefs {
		if brief.AssetID == assetID {
			out = append(out, brief)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindByAsset retrieves all trades for an asset ordered by entry time
// descending.
func (s *Store) FindByAsset(ctx context.Context, assetID string) ([]*domain.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Trade
	for _, trade := range s.trades {
		if trade.AssetID == assetID {
			out = append(out, trade)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OpenedAt.After(out[j].OpenedAt)
	})
	return out, nil
}
