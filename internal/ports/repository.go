package ports

import (
	"context"

	"github.com/huku-dev/vela-sub000/internal/domain"
)

// SignalRepository defines the read interface the enrichment pipeline
// uses to batch-resolve signals. Backed by the external data-access
// layer in production and by the in-memory store in tests.
type SignalRepository interface {
	// FindByIDs retrieves the signals for the given ids.
	// Unknown ids are simply absent from the result map, not an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Signal, error)
}

// BriefRepository defines the read interface for narrative briefs.
type BriefRepository interface {
	// FindBySignalIDs retrieves at most one brief per signal id.
	// Unknown ids are absent from the result map.
	FindBySignalIDs(ctx context.Context, ids []string) (map[string]*domain.Brief, error)
	// FindRecentByAsset retrieves the most recent briefs for an asset,
	// ordered newest-first, up to a limit.
	FindRecentByAsset(ctx context.Context, assetID string, limit int) ([]*domain.Brief, error)
}

// TradeRepository defines the read interface for trade history.
type TradeRepository interface {
	// FindByAsset retrieves all trades for an asset, ordered by entry
	// time descending.
	FindByAsset(ctx context.Context, assetID string) ([]*domain.Trade, error)
}
