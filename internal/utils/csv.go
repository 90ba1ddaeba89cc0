package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/huku-dev/vela-sub000/internal/domain"
)

// Trade history CSV columns, in order.
var tradeHeader = []string{
	"id", "asset_id", "status", "direction",
	"entry_price", "exit_price", "pnl_pct",
	"opened_at", "closed_at", "entry_signal_id", "exit_signal_id",
}

// WriteTradesToCSV writes trade history in the fixture format the
// report tool reads back.
func WriteTradesToCSV(trades []*domain.Trade, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write(tradeHeader)

	for _, t := range trades {
		exitPrice, pnlPct, closedAt := "", "", ""
		if t.ExitPrice != nil {
			exitPrice = strconv.FormatFloat(*t.ExitPrice, 'f', -1, 64)
		}
		if t.PnlPct != nil {
			pnlPct = strconv.FormatFloat(*t.PnlPct, 'f', -1, 64)
		}
		if t.ClosedAt != nil {
			closedAt = t.ClosedAt.Format(time.RFC3339)
		}
		writer.Write([]string{
			t.ID,
			t.AssetID,
			string(t.Status),
			string(t.Direction),
			strconv.FormatFloat(t.EntryPrice, 'f', -1, 64),
			exitPrice,
			pnlPct,
			t.OpenedAt.Format(time.RFC3339),
			closedAt,
			t.EntrySignalID,
			t.ExitSignalID,
		})
	}
	return writer.Error()
}

// ReadTradesFromCSV loads trade history from a fixture file.
func ReadTradesFromCSV(filename string) ([]*domain.Trade, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("csv %s: missing header row", filename)
	}

	trades := make([]*domain.Trade, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(tradeHeader) {
			return nil, fmt.Errorf("csv %s row %d: expected %d columns, got %d", filename, i+2, len(tradeHeader), len(rec))
		}
		trade, err := parseTradeRow(rec)
		if err != nil {
			return nil, fmt.Errorf("csv %s row %d: %w", filename, i+2, err)
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

func parseTradeRow(rec []string) (*domain.Trade, error) {
	entryPrice, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return nil, fmt.Errorf("entry_price: %w", err)
	}
	openedAt, err := time.Parse(time.RFC3339, rec[7])
	if err != nil {
		return nil, fmt.Errorf("opened_at: %w", err)
	}

	trade := &domain.Trade{
		ID:            rec[0],
		AssetID:       rec[1],
		Status:        domain.TradeStatus(rec[2]),
		Direction:     domain.Direction(rec[3]),
		EntryPrice:    entryPrice,
		OpenedAt:      openedAt,
		EntrySignalID: rec[9],
		ExitSignalID:  rec[10],
	}

	if rec[5] != "" {
		exitPrice, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("exit_price: %w", err)
		}
		trade.ExitPrice = &exitPrice
	}
	if rec[6] != "" {
		pnlPct, err := strconv.ParseFloat(rec[6], 64)
		if err != nil {
			return nil, fmt.Errorf("pnl_pct: %w", err)
		}
		trade.PnlPct = &pnlPct
	}
	if rec[8] != "" {
		closedAt, err := time.Parse(time.RFC3339, rec[8])
		if err != nil {
			return nil, fmt.Errorf("closed_at: %w", err)
		}
		trade.ClosedAt = &closedAt
	}
	return trade, nil
}
