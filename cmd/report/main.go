// Command report runs the calculation engine over a trade-history CSV
// and prints the figures the dashboard would display: the headline
// summary, the detailed breakdown, and the best trade.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/huku-dev/vela-sub000/config"
	zl "github.com/huku-dev/vela-sub000/internal/adapters/logger"
	"github.com/huku-dev/vela-sub000/internal/analytics"
	"github.com/huku-dev/vela-sub000/internal/domain"
	"github.com/huku-dev/vela-sub000/internal/enrichment"
	"github.com/huku-dev/vela-sub000/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	asset := flag.String("asset", cfg.DefaultAsset, "asset to report on")
	file := flag.String("file", "", "trade history CSV (defaults to DATA_DIR/trades_<asset>.csv)")
	flag.Parse()

	logger := zl.New(cfg.LogLevel, "report")
	ctx := context.Background()

	path := *file
	if path == "" {
		path = filepath.Join(cfg.DataDir, fmt.Sprintf("trades_%s.csv", *asset))
	}

	trades, err := utils.ReadTradesFromCSV(path)
	if err != nil {
		logger.Error(ctx, err, "failed to read trade history", map[string]interface{}{"path": path})
		os.Exit(1)
	}
	logger.Info(ctx, "loaded trade history", map[string]interface{}{"path": path, "trades": len(trades)})

	var closed []*domain.Trade
	for _, t := range trades {
		if t.HasRealizedPnl() {
			closed = append(closed, t)
		}
	}

	summary, err := analytics.Aggregate(closed, cfg.PositionSizeUSD)
	if err != nil {
		logger.Error(ctx, err, "aggregation failed")
		os.Exit(1)
	}
	stats, err := analytics.DetailedStats(closed, cfg.PositionSizeUSD)
	if err != nil {
		logger.Error(ctx, err, "detailed stats failed")
		os.Exit(1)
	}

	fmt.Printf("\n%s — %d trades (%d closed), position size $%.0f\n\n",
		*asset, len(trades), len(closed), cfg.PositionSizeUSD)

	printSummary(summary)
	printDetailed(stats)
	printBestTrade(enrichment.SelectBestTrade(trades))
}

func printSummary(s analytics.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Closed", "Total P&L", "Avg P&L")
	table.Append(
		fmt.Sprintf("%d", s.Count),
		fmt.Sprintf("$%.2f", s.TotalCurrency),
		fmt.Sprintf("%.1f%%", s.AvgPercent),
	)
	table.Render()
}

func printDetailed(s analytics.DetailedTradeStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Wins", "Losses", "Long W/L", "Short W/L", "Avg Hold", "Max Hold", "Min Hold")
	table.Append(
		fmt.Sprintf("%d", s.Wins),
		fmt.Sprintf("%d", s.Losses),
		fmt.Sprintf("%d/%d", s.LongWins, s.LongLosses),
		fmt.Sprintf("%d/%d", s.ShortWins, s.ShortLosses),
		formatDuration(s.AvgDuration, s.DurationSamples),
		formatDuration(s.MaxDuration, s.DurationSamples),
		formatDuration(s.MinDuration, s.DurationSamples),
	)
	table.Render()
}

func printBestTrade(best *domain.Trade) {
	if best == nil {
		fmt.Println("\nNo closed trades yet.")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Best Trade", "Direction", "Entry", "Exit", "P&L")
	exit := "-"
	if best.ExitPrice != nil {
		exit = fmt.Sprintf("%.2f", *best.ExitPrice)
	}
	table.Append(
		best.ID,
		string(best.EffectiveDirection()),
		fmt.Sprintf("%.2f", best.EntryPrice),
		exit,
		fmt.Sprintf("%+.1f%%", *best.PnlPct),
	)
	table.Render()
}

func formatDuration(d time.Duration, samples int) string {
	if samples == 0 {
		return "-"
	}
	return d.Round(time.Minute).String()
}
