package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhitt/tradebook/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trading statistics",
	Long: `Show performance statistics computed over completed trades.

Examples:
  tradebook stats
  tradebook stats week --start 2024-01-15 --end 2024-01-19`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a windowed summary for a date range",
	Args:  cobra.NoArgs,
	RunE:  runStatsWeek,
}

var (
	weekStart string
	weekEnd   string
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsWeekCmd)

	statsWeekCmd.Flags().StringVar(&weekStart, "start", "", "window start date (YYYY-MM-DD)")
	statsWeekCmd.Flags().StringVar(&weekEnd, "end", "", "window end date (YYYY-MM-DD)")
	_ = statsWeekCmd.MarkFlagRequired("start")
	_ = statsWeekCmd.MarkFlagRequired("end")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	trades, err := store.ListCompletedTrades(cmd.Context(), cfg.Account.User)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	s := stats.Compute(trades)

	fmt.Printf("Trades:        %d\n", s.TotalTrades)
	fmt.Printf("Wins:          %d\n", s.WinningTrades)
	fmt.Printf("Win rate:      %.2f%%\n", s.WinRate)
	if math.IsInf(s.ProfitFactor, 1) {
		fmt.Printf("Profit factor: inf\n")
	} else {
		fmt.Printf("Profit factor: %.2f\n", s.ProfitFactor)
	}
	fmt.Printf("Total profit:  %.2f\n", s.TotalProfit)
	fmt.Printf("Total loss:    %.2f\n", s.TotalLoss)
	fmt.Printf("Average win:   %.2f\n", s.AverageWin)
	fmt.Printf("Average loss:  %.2f\n", s.AverageLoss)

	if len(s.TagPerformance) > 0 {
		fmt.Println("\nStrategy performance:")
		for _, p := range s.TagPerformance {
			fmt.Printf("  %-24s %4d trades  %6.2f%%  %10.2f\n",
				p.Name, p.TotalTrades, p.WinRate, p.TotalPnL)
		}
	}
	return nil
}

func runStatsWeek(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	start, err := time.ParseInLocation("2006-01-02", weekStart, loc)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", weekEnd, loc)
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}
	// Inclusive end date: extend to the last instant of the day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	trades, err := store.ListTradesEnteredBetween(cmd.Context(), cfg.Account.User, start, end)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	w := stats.ComputeWindow(trades)

	fmt.Printf("Trades:        %d\n", w.TotalTrades)
	fmt.Printf("Win rate:      %.2f%%\n", w.WinRate)
	fmt.Printf("Total P&L:     %.2f\n", w.TotalPnL)
	fmt.Printf("Average trade: %.2f\n", w.AverageTrade)
	if w.BestTrade != nil {
		fmt.Printf("Best trade:    %s %s %.2f\n",
			w.BestTrade.Symbol, w.BestTrade.TradeType, w.BestTrade.Profit)
	}
	return nil
}
