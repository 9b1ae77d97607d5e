package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhitt/tradebook/journal"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List journal trades",
	Long: `List completed trades from the journal.

Examples:
  tradebook trades today
  tradebook trades day 2024-01-15`,
}

var tradesTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades entered today",
	Args:  cobra.NoArgs,
	RunE:  runTradesToday,
}

var tradesDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades entered on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesDay,
}

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(tradesTodayCmd)
	tradesCmd.AddCommand(tradesDayCmd)
}

func runTradesToday(cmd *cobra.Command, args []string) error {
	return listTradesForDay(cmd, time.Now().Format("2006-01-02"))
}

func runTradesDay(cmd *cobra.Command, args []string) error {
	return listTradesForDay(cmd, args[0])
}

func listTradesForDay(cmd *cobra.Command, day string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	start, end, err := dayBounds(loc, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	trades, err := store.ListTradesEnteredBetween(cmd.Context(), cfg.Account.User, start, end)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	if len(trades) == 0 {
		fmt.Println("No trades.")
		return nil
	}
	for _, t := range trades {
		fmt.Println(formatTrade(t))
	}
	return nil
}

func formatTrade(t journal.Trade) string {
	result := "LOSS"
	if t.IsWin {
		result = "WIN"
	}
	return fmt.Sprintf("%s  %-6s %-6s  %s -> %s  entry %.2f exit %.2f  P&L %.2f  %s",
		t.TradeID, t.Symbol, t.TradeType,
		t.EntryTime.Format("01/02 15:04"), t.ExitTime.Format("01/02 15:04"),
		t.EntryPrice, t.ExitPrice, t.ProfitLoss, result)
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
