package stats

import "github.com/mwhitt/tradebook/journal"

// WindowSummary is the windowed (e.g. weekly) variant: the same metrics
// restricted to trades entered within an inclusive date range, plus the
// single best trade.
type WindowSummary struct {
	TotalTrades  int        `json:"total_trades"`
	WinRate      float64    `json:"win_rate"`
	TotalPnL     float64    `json:"total_pnl"`
	AverageTrade float64    `json:"average_trade"`
	BestTrade    *BestTrade `json:"best_trade"`
}

// BestTrade identifies the highest-P&L trade in a window.
type BestTrade struct {
	Symbol    string  `json:"symbol"`
	TradeType string  `json:"type"`
	Profit    float64 `json:"profit"`
}

// ComputeWindow aggregates windowed metrics. The caller is expected to have
// restricted trades to the window already (journal.ListTradesEnteredBetween).
func ComputeWindow(trades []journal.Trade) WindowSummary {
	var w WindowSummary
	if len(trades) == 0 {
		return w
	}

	var wins int
	var total float64
	best := trades[0]
	for _, t := range trades {
		if t.IsWin {
			wins++
		}
		total += t.ProfitLoss
		if t.ProfitLoss > best.ProfitLoss {
			best = t
		}
	}

	w.TotalTrades = len(trades)
	w.WinRate = round2(float64(wins) / float64(len(trades)) * 100)
	w.TotalPnL = round2(total)
	w.AverageTrade = round2(total / float64(len(trades)))
	w.BestTrade = &BestTrade{
		Symbol:    best.Symbol,
		TradeType: best.TradeType,
		Profit:    round2(best.ProfitLoss),
	}
	return w
}
