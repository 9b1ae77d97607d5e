// Package stats computes read-side performance metrics over completed
// trades.
package stats

import (
	"math"
	"sort"

	"github.com/mwhitt/tradebook/journal"
)

// UntaggedBucket collects trades that carry no tags in per-tag breakdowns.
const UntaggedBucket = "Untagged"

// Summary holds overall performance metrics for one user's completed trades.
// Currency and percentage fields are rounded to 2 decimal places.
type Summary struct {
	TotalTrades    int              `json:"total_trades"`
	WinningTrades  int              `json:"winning_trades"`
	WinRate        float64          `json:"win_rate"`
	ProfitFactor   float64          `json:"profit_factor"`
	TotalProfit    float64          `json:"total_profit"`
	TotalLoss      float64          `json:"total_loss"`
	AverageWin     float64          `json:"average_profit"`
	AverageLoss    float64          `json:"average_loss"`
	TagPerformance []TagPerformance `json:"strategy_performance"`
}

// TagPerformance is the per-tag slice of the breakdown, ordered by total
// P&L descending.
type TagPerformance struct {
	Name        string  `json:"name"`
	TotalTrades int     `json:"total_trades"`
	WinRate     float64 `json:"win_rate"`
	TotalPnL    float64 `json:"total_pnl"`
}

// Compute aggregates metrics over completed trades. Zero trades yields
// all-zero metrics, never a division error.
func Compute(trades []journal.Trade) Summary {
	var s Summary
	s.TagPerformance = []TagPerformance{}
	if len(trades) == 0 {
		return s
	}

	var profit, loss, winSum, lossSum float64
	var winCount, lossCount int
	for _, t := range trades {
		if t.IsWin {
			s.WinningTrades++
		}
		switch {
		case t.ProfitLoss > 0:
			profit += t.ProfitLoss
			winSum += t.ProfitLoss
			winCount++
		case t.ProfitLoss < 0:
			loss += -t.ProfitLoss
			lossSum += t.ProfitLoss
			lossCount++
		}
	}

	s.TotalTrades = len(trades)
	s.WinRate = round2(float64(s.WinningTrades) / float64(s.TotalTrades) * 100)
	s.TotalProfit = round2(profit)
	s.TotalLoss = round2(loss)

	switch {
	case loss > 0:
		s.ProfitFactor = round2(profit / loss)
	case profit > 0:
		s.ProfitFactor = math.Inf(1)
	}

	if winCount > 0 {
		s.AverageWin = round2(winSum / float64(winCount))
	}
	if lossCount > 0 {
		s.AverageLoss = round2(lossSum / float64(lossCount))
	}

	s.TagPerformance = tagBreakdown(trades)
	return s
}

// tagBreakdown buckets trades by tag name, with untagged trades grouped
// under the Untagged sentinel rather than dropped. A trade with several tags
// counts once per tag.
func tagBreakdown(trades []journal.Trade) []TagPerformance {
	type bucket struct {
		count int
		wins  int
		pnl   float64
	}
	buckets := make(map[string]*bucket)

	add := func(name string, t journal.Trade) {
		b := buckets[name]
		if b == nil {
			b = &bucket{}
			buckets[name] = b
		}
		b.count++
		if t.IsWin {
			b.wins++
		}
		b.pnl += t.ProfitLoss
	}

	for _, t := range trades {
		if len(t.Tags) == 0 {
			add(UntaggedBucket, t)
			continue
		}
		for _, tag := range t.Tags {
			add(tag, t)
		}
	}

	var tagged []TagPerformance
	var untagged *TagPerformance
	for name, b := range buckets {
		perf := TagPerformance{
			Name:        name,
			TotalTrades: b.count,
			WinRate:     round2(float64(b.wins) / float64(b.count) * 100),
			TotalPnL:    round2(b.pnl),
		}
		if name == UntaggedBucket {
			untagged = &perf
			continue
		}
		tagged = append(tagged, perf)
	}

	sort.Slice(tagged, func(i, j int) bool {
		if tagged[i].TotalPnL != tagged[j].TotalPnL {
			return tagged[i].TotalPnL > tagged[j].TotalPnL
		}
		return tagged[i].Name < tagged[j].Name
	})

	// The untagged bucket always trails the tagged breakdown.
	if untagged != nil {
		tagged = append(tagged, *untagged)
	}
	if tagged == nil {
		tagged = []TagPerformance{}
	}
	return tagged
}

// round2 is the single rounding policy for currency and percentage outputs.
func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
