// Package importer persists reconciled statement trades, skipping
// duplicates that were imported before.
package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mwhitt/tradebook/journal"
	"github.com/mwhitt/tradebook/pkg/id"
	"github.com/mwhitt/tradebook/statement"
)

// Summary is what an import run reports back, even on partial failure.
type Summary struct {
	Created         int
	Duplicates      int
	RowsRejected    int
	UnmatchedCloses int
	OpenDiscarded   int
	Total           int
}

func (s Summary) String() string {
	return fmt.Sprintf("imported %d of %d trades (%d duplicates skipped, %d rows rejected, %d unmatched closes, %d opens discarded)",
		s.Created, s.Total, s.Duplicates, s.RowsRejected, s.UnmatchedCloses, s.OpenDiscarded)
}

// Gate writes completed trades through duplicate detection. The
// check-then-insert is not atomic against concurrent imports of the same
// user's data; callers must serialize per user or run the batch inside
// journal.SQLite.WithTx.
type Gate struct {
	store journal.TradeStore
	log   *zap.Logger
}

func NewGate(store journal.TradeStore, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{store: store, log: log}
}

// Persist writes each completed trade for user unless an identical trade
// (user, symbol, entry time, exit time, type) already exists. A storage
// failure stops the remaining writes; the summary reflects progress made up
// to the failing record.
func (g *Gate) Persist(ctx context.Context, user string, res statement.Result) (Summary, error) {
	sum := Summary{
		RowsRejected:    res.RowsRejected,
		UnmatchedCloses: res.UnmatchedCloses,
		OpenDiscarded:   res.OpenDiscarded,
		Total:           len(res.Trades),
	}

	for _, ct := range res.Trades {
		exists, err := g.store.TradeExists(ctx, user, ct.Symbol, ct.EntryTime, ct.ExitTime, tradeType(ct.Kind))
		if err != nil {
			return sum, fmt.Errorf("duplicate check for %s: %w", ct.Symbol, err)
		}
		if exists {
			sum.Duplicates++
			g.log.Debug("skipping duplicate trade",
				zap.String("symbol", ct.Symbol),
				zap.Time("entry", ct.EntryTime))
			continue
		}

		if err := g.store.RecordTrade(ctx, toTrade(user, ct)); err != nil {
			return sum, fmt.Errorf("record trade for %s: %w", ct.Symbol, err)
		}
		sum.Created++
	}

	g.log.Info("import complete",
		zap.String("user", user),
		zap.Int("created", sum.Created),
		zap.Int("duplicates", sum.Duplicates))
	return sum, nil
}

func toTrade(user string, ct statement.CompletedTrade) journal.Trade {
	t := journal.Trade{
		TradeID:      id.New(),
		User:         user,
		Symbol:       ct.Symbol,
		TradeType:    tradeType(ct.Kind),
		EntryTime:    ct.EntryTime,
		ExitTime:     ct.ExitTime,
		EntryPrice:   ct.EntryPrice,
		ExitPrice:    ct.ExitPrice,
		Quantity:     ct.Quantity,
		PositionSize: ct.PositionSize,
		ProfitLoss:   ct.ProfitLoss,
		IsWin:        ct.IsWin,
	}
	if ct.Kind == statement.Option {
		t.OptionExp = ct.Expiration
		t.OptionStrike = ct.Strike
	}
	return t
}

func tradeType(k statement.InstrumentKind) string {
	if k == statement.Option {
		return journal.TypeOption
	}
	return journal.TypeStock
}
