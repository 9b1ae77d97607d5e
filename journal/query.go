package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, user, symbol, trade_type, entry_time, exit_time, entry_price, exit_price,
	quantity, position_size, fees, profit_loss, is_win, option_exp, option_strike, notes`

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(ctx context.Context, tradeID string) (Trade, error) {
	row := j.q.QueryRowContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return Trade{}, fmt.Errorf("trade %q not found", tradeID)
	}
	if err != nil {
		return Trade{}, err
	}
	return t, nil
}

// ListCompletedTrades returns the user's completed trades (exit price
// present) with tag names attached, ordered by entry time.
func (j *SQLite) ListCompletedTrades(ctx context.Context, user string) ([]Trade, error) {
	rows, err := j.q.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE user = ? AND exit_price IS NOT NULL
		ORDER BY entry_time ASC`, user)
	if err != nil {
		return nil, err
	}
	trades, err := collectTrades(rows)
	if err != nil {
		return nil, err
	}
	if err := j.attachTags(ctx, user, trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// ListTradesEnteredBetween returns the user's completed trades whose entry
// time falls within [start, end] inclusive.
func (j *SQLite) ListTradesEnteredBetween(ctx context.Context, user string, start, end time.Time) ([]Trade, error) {
	rows, err := j.q.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE user = ? AND exit_price IS NOT NULL AND entry_time >= ? AND entry_time <= ?
		ORDER BY entry_time ASC`, user, start, end)
	if err != nil {
		return nil, err
	}
	trades, err := collectTrades(rows)
	if err != nil {
		return nil, err
	}
	if err := j.attachTags(ctx, user, trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// attachTags fills Tags on each trade from the trade_tags join table.
func (j *SQLite) attachTags(ctx context.Context, user string, trades []Trade) error {
	if len(trades) == 0 {
		return nil
	}

	rows, err := j.q.QueryContext(ctx, `
		SELECT tt.trade_id, t.name
		FROM trade_tags tt
		JOIN tags t ON t.tag_id = tt.tag_id
		JOIN trades tr ON tr.trade_id = tt.trade_id
		WHERE tr.user = ?
		ORDER BY t.name ASC`, user)
	if err != nil {
		return err
	}
	defer rows.Close()

	byTrade := make(map[string][]string)
	for rows.Next() {
		var tradeID, name string
		if err := rows.Scan(&tradeID, &name); err != nil {
			return err
		}
		byTrade[tradeID] = append(byTrade[tradeID], name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range trades {
		trades[i].Tags = byTrade[trades[i].TradeID]
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var (
		t          Trade
		exitTime   sql.NullTime
		exitPrice  sql.NullFloat64
		profitLoss sql.NullFloat64
		isWin      sql.NullBool
	)
	err := row.Scan(
		&t.TradeID,
		&t.User,
		&t.Symbol,
		&t.TradeType,
		&t.EntryTime,
		&exitTime,
		&t.EntryPrice,
		&exitPrice,
		&t.Quantity,
		&t.PositionSize,
		&t.Fees,
		&profitLoss,
		&isWin,
		&t.OptionExp,
		&t.OptionStrike,
		&t.Notes,
	)
	if err != nil {
		return Trade{}, err
	}
	t.ExitTime = exitTime.Time
	t.ExitPrice = exitPrice.Float64
	t.ProfitLoss = profitLoss.Float64
	t.IsWin = isWin.Bool
	return t, nil
}

func collectTrades(rows *sql.Rows) ([]Trade, error) {
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
