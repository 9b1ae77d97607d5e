package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the sqlite-backed journal store.
type SQLite struct {
	db *sql.DB
	q  queryable
}

// queryable is satisfied by both *sql.DB and *sql.Tx so store methods work
// inside and outside a transaction.
type queryable interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db, q: db}, nil
}

// WithTx runs fn against a transaction-scoped view of the store. fn returning
// an error rolls the whole batch back.
func (j *SQLite) WithTx(ctx context.Context, fn func(*SQLite) error) error {
	if j.db == nil {
		return fmt.Errorf("nested transactions not supported")
	}
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	view := &SQLite{q: tx}
	if err := fn(view); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// RecordTrade inserts one trade. Exit fields are stored as NULL when the
// trade has no exit yet.
func (j *SQLite) RecordTrade(ctx context.Context, t Trade) error {
	var (
		exitTime   any
		exitPrice  any
		profitLoss any
		isWin      any
	)
	if !t.ExitTime.IsZero() {
		exitTime = t.ExitTime
		exitPrice = t.ExitPrice
		profitLoss = t.ProfitLoss
		isWin = t.IsWin
	}

	_, err := j.q.ExecContext(ctx, `
		INSERT INTO trades
		(trade_id, user, symbol, trade_type, entry_time, exit_time, entry_price, exit_price,
		 quantity, position_size, fees, profit_loss, is_win, option_exp, option_strike, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.User, t.Symbol, t.TradeType, t.EntryTime, exitTime, t.EntryPrice, exitPrice,
		t.Quantity, t.PositionSize, t.Fees, profitLoss, isWin, t.OptionExp, t.OptionStrike, t.Notes,
	)
	return err
}

// TradeExists reports whether a trade with the same dedupe identity is
// already stored.
func (j *SQLite) TradeExists(ctx context.Context, user, symbol string, entry, exit time.Time, tradeType string) (bool, error) {
	var n int
	err := j.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM trades
		WHERE user = ? AND symbol = ? AND entry_time = ? AND exit_time = ? AND trade_type = ?`,
		user, symbol, entry, exit, tradeType,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TagTrade attaches a tag to a trade by tag name.
func (j *SQLite) TagTrade(ctx context.Context, tradeID, tagName string) error {
	var tagID string
	err := j.q.QueryRowContext(ctx, `SELECT tag_id FROM tags WHERE name = ?`, tagName).Scan(&tagID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("tag %q not found", tagName)
	}
	if err != nil {
		return err
	}

	_, err = j.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO trade_tags (trade_id, tag_id) VALUES (?, ?)`,
		tradeID, tagID)
	return err
}

// DeleteAllTrades removes every trade owned by user and returns the count.
func (j *SQLite) DeleteAllTrades(ctx context.Context, user string) (int64, error) {
	if _, err := j.q.ExecContext(ctx, `
		DELETE FROM trade_tags WHERE trade_id IN (SELECT trade_id FROM trades WHERE user = ?)`,
		user); err != nil {
		return 0, err
	}
	res, err := j.q.ExecContext(ctx, `DELETE FROM trades WHERE user = ?`, user)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (j *SQLite) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}
