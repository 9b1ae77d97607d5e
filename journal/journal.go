package journal

import (
	"context"
	"time"
)

// Trade types stored in the trades table.
const (
	TypeStock  = "STOCK"
	TypeOption = "OPTION"
)

// Trade is one persisted round-trip trade owned by a user. Imported trades
// are always completed (exit present); the schema leaves exit columns
// nullable for trades entered by hand.
type Trade struct {
	TradeID      string
	User         string
	Symbol       string
	TradeType    string
	EntryTime    time.Time
	ExitTime     time.Time
	EntryPrice   float64
	ExitPrice    float64
	Quantity     float64
	PositionSize float64
	Fees         float64
	ProfitLoss   float64
	IsWin        bool
	OptionExp    string
	OptionStrike string
	Notes        string

	// Tag names attached to the trade, populated by list queries.
	Tags []string
}

// Tag is a trade strategy label. Default tags are seeded system-wide.
type Tag struct {
	TagID       string
	Name        string
	Description string
	Color       string
	IsDefault   bool
	CategoryID  string
	CreatedBy   string
}

// TagCategory groups tags.
type TagCategory struct {
	CategoryID  string
	Name        string
	Description string
	Color       string
	CreatedBy   string
}

// Rule categories.
const (
	RuleGeneral = "GENERAL"
	RuleDaily   = "DAILY"
	RulePsych   = "PSYCH"
)

// TradeRule is a trading rule or mindset note.
type TradeRule struct {
	RuleID   string
	User     string
	Title    string
	Content  string
	Category string
}

// Journal entry types.
const (
	EntryJournal   = "journal"
	EntryPremarket = "premarket"
)

// Entry is a daily journal entry or premarket analysis.
type Entry struct {
	EntryID string
	User    string
	Type    string
	Title   string
	Content string
	Mood    string
	Date    time.Time
}

// TradeStore is the storage surface the import gate depends on.
type TradeStore interface {
	RecordTrade(ctx context.Context, t Trade) error
	TradeExists(ctx context.Context, user, symbol string, entry, exit time.Time, tradeType string) (bool, error)
}
