package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	user TEXT NOT NULL,
	symbol TEXT NOT NULL,
	trade_type TEXT NOT NULL,
	entry_time DATETIME NOT NULL,
	exit_time DATETIME,
	entry_price REAL NOT NULL,
	exit_price REAL,
	quantity REAL NOT NULL,
	position_size REAL NOT NULL,
	fees REAL NOT NULL DEFAULT 0,
	profit_loss REAL,
	is_win INTEGER,
	option_exp TEXT NOT NULL DEFAULT '',
	option_strike TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_trades_user_entry ON trades(user, entry_time);
CREATE INDEX IF NOT EXISTS idx_trades_dedupe ON trades(user, symbol, entry_time, exit_time, trade_type);

CREATE TABLE IF NOT EXISTS tag_categories (
	category_id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	created_by TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tags (
	tag_id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	is_default INTEGER NOT NULL DEFAULT 0,
	category_id TEXT REFERENCES tag_categories(category_id),
	created_by TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS trade_tags (
	trade_id TEXT NOT NULL REFERENCES trades(trade_id),
	tag_id TEXT NOT NULL REFERENCES tags(tag_id),
	PRIMARY KEY (trade_id, tag_id)
);

CREATE TABLE IF NOT EXISTS trade_rules (
	rule_id TEXT PRIMARY KEY,
	user TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	category TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS journal_entries (
	entry_id TEXT PRIMARY KEY,
	user TEXT NOT NULL,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	mood TEXT NOT NULL DEFAULT '',
	date DATETIME NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_entries_user_date ON journal_entries(user, date);
`
