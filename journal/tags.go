package journal

import (
	"context"
	"fmt"

	"github.com/mwhitt/tradebook/pkg/id"
)

// CreateTag stores a tag and returns its generated ID.
func (j *SQLite) CreateTag(ctx context.Context, t Tag) (string, error) {
	if t.TagID == "" {
		t.TagID = id.New()
	}
	var categoryID any
	if t.CategoryID != "" {
		categoryID = t.CategoryID
	}
	_, err := j.q.ExecContext(ctx, `
		INSERT INTO tags (tag_id, name, description, color, is_default, category_id, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.TagID, t.Name, t.Description, t.Color, t.IsDefault, categoryID, t.CreatedBy)
	if err != nil {
		return "", fmt.Errorf("create tag %q: %w", t.Name, err)
	}
	return t.TagID, nil
}

// ListTags returns all tags ordered by name.
func (j *SQLite) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := j.q.QueryContext(ctx, `
		SELECT tag_id, name, description, color, is_default, COALESCE(category_id, ''), created_by
		FROM tags
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.TagID, &t.Name, &t.Description, &t.Color, &t.IsDefault, &t.CategoryID, &t.CreatedBy); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateCategory stores a tag category and returns its generated ID.
func (j *SQLite) CreateCategory(ctx context.Context, c TagCategory) (string, error) {
	if c.CategoryID == "" {
		c.CategoryID = id.New()
	}
	_, err := j.q.ExecContext(ctx, `
		INSERT INTO tag_categories (category_id, name, description, color, created_by)
		VALUES (?, ?, ?, ?, ?)`,
		c.CategoryID, c.Name, c.Description, c.Color, c.CreatedBy)
	if err != nil {
		return "", fmt.Errorf("create category %q: %w", c.Name, err)
	}
	return c.CategoryID, nil
}

// defaultTags are the stock strategy tags seeded for every installation.
var defaultTags = []Tag{
	{Name: "Breakout", Description: "Price breaking out of a defined range or pattern"},
	{Name: "Compression Break", Description: "Price breaking out after a period of compression"},
	{Name: "Trend Reversal", Description: "Change in the prevailing trend direction"},
	{Name: "VWAP Reclaim", Description: "Price reclaiming the Volume Weighted Average Price"},
	{Name: "Range Break", Description: "Price breaking out of a trading range"},
	{Name: "Momentum Continuation", Description: "Trading in the direction of strong momentum"},
}

// SeedDefaultTags creates the default strategy tags that do not exist yet
// and returns the names it created.
func (j *SQLite) SeedDefaultTags(ctx context.Context) ([]string, error) {
	existing, err := j.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[t.Name] = true
	}

	var created []string
	for _, t := range defaultTags {
		if have[t.Name] {
			continue
		}
		t.IsDefault = true
		t.CreatedBy = "system"
		if _, err := j.CreateTag(ctx, t); err != nil {
			return created, err
		}
		created = append(created, t.Name)
	}
	return created, nil
}

// CreateRule stores a trading rule and returns its generated ID.
func (j *SQLite) CreateRule(ctx context.Context, r TradeRule) (string, error) {
	switch r.Category {
	case RuleGeneral, RuleDaily, RulePsych:
	default:
		return "", fmt.Errorf("unknown rule category %q", r.Category)
	}
	if r.RuleID == "" {
		r.RuleID = id.New()
	}
	_, err := j.q.ExecContext(ctx, `
		INSERT INTO trade_rules (rule_id, user, title, content, category)
		VALUES (?, ?, ?, ?, ?)`,
		r.RuleID, r.User, r.Title, r.Content, r.Category)
	if err != nil {
		return "", fmt.Errorf("create rule %q: %w", r.Title, err)
	}
	return r.RuleID, nil
}

// ListRules returns the user's trading rules ordered by creation.
func (j *SQLite) ListRules(ctx context.Context, user string) ([]TradeRule, error) {
	rows, err := j.q.QueryContext(ctx, `
		SELECT rule_id, user, title, content, category
		FROM trade_rules
		WHERE user = ?
		ORDER BY created_at ASC`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRule
	for rows.Next() {
		var r TradeRule
		if err := rows.Scan(&r.RuleID, &r.User, &r.Title, &r.Content, &r.Category); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateEntry stores a journal entry and returns its generated ID.
func (j *SQLite) CreateEntry(ctx context.Context, e Entry) (string, error) {
	switch e.Type {
	case EntryJournal, EntryPremarket:
	default:
		return "", fmt.Errorf("unknown entry type %q", e.Type)
	}
	if e.EntryID == "" {
		e.EntryID = id.New()
	}
	_, err := j.q.ExecContext(ctx, `
		INSERT INTO journal_entries (entry_id, user, type, title, content, mood, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.EntryID, e.User, e.Type, e.Title, e.Content, e.Mood, e.Date)
	if err != nil {
		return "", fmt.Errorf("create entry %q: %w", e.Title, err)
	}
	return e.EntryID, nil
}

// ListEntries returns the user's journal entries, newest first.
func (j *SQLite) ListEntries(ctx context.Context, user string) ([]Entry, error) {
	rows, err := j.q.QueryContext(ctx, `
		SELECT entry_id, user, type, title, content, mood, date
		FROM journal_entries
		WHERE user = ?
		ORDER BY date DESC`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.EntryID, &e.User, &e.Type, &e.Title, &e.Content, &e.Mood, &e.Date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
