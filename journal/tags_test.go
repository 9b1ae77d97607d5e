package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultTags(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	created, err := j.SeedDefaultTags(ctx)
	require.NoError(t, err)
	assert.Len(t, created, 6)
	assert.Contains(t, created, "Breakout")
	assert.Contains(t, created, "Momentum Continuation")

	// Seeding again creates nothing.
	created, err = j.SeedDefaultTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, created)

	tags, err := j.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 6)
	for _, tag := range tags {
		assert.True(t, tag.IsDefault)
		assert.Equal(t, "system", tag.CreatedBy)
	}
}

func TestCreateTagDuplicateName(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	_, err := j.CreateTag(ctx, Tag{Name: "Breakout", CreatedBy: "alice"})
	require.NoError(t, err)

	_, err = j.CreateTag(ctx, Tag{Name: "Breakout", CreatedBy: "alice"})
	assert.Error(t, err, "tag names are unique")
}

func TestCreateTagWithCategory(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	catID, err := j.CreateCategory(ctx, TagCategory{Name: "Setups", Color: "#00ff00", CreatedBy: "alice"})
	require.NoError(t, err)

	_, err = j.CreateTag(ctx, Tag{Name: "Breakout", CategoryID: catID, CreatedBy: "alice"})
	require.NoError(t, err)

	tags, err := j.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, catID, tags[0].CategoryID)
}

func TestRules(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	_, err := j.CreateRule(ctx, TradeRule{User: "alice", Title: "Size down on red days", Content: "Half size after two losses.", Category: RuleGeneral})
	require.NoError(t, err)
	_, err = j.CreateRule(ctx, TradeRule{User: "alice", Title: "No revenge trades", Content: "Walk away.", Category: RulePsych})
	require.NoError(t, err)

	_, err = j.CreateRule(ctx, TradeRule{User: "alice", Title: "Bad", Content: "x", Category: "WHATEVER"})
	assert.Error(t, err)

	rules, err := j.ListRules(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	rules, err = j.ListRules(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestEntries(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ctx := context.Background()

	day1 := time.Date(2024, 1, 22, 8, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	_, err := j.CreateEntry(ctx, Entry{User: "alice", Type: EntryPremarket, Title: "Gap watch", Content: "AAPL gapping up.", Mood: "Cautious", Date: day1})
	require.NoError(t, err)
	_, err = j.CreateEntry(ctx, Entry{User: "alice", Type: EntryJournal, Title: "Recap", Content: "Choppy day.", Mood: "Neutral", Date: day2})
	require.NoError(t, err)

	_, err = j.CreateEntry(ctx, Entry{User: "alice", Type: "retro", Title: "Bad", Content: "x", Date: day1})
	assert.Error(t, err)

	entries, err := j.ListEntries(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Recap", entries[0].Title)
	assert.Equal(t, "Gap watch", entries[1].Title)
}
