package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileStatement(t *testing.T) {
	t.Parallel()

	r := NewReconciler(WithLocation(time.UTC))
	res, err := r.Reconcile(sampleStatement)
	require.NoError(t, err)

	require.Len(t, res.Trades, 1)
	ct := res.Trades[0]
	assert.Equal(t, "AAPL", ct.Symbol)
	assert.InDelta(t, 100.00, ct.EntryPrice, 1e-9)
	assert.InDelta(t, 110.00, ct.ExitPrice, 1e-9)
	assert.InDelta(t, 100.00, ct.ProfitLoss, 1e-9)
	assert.Equal(t, 0, res.RowsRejected)
	assert.Equal(t, 0, res.UnmatchedCloses)
	assert.Equal(t, 0, res.OpenDiscarded)
}

func TestReconcileNoTradeSection(t *testing.T) {
	t.Parallel()

	r := NewReconciler()
	res, err := r.Reconcile("Account Statement\n\nCash Balance\nDATE,TIME\n")
	assert.ErrorIs(t, err, ErrNoTradeSection)
	assert.Empty(t, res.Trades)
}

func TestReconcileSkipsMalformedRows(t *testing.T) {
	t.Parallel()

	raw := `Account Trade History
,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price
,01/22/24 09:31:05,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00
,not a timestamp,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00
,01/22/24 09:45:00,STOCK,SELL,-10,TO BORROW,AAPL,,,STOCK,105.00,105.00
,01/22/24 10:15:40,STOCK,SELL,-10,TO CLOSE,AAPL,,,STOCK,110.00,110.00
`

	r := NewReconciler(WithLocation(time.UTC))
	res, err := r.Reconcile(raw)
	require.NoError(t, err)

	// Bad rows are skipped and counted without aborting the batch.
	require.Len(t, res.Trades, 1)
	assert.Equal(t, 2, res.RowsRejected)
	assert.InDelta(t, 100.00, res.Trades[0].ProfitLoss, 1e-9)
}

func TestReconcileMissingColumn(t *testing.T) {
	t.Parallel()

	raw := `Account Trade History
,Exec Time,Side,Qty,Symbol,Price
,01/22/24 09:31:05,BUY,+10,AAPL,100.00
`

	r := NewReconciler()
	_, err := r.Reconcile(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestReconcileCountsDiagnostics(t *testing.T) {
	t.Parallel()

	raw := `Account Trade History
,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price
,01/22/24 09:15:00,STOCK,SELL,-5,TO CLOSE,NVDA,,,STOCK,500.00,500.00
,01/22/24 09:31:05,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00
,01/22/24 10:15:40,STOCK,SELL,-10,TO CLOSE,AAPL,,,STOCK,110.00,110.00
,01/22/24 11:00:00,STOCK,BUY,+20,TO OPEN,MSFT,,,STOCK,400.00,400.00
`

	r := NewReconciler(WithLocation(time.UTC))
	res, err := r.Reconcile(raw)
	require.NoError(t, err)

	require.Len(t, res.Trades, 1)
	assert.Equal(t, 1, res.UnmatchedCloses)
	assert.Equal(t, 1, res.OpenDiscarded)
}

func TestReconcileOptionScenario(t *testing.T) {
	t.Parallel()

	raw := `Account Trade History
,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price
,01/22/24 09:31:05,SINGLE,BUY,+1,TO OPEN,SPY,16 FEB 24,400,CALL,2.00,2.00
,01/22/24 10:15:40,SINGLE,SELL,-1,TO CLOSE,SPY,16 FEB 24,400,CALL,3.00,3.00
`

	r := NewReconciler(WithLocation(time.UTC))
	res, err := r.Reconcile(raw)
	require.NoError(t, err)

	require.Len(t, res.Trades, 1)
	ct := res.Trades[0]
	assert.Equal(t, Option, ct.Kind)
	assert.InDelta(t, 200.00, ct.PositionSize, 1e-9)
	assert.InDelta(t, 100.00, ct.ProfitLoss, 1e-9)
}
