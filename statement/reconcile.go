package statement

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of reconciling one statement: the completed trades
// plus per-batch diagnostics.
type Result struct {
	Trades          []CompletedTrade
	RowsRejected    int
	UnmatchedCloses int
	OpenDiscarded   int
}

// Reconciler turns raw statement text into completed round-trip trades.
type Reconciler struct {
	loc *time.Location
	log *zap.Logger
}

type ReconcilerOption func(*Reconciler)

// WithLocation sets the location used to interpret statement timestamps.
// The export carries naive local times, so this defaults to time.Local.
func WithLocation(loc *time.Location) ReconcilerOption {
	return func(r *Reconciler) { r.loc = loc }
}

func WithLogger(log *zap.Logger) ReconcilerOption {
	return func(r *Reconciler) { r.log = log }
}

func NewReconciler(opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{loc: time.Local, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile extracts the trade-history section, normalizes its rows, and
// matches opens against closes. A statement without a trade section yields an
// empty result and ErrNoTradeSection; malformed rows are skipped and counted.
func (r *Reconciler) Reconcile(raw string) (Result, error) {
	sec, err := ExtractSection(raw)
	if err != nil {
		if errors.Is(err, ErrNoTradeSection) {
			r.log.Info("no trade history section in statement")
		}
		return Result{}, err
	}

	cols, err := ResolveColumns(sec.Header)
	if err != nil {
		return Result{}, err
	}

	var (
		execs    []Execution
		rejected int
	)
	for i, row := range sec.Rows {
		ex, err := ParseRow(cols, row, r.loc)
		if err != nil {
			rejected++
			r.log.Warn("skipping malformed row",
				zap.Int("row", i+1),
				zap.Error(err))
			continue
		}
		execs = append(execs, ex)
	}

	m := NewMatcher()
	m.Process(execs)

	if n := m.UnmatchedCloses(); n > 0 {
		r.log.Info("closes with no matching open dropped", zap.Int("count", n))
	}
	if n := m.OpenRemaining(); n > 0 {
		r.log.Info("open positions left unmatched at end of statement", zap.Int("count", n))
	}

	return Result{
		Trades:          m.Trades(),
		RowsRejected:    rejected,
		UnmatchedCloses: m.UnmatchedCloses(),
		OpenDiscarded:   m.OpenRemaining(),
	}, nil
}
