package statement

import (
	"sort"
	"time"
)

// optionMultiplier scales option contracts to their 100-share equivalent.
const optionMultiplier = 100

// CompletedTrade is one matched open/close round trip with realized P&L.
// Immutable once emitted.
type CompletedTrade struct {
	Symbol       string
	Kind         InstrumentKind
	EntryTime    time.Time
	ExitTime     time.Time
	EntryPrice   float64
	ExitPrice    float64
	Quantity     float64
	PositionSize float64
	ProfitLoss   float64
	IsWin        bool

	Expiration string
	Strike     string
}

// openPosition is one unmatched opening execution queued per position key.
type openPosition struct {
	entryTime    time.Time
	entryPrice   float64
	qty          float64
	side         Side
	kind         InstrumentKind
	positionSize float64
	expiration   string
	strike       string
}

// Matcher pairs closing executions against the oldest matching open (FIFO
// per position key) and emits completed trades. State lives for one batch
// only and is not safe for concurrent use.
type Matcher struct {
	open map[string][]openPosition

	trades          []CompletedTrade
	unmatchedCloses int
}

func NewMatcher() *Matcher {
	return &Matcher{open: make(map[string][]openPosition)}
}

// Process feeds executions through the matcher in non-decreasing timestamp
// order. The batch is stable-sorted first so FIFO matching stays correct even
// when the statement is not chronological; ties keep original row order.
func (m *Matcher) Process(execs []Execution) {
	sorted := make([]Execution, len(execs))
	copy(sorted, execs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecTime.Before(sorted[j].ExecTime)
	})

	for _, ex := range sorted {
		m.apply(ex)
	}
}

func (m *Matcher) apply(ex Execution) {
	key := ex.Key()

	switch ex.Effect {
	case ToOpen:
		size := ex.Qty * ex.Price
		if ex.Kind == Option {
			size *= optionMultiplier
		}
		m.open[key] = append(m.open[key], openPosition{
			entryTime:    ex.ExecTime,
			entryPrice:   ex.Price,
			qty:          ex.Qty,
			side:         ex.Side,
			kind:         ex.Kind,
			positionSize: size,
			expiration:   ex.Expiration,
			strike:       ex.Strike,
		})

	case ToClose:
		queue := m.open[key]
		if len(queue) == 0 {
			// Statements may begin mid-position; drop and count.
			m.unmatchedCloses++
			return
		}
		head := queue[0]
		m.open[key] = queue[1:]
		m.trades = append(m.trades, completeTrade(head, ex))
	}
}

// completeTrade computes realized P&L for a matched pair. The sign follows
// the opening side; the option multiplier applies after the subtraction.
func completeTrade(open openPosition, closing Execution) CompletedTrade {
	var pl float64
	if open.side == Buy {
		pl = (closing.Price - open.entryPrice) * closing.Qty
	} else {
		pl = (open.entryPrice - closing.Price) * closing.Qty
	}
	if open.kind == Option {
		pl *= optionMultiplier
	}

	return CompletedTrade{
		Symbol:       closing.Symbol,
		Kind:         open.kind,
		EntryTime:    open.entryTime,
		ExitTime:     closing.ExecTime,
		EntryPrice:   open.entryPrice,
		ExitPrice:    closing.Price,
		Quantity:     closing.Qty,
		PositionSize: open.positionSize,
		ProfitLoss:   pl,
		IsWin:        pl > 0,
		Expiration:   open.expiration,
		Strike:       open.strike,
	}
}

// Trades returns the completed trades emitted so far, in match order.
func (m *Matcher) Trades() []CompletedTrade {
	return m.trades
}

// UnmatchedCloses reports closes that found no open position.
func (m *Matcher) UnmatchedCloses() int {
	return m.unmatchedCloses
}

// OpenRemaining reports opens left unmatched at end of batch. These are
// discarded, never reported as trades.
func (m *Matcher) OpenRemaining() int {
	n := 0
	for _, q := range m.open {
		n += len(q)
	}
	return n
}
