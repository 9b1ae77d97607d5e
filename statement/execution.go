package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExecTimeLayout is the fixed two-digit-year timestamp format used by the
// Account Trade History section.
const ExecTimeLayout = "01/02/06 15:04:05"

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

type PosEffect string

const (
	ToOpen  PosEffect = "TO OPEN"
	ToClose PosEffect = "TO CLOSE"
)

type InstrumentKind string

const (
	Stock  InstrumentKind = "STOCK"
	Option InstrumentKind = "OPTION"
)

// Execution is one normalized trade-history row.
type Execution struct {
	ExecTime time.Time
	Side     Side
	Effect   PosEffect
	Symbol   string
	Kind     InstrumentKind
	Price    float64
	Qty      float64 // absolute contract/share count

	// Option metadata, set only when Kind == Option.
	Expiration string
	Strike     string
}

// Key returns the position-matching identity: symbol alone for stock,
// symbol plus expiration for options. Strike is intentionally not part of
// the key.
func (e Execution) Key() string {
	if e.Kind == Option && e.Expiration != "" {
		return e.Symbol + "_" + e.Expiration
	}
	return e.Symbol
}

// ParseRow converts one raw tabular row into an Execution using the resolved
// column mapping. A non-nil error means the row is rejected; rejections are
// row-local and never fatal to the batch.
func ParseRow(cols ColumnMap, row []string, loc *time.Location) (Execution, error) {
	if len(row) <= cols.max() {
		return Execution{}, fmt.Errorf("row has %d fields, need at least %d", len(row), cols.max()+1)
	}
	if loc == nil {
		loc = time.Local
	}

	cell := func(i int) string { return strings.TrimSpace(row[i]) }

	execTime, err := time.ParseInLocation(ExecTimeLayout, cell(cols.ExecTime), loc)
	if err != nil {
		return Execution{}, fmt.Errorf("exec time %q: %w", cell(cols.ExecTime), err)
	}

	effect := PosEffect(cell(cols.PosEffect))
	if effect != ToOpen && effect != ToClose {
		return Execution{}, fmt.Errorf("unrecognized position effect %q", cell(cols.PosEffect))
	}

	price, err := parsePrice(cell(cols.Price))
	if err != nil {
		return Execution{}, fmt.Errorf("price %q: %w", cell(cols.Price), err)
	}

	qty, err := parseQty(cell(cols.Qty))
	if err != nil {
		return Execution{}, fmt.Errorf("qty %q: %w", cell(cols.Qty), err)
	}

	ex := Execution{
		ExecTime: execTime,
		Side:     Side(cell(cols.Side)),
		Effect:   effect,
		Symbol:   cell(cols.Symbol),
		Kind:     Stock,
		Price:    price,
		Qty:      qty,
	}

	if typ := cell(cols.Type); typ == "PUT" || typ == "CALL" {
		ex.Kind = Option
		ex.Expiration = cell(cols.Exp)
		ex.Strike = cell(cols.Strike)
	}

	return ex, nil
}

// parsePrice strips currency symbols and thousands separators before parsing.
func parsePrice(s string) (float64, error) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

// parseQty strips direction markers and returns the absolute count.
func parseQty(s string) (float64, error) {
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimPrefix(s, "-")
	s = strings.ReplaceAll(s, ",", "")
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if q < 0 {
		q = -q
	}
	return q, nil
}
