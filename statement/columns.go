package statement

import "fmt"

// ColumnMap is the header-to-index mapping for a trade-history section,
// resolved once per batch.
type ColumnMap struct {
	ExecTime  int
	Side      int
	Qty       int
	PosEffect int
	Symbol    int
	Exp       int
	Strike    int
	Type      int
	Price     int
	NetPrice  int
}

// ResolveColumns maps the header row's field names to column indexes and
// validates that every required column is present.
func ResolveColumns(header []string) (ColumnMap, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	var cm ColumnMap
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{"Exec Time", &cm.ExecTime},
		{"Side", &cm.Side},
		{"Qty", &cm.Qty},
		{"Pos Effect", &cm.PosEffect},
		{"Symbol", &cm.Symbol},
		{"Exp", &cm.Exp},
		{"Strike", &cm.Strike},
		{"Type", &cm.Type},
		{"Price", &cm.Price},
		{"Net Price", &cm.NetPrice},
	} {
		i, ok := idx[col.name]
		if !ok {
			return ColumnMap{}, fmt.Errorf("missing required column %q", col.name)
		}
		*col.dst = i
	}
	return cm, nil
}

// max returns the highest column index, the minimum row width minus one.
func (cm ColumnMap) max() int {
	m := cm.ExecTime
	for _, i := range []int{cm.Side, cm.Qty, cm.PosEffect, cm.Symbol, cm.Exp, cm.Strike, cm.Type, cm.Price, cm.NetPrice} {
		if i > m {
			m = i
		}
	}
	return m
}
