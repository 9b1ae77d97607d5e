package statement

import (
	"encoding/csv"
	"errors"
	"strings"
)

// Markers in a thinkorswim account statement export.
const (
	sectionHeader = "Account Trade History"
	sectionEnd    = "Profits and Losses"
	headerMarker  = "Exec Time"
)

// ErrNoTradeSection is returned when the statement has no Account Trade
// History section. Callers should treat it as "no trades to import", not as
// a parse failure.
var ErrNoTradeSection = errors.New("no trade history section found")

// Section is the isolated trade-history block: the column-header row and the
// raw data rows that follow it.
type Section struct {
	Header []string
	Rows   [][]string
}

// ExtractSection locates the Account Trade History block within raw statement
// text and returns its header row plus data rows. The block ends at the next
// blank line or the Profits and Losses header. Lines before the column-header
// row are discarded.
func ExtractSection(raw string) (Section, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if firstField(line) == sectionHeader {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return Section{}, ErrNoTradeSection
	}

	// Collect the section body up to the next blank line or terminator.
	var body []string
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" || firstField(line) == sectionEnd {
			break
		}
		body = append(body, line)
	}

	// The first row containing "Exec Time" is the column header; anything
	// before it is section chrome.
	headerIdx := -1
	for i, line := range body {
		if strings.Contains(line, headerMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return Section{}, ErrNoTradeSection
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(body[headerIdx:], "\n")))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Section{}, err
	}
	if len(records) == 0 {
		return Section{}, ErrNoTradeSection
	}

	sec := Section{Header: trimAll(records[0])}
	if len(records) > 1 {
		sec.Rows = records[1:]
	}
	return sec, nil
}

// firstField returns the trimmed first CSV field of a line.
func firstField(line string) string {
	if i := strings.IndexByte(line, ','); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
