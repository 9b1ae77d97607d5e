package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `Account Statement for 123456789

Cash Balance
DATE,TIME,TYPE,REF #,DESCRIPTION,FEES,AMOUNT,BALANCE
1/22/24,09:31:05,TRD,1,BOT +10 AAPL @100.00,0.65,-1000.00,9000.00

Account Trade History
,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price,Order Type
,01/22/24 09:31:05,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00,LMT
,01/22/24 10:15:40,STOCK,SELL,-10,TO CLOSE,AAPL,,,STOCK,110.00,110.00,LMT

Profits and Losses
Symbol,Description,P/L Open,P/L %
AAPL,APPLE INC,0.00,0.00%
`

func TestExtractSection(t *testing.T) {
	t.Parallel()

	sec, err := ExtractSection(sampleStatement)
	require.NoError(t, err)

	assert.Contains(t, sec.Header, "Exec Time")
	assert.Contains(t, sec.Header, "Pos Effect")
	require.Len(t, sec.Rows, 2)
	assert.Equal(t, "AAPL", sec.Rows[0][6])
}

func TestExtractSectionMissingHeader(t *testing.T) {
	t.Parallel()

	_, err := ExtractSection("Account Statement\n\nCash Balance\nDATE,TIME\n1/22/24,09:31:05\n")
	assert.ErrorIs(t, err, ErrNoTradeSection)
}

func TestExtractSectionEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ExtractSection("")
	assert.ErrorIs(t, err, ErrNoTradeSection)
}

func TestExtractSectionEndsAtTerminator(t *testing.T) {
	t.Parallel()

	// No blank line between the data and the terminating header.
	raw := `Account Trade History
,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price
,01/22/24 09:31:05,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00
Profits and Losses
AAPL,should not appear`

	sec, err := ExtractSection(raw)
	require.NoError(t, err)
	require.Len(t, sec.Rows, 1)
}

func TestExtractSectionEndsAtBlankLine(t *testing.T) {
	t.Parallel()

	raw := `Account Trade History
,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price
,01/22/24 09:31:05,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00

Some Other Section
,01/23/24 09:31:05,STOCK,BUY,+10,TO OPEN,MSFT,,,STOCK,400.00,400.00`

	sec, err := ExtractSection(raw)
	require.NoError(t, err)
	require.Len(t, sec.Rows, 1)
	assert.Equal(t, "AAPL", sec.Rows[0][6])
}

func TestExtractSectionCRLF(t *testing.T) {
	t.Parallel()

	raw := "Account Trade History\r\n,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price\r\n,01/22/24 09:31:05,STOCK,BUY,+10,TO OPEN,AAPL,,,STOCK,100.00,100.00\r\n\r\n"

	sec, err := ExtractSection(raw)
	require.NoError(t, err)
	require.Len(t, sec.Rows, 1)
}

func TestExtractSectionHeaderOnly(t *testing.T) {
	t.Parallel()

	raw := "Account Trade History\n,Exec Time,Spread,Side,Qty,Pos Effect,Symbol,Exp,Strike,Type,Price,Net Price\n"

	sec, err := ExtractSection(raw)
	require.NoError(t, err)
	assert.Empty(t, sec.Rows)
}
