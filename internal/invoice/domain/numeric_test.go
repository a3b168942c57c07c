package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	n, err := ParseNumeric(42)
	require.NoError(t, err)
	assert.Equal(t, "42", n.String())

	n, err = ParseNumeric("12.5")
	require.NoError(t, err)
	assert.Equal(t, "12.5", n.String())

	n, err = ParseNumeric(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, "7", n.String())

	n, err = ParseNumeric("")
	require.NoError(t, err)
	assert.False(t, n.IsSet())

	n, err = ParseNumeric(nil)
	require.NoError(t, err)
	assert.False(t, n.IsSet())
}

func TestParseNumericRejectsGarbage(t *testing.T) {
	_, err := ParseNumeric("twelve")
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = ParseNumeric(true)
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestNumericJSONRoundTrip(t *testing.T) {
	type row struct {
		Qty    Numeric `json:"qty"`
		Rate   Numeric `json:"rate"`
		Amount Numeric `json:"amount"`
	}

	in := row{Qty: NumericFromInt(6), Rate: NumericFromFloat(2500.5)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"qty":6,"rate":2500.5,"amount":""}`, string(data))

	var out row
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Qty.Equal(in.Qty))
	assert.True(t, out.Rate.Equal(in.Rate))
	assert.False(t, out.Amount.IsSet())
}

func TestNumericUnmarshalVariants(t *testing.T) {
	var n Numeric

	require.NoError(t, json.Unmarshal([]byte(`"19800"`), &n))
	assert.Equal(t, "19800", n.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.False(t, n.IsSet())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"oops"`), &n), ErrNotNumeric)
}

func TestNumericBlankDecimalIsZero(t *testing.T) {
	blank := UnsetNumeric()
	assert.True(t, blank.Decimal().Equal(decimal.Zero))
	assert.Equal(t, "", blank.String())
}

func TestNumericEqual(t *testing.T) {
	assert.True(t, NumericFromInt(5).Equal(NumericFromFloat(5.0)))
	assert.True(t, UnsetNumeric().Equal(UnsetNumeric()))
	assert.False(t, UnsetNumeric().Equal(NumericFromInt(0)))
}
