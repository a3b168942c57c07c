package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFieldStrings(t *testing.T) {
	doc := DemoDocument(time.Now())

	require.NoError(t, doc.SetField("seller.name", "Acme Exports"))
	assert.Equal(t, "Acme Exports", doc.Seller.Name)

	require.NoError(t, doc.SetField("buyer.gstin", "29XYZAB1234C1Z9"))
	assert.Equal(t, "29XYZAB1234C1Z9", doc.Buyer.GSTIN)

	require.NoError(t, doc.SetField("invoice.no", "TI-2024-002"))
	assert.Equal(t, "TI-2024-002", doc.Invoice.No)

	require.NoError(t, doc.SetField("bank.swift", "GCBLINBB"))
	assert.Equal(t, "GCBLINBB", doc.Bank.SWIFT)

	require.NoError(t, doc.SetField("remarks", "Net 30"))
	assert.Equal(t, "Net 30", doc.Remarks)
}

func TestSetFieldNumeric(t *testing.T) {
	doc := DemoDocument(time.Now())

	require.NoError(t, doc.SetField("items.0.qty", 3))
	assert.Equal(t, "3", doc.Items[0].Qty.String())

	require.NoError(t, doc.SetField("items.0.rate", "2500.50"))
	assert.Equal(t, "2500.5", doc.Items[0].Rate.String())

	// Clearing a numeric field with the empty string makes it blank.
	require.NoError(t, doc.SetField("tax_rows.1.cgst_rate", ""))
	assert.False(t, doc.TaxRows[1].CGSTRate.IsSet())
}

func TestSetFieldRejectsNonNumericText(t *testing.T) {
	doc := DemoDocument(time.Now())
	err := doc.SetField("items.0.qty", "three")
	assert.ErrorIs(t, err, ErrNotNumeric)
	// The field keeps its previous value on a rejected edit.
	assert.Equal(t, "1", doc.Items[0].Qty.String())
}

func TestSetFieldDerivedFieldsAreReadOnly(t *testing.T) {
	doc := DemoDocument(time.Now())
	assert.ErrorIs(t, doc.SetField("totals.grand_total", 1), ErrReadOnlyField)
	assert.ErrorIs(t, doc.SetField("amount_in_words", "x"), ErrReadOnlyField)
	assert.ErrorIs(t, doc.SetField("tax_amount_in_words", "x"), ErrReadOnlyField)
}

func TestSetFieldUnknownPath(t *testing.T) {
	doc := DemoDocument(time.Now())
	assert.ErrorIs(t, doc.SetField("seller.phone", "x"), ErrUnknownFieldPath)
	assert.ErrorIs(t, doc.SetField("items.0.color", "x"), ErrUnknownFieldPath)
	assert.ErrorIs(t, doc.SetField("items.first.qty", 1), ErrUnknownFieldPath)
	assert.ErrorIs(t, doc.SetField("nope", "x"), ErrUnknownFieldPath)
}

func TestSetFieldIndexOutOfRange(t *testing.T) {
	doc := DemoDocument(time.Now())
	assert.ErrorIs(t, doc.SetField("items.99.qty", 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, doc.SetField("tax_rows.3.taxable", 1), ErrIndexOutOfRange)
}

func TestCloneIsDeep(t *testing.T) {
	doc := DemoDocument(time.Now())
	clone := doc.Clone()

	require.NoError(t, clone.SetField("items.0.particulars", "changed"))
	assert.NotEqual(t, doc.Items[0].Particulars, clone.Items[0].Particulars)

	require.NoError(t, clone.SetField("tax_rows.0.taxable", 1))
	assert.Equal(t, "80000", doc.TaxRows[0].Taxable.String())
}
