// Package engine derives the totals block and the words narration from
// line items and tax rows. Recalculation is a pure transform: it never
// mutates its input and is idempotent over unchanged documents.
package engine

import (
	"strings"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

// TriggerPrefixes is the declared set of field-path prefixes whose
// mutation requires a recalculation.
var TriggerPrefixes = []string{"items", "tax_rows"}

// ShouldRecalculate reports whether an edit at path invalidates totals.
func ShouldRecalculate(path string) bool {
	for _, prefix := range TriggerPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Engine recomputes derived document state. The converter narrates
// amounts to words; it must be pure for Recalculate to stay idempotent.
type Engine struct {
	convert func(decimal.Decimal) string
}

func New(convert func(decimal.Decimal) string) *Engine {
	return &Engine{convert: convert}
}

// Recalculate derives line amounts, tax amounts, the totals block and
// both narration fields.
func (e *Engine) Recalculate(doc domain.InvoiceDocument) domain.InvoiceDocument {
	out := e.RecalculateNumerics(doc)
	out.AmountInWords = e.convert(out.Totals.GrandTotal.Decimal())
	out.TaxAmountInWords = e.convert(out.Totals.TaxTotal.Decimal())
	return out
}

// RecalculateNumerics derives everything except the narration fields.
// The session uses it when narration resolves asynchronously: totals are
// published synchronously, words follow once the conversion lands.
func (e *Engine) RecalculateNumerics(doc domain.InvoiceDocument) domain.InvoiceDocument {
	out := doc.Clone()

	for i := range out.Items {
		item := &out.Items[i]
		// Amount stays independently editable until both factors are set.
		if item.Qty.IsSet() && item.Rate.IsSet() {
			item.Amount = domain.NumericFrom(item.Qty.Decimal().Mul(item.Rate.Decimal()))
		}
	}

	hundred := decimal.NewFromInt(100)
	for i := range out.TaxRows {
		row := &out.TaxRows[i]
		if row.Taxable.IsSet() && row.CGSTRate.IsSet() {
			row.CGSTAmt = domain.NumericFrom(row.Taxable.Decimal().Mul(row.CGSTRate.Decimal()).Div(hundred))
		}
		if row.Taxable.IsSet() && row.SGSTRate.IsSet() {
			row.SGSTAmt = domain.NumericFrom(row.Taxable.Decimal().Mul(row.SGSTRate.Decimal()).Div(hundred))
		}
	}

	subtotal := decimal.Zero
	for _, item := range out.Items {
		subtotal = subtotal.Add(item.Amount.Decimal())
	}
	taxableTotal := decimal.Zero
	cgstTotal := decimal.Zero
	sgstTotal := decimal.Zero
	for _, row := range out.TaxRows {
		taxableTotal = taxableTotal.Add(row.Taxable.Decimal())
		cgstTotal = cgstTotal.Add(row.CGSTAmt.Decimal())
		sgstTotal = sgstTotal.Add(row.SGSTAmt.Decimal())
	}
	taxTotal := cgstTotal.Add(sgstTotal)

	out.Totals = domain.Totals{
		Subtotal:     domain.NumericFrom(subtotal),
		TaxableTotal: domain.NumericFrom(taxableTotal),
		CGSTTotal:    domain.NumericFrom(cgstTotal),
		SGSTTotal:    domain.NumericFrom(sgstTotal),
		TaxTotal:     domain.NumericFrom(taxTotal),
		GrandTotal:   domain.NumericFrom(subtotal.Add(taxTotal)),
	}
	return out
}
