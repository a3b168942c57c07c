package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/dhrupad777/paperbrain/internal/invoice/format"
)

type MarotoProvider struct{}

func New() Provider {
	return &MarotoProvider{}
}

// GenerateInvoice lays the document out on A4 pages: header and party
// blocks, the goods table with its totals footer, the amount in words,
// the HSN tax summary, and the bank/signature footer.
func (p *MarotoProvider) GenerateInvoice(ctx context.Context, doc domain.InvoiceDocument) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(30,
		col.New(7).Add(
			text.New(doc.Seller.Name, props.Text{Size: 12, Style: fontstyle.Bold}),
			text.New(doc.Seller.Addr1, props.Text{Top: 6, Size: 9}),
			text.New(doc.Seller.Addr2, props.Text{Top: 10, Size: 9}),
			text.New(labelled("GSTIN/UIN: ", doc.Seller.GSTIN), props.Text{Top: 14, Size: 9}),
			text.New(labelled("E-Mail: ", doc.Seller.Email), props.Text{Top: 18, Size: 9}),
		),
		col.New(5).Add(
			text.New("Invoice No.: "+doc.Invoice.No, props.Text{Size: 9, Align: align.Right}),
			text.New("Dated: "+doc.Invoice.Date, props.Text{Top: 4, Size: 9, Align: align.Right}),
			text.New(labelled("Buyer's Order No.: ", doc.Invoice.OrderNo), props.Text{Top: 8, Size: 9, Align: align.Right}),
			text.New(labelled("Dispatched Through: ", doc.Invoice.DispatchThrough), props.Text{Top: 12, Size: 9, Align: align.Right}),
			text.New(labelled("Destination: ", doc.Invoice.Destination), props.Text{Top: 16, Size: 9, Align: align.Right}),
		),
	)

	m.AddRow(25,
		col.New(12).Add(
			text.New("Buyer (Bill to)", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(doc.Buyer.Name, props.Text{Top: 4, Size: 10, Style: fontstyle.Bold}),
			text.New(doc.Buyer.Address, props.Text{Top: 9, Size: 9}),
			text.New(labelled("GSTIN/UIN: ", doc.Buyer.GSTIN), props.Text{Top: 13, Size: 9}),
		),
	)

	m.AddRow(8,
		text.NewCol(1, "Sl No.", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(4, "Particulars", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(2, "HSN/SAC", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
	)

	for i, item := range doc.Items {
		m.AddRow(8,
			text.NewCol(1, fmt.Sprintf("%d", i+1), props.Text{Size: 8}),
			text.NewCol(4, item.Particulars, props.Text{Size: 8}),
			text.NewCol(2, item.HSN, props.Text{Size: 8, Align: align.Center}),
			text.NewCol(1, item.Qty.String(), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, format.FormatCurrency(item.Rate), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, format.FormatCurrency(item.Amount), props.Text{Size: 8, Align: align.Right}),
		)
	}

	for _, row := range []struct {
		label string
		value domain.Numeric
		bold  bool
	}{
		{"Subtotal", doc.Totals.Subtotal, false},
		{"CGST", doc.Totals.CGSTTotal, false},
		{"SGST", doc.Totals.SGSTTotal, false},
		{"Total", doc.Totals.GrandTotal, true},
	} {
		style := props.Text{Size: 9, Align: align.Right}
		if row.bold {
			style.Style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(8),
			text.NewCol(2, row.label, style),
			text.NewCol(2, format.FormatCurrency(row.value), style),
		)
	}

	m.AddRow(12,
		col.New(12).Add(
			text.New("Amount Chargeable (in words)", props.Text{Size: 8}),
			text.New(doc.AmountInWords, props.Text{Top: 4, Size: 9, Style: fontstyle.Bold}),
		),
	)

	m.AddRow(8,
		text.NewCol(2, "HSN/SAC", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(2, "Taxable Value", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "CGST Rate", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center}),
		text.NewCol(2, "CGST Amt", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "SGST Rate", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center}),
		text.NewCol(2, "SGST Amt", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
	)

	for _, row := range doc.TaxRows {
		m.AddRow(7,
			text.NewCol(2, row.HSN, props.Text{Size: 8}),
			text.NewCol(2, format.FormatCurrency(row.Taxable), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, format.FormatPercent(row.CGSTRate), props.Text{Size: 8, Align: align.Center}),
			text.NewCol(2, format.FormatCurrency(row.CGSTAmt), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, format.FormatPercent(row.SGSTRate), props.Text{Size: 8, Align: align.Center}),
			text.NewCol(2, format.FormatCurrency(row.SGSTAmt), props.Text{Size: 8, Align: align.Right}),
		)
	}

	m.AddRow(7,
		text.NewCol(2, "Total", props.Text{Size: 8, Style: fontstyle.Bold}),
		text.NewCol(2, format.FormatCurrency(doc.Totals.TaxableTotal), props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		col.New(2),
		text.NewCol(2, format.FormatCurrency(doc.Totals.CGSTTotal), props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		col.New(2),
		text.NewCol(2, format.FormatCurrency(doc.Totals.SGSTTotal), props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	)

	m.AddRow(12,
		col.New(12).Add(
			text.New("Tax Amount (in words)", props.Text{Size: 8}),
			text.New(doc.TaxAmountInWords, props.Text{Top: 4, Size: 9, Style: fontstyle.Bold}),
		),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New("Bank Details:", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(labelled("Bank Name: ", doc.Bank.Name), props.Text{Top: 5, Size: 9}),
			text.New(labelled("A/c No.: ", doc.Bank.AcNo), props.Text{Top: 9, Size: 9}),
			text.New(labelled("Branch & IFSC: ", doc.Bank.BranchIFSC), props.Text{Top: 13, Size: 9}),
		),
		col.New(6).Add(
			text.New("for "+doc.Seller.Name, props.Text{Size: 9, Align: align.Right}),
			text.New("Authorised Signatory", props.Text{Top: 18, Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		),
	)

	if doc.Remarks != "" {
		m.AddRow(10,
			text.NewCol(12, doc.Remarks, props.Text{Size: 7}),
		)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(generated.GetBytes()), nil
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}
