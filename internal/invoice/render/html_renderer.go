package render

import (
	"bytes"
	"html/template"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/dhrupad777/paperbrain/internal/invoice/format"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Tax Invoice {{.Invoice.No}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #111827;
      font-size: 12px;
      -webkit-font-smoothing: antialiased;
    }
    .page {
      width: 210mm;
      min-height: 297mm;
      margin: 0 auto;
      padding: 10mm;
      background: #ffffff;
    }
    .title { text-align: center; font-size: 16px; font-weight: 700; margin-bottom: 6px; }
    .header {
      display: flex;
      justify-content: space-between;
      border: 1px solid #111827;
      padding: 8px;
    }
    .logo-box {
      width: 120px;
      height: 60px;
      display: flex;
      align-items: center;
      justify-content: center;
    }
    .logo-missing {
      border: 1px dashed #9ca3af;
      color: #9ca3af;
      font-size: 10px;
      width: 100%;
      height: 100%;
      display: flex;
      align-items: center;
      justify-content: center;
    }
    .blocks { display: flex; border: 1px solid #111827; border-top: 0; }
    .block { flex: 1; padding: 8px; }
    .block + .block { border-left: 1px solid #111827; }
    .block-label { font-weight: 700; margin-bottom: 4px; }
    .meta-grid { display: flex; flex-wrap: wrap; border: 1px solid #111827; border-top: 0; }
    .meta-cell { width: 25%; padding: 6px 8px; border-top: 1px solid #e5e7eb; }
    .meta-label { color: #6b7280; font-size: 10px; text-transform: uppercase; }
    table { width: 100%; border-collapse: collapse; }
    .goods, .taxes { border: 1px solid #111827; border-top: 0; }
    .goods th, .goods td, .taxes th, .taxes td {
      border: 1px solid #374151;
      padding: 5px 6px;
      font-size: 11px;
    }
    .goods th, .taxes th { background: #f3f4f6; }
    .num { text-align: right; }
    .ctr { text-align: center; }
    .total-row td { font-weight: 700; }
    .words { border: 1px solid #111827; border-top: 0; padding: 8px; }
    .footer { display: flex; border: 1px solid #111827; border-top: 0; }
    .footer .block:last-child { text-align: right; }
    .sign { margin-top: 40px; font-weight: 600; }
    .remarks { color: #374151; font-size: 10px; padding: 6px 8px; }
    @page { size: A4; margin: 0; }
  </style>
</head>
<body>
  <div class="page">
    <div class="title">TAX INVOICE</div>

    <div class="header">
      <div>
        <div style="font-size:14px;font-weight:700;">{{.Seller.Name}}</div>
        <div>{{.Seller.Addr1}}</div>
        <div>{{.Seller.Addr2}}</div>
        {{if .Seller.GSTIN}}<div>GSTIN/UIN: {{.Seller.GSTIN}}</div>{{end}}
        {{if .Seller.PAN}}<div>PAN: {{.Seller.PAN}}</div>{{end}}
        {{if .Seller.StateName}}<div>State: {{.Seller.StateName}}{{if .Seller.StateCode}}, Code: {{.Seller.StateCode}}{{end}}</div>{{end}}
        {{if .Seller.Email}}<div>E-Mail: {{.Seller.Email}}</div>{{end}}
      </div>
      <div class="logo-box">
        {{if .Seller.LogoURL}}
          <img src="{{.Seller.LogoURL}}" alt="{{.Seller.Name}}" style="max-width:120px;max-height:60px;object-fit:contain;">
        {{else}}
          <div class="logo-missing">logo missing</div>
        {{end}}
      </div>
    </div>

    <div class="blocks">
      <div class="block">
        <div class="block-label">Buyer (Bill to)</div>
        <div style="font-weight:600;">{{.Buyer.Name}}</div>
        <div>{{.Buyer.Address}}</div>
        {{if .Buyer.GSTIN}}<div>GSTIN/UIN: {{.Buyer.GSTIN}}</div>{{end}}
        {{if .Buyer.StateName}}<div>State: {{.Buyer.StateName}}{{if .Buyer.StateCode}}, Code: {{.Buyer.StateCode}}{{end}}</div>{{end}}
      </div>
      <div class="block">
        <div class="block-label">Invoice Details</div>
        <div>Invoice No.: <strong>{{.Invoice.No}}</strong></div>
        <div>Dated: <strong>{{.Invoice.Date}}</strong></div>
        {{if .Invoice.PaymentTerms}}<div>Mode/Terms of Payment: {{.Invoice.PaymentTerms}}</div>{{end}}
        {{if .Invoice.SupplierRef}}<div>Supplier's Ref.: {{.Invoice.SupplierRef}}</div>{{end}}
        {{if .Invoice.OtherRef}}<div>Other Reference(s): {{.Invoice.OtherRef}}</div>{{end}}
      </div>
    </div>

    <div class="meta-grid">
      <div class="meta-cell"><div class="meta-label">Buyer's Order No.</div>{{.Invoice.OrderNo}}</div>
      <div class="meta-cell"><div class="meta-label">Order Date</div>{{.Invoice.OrderDate}}</div>
      <div class="meta-cell"><div class="meta-label">Dispatch Doc No.</div>{{.Invoice.DispatchDoc}}</div>
      <div class="meta-cell"><div class="meta-label">Delivery Note Date</div>{{.Invoice.DeliveryNoteDate}}</div>
      <div class="meta-cell"><div class="meta-label">Dispatched Through</div>{{.Invoice.DispatchThrough}}</div>
      <div class="meta-cell"><div class="meta-label">Destination</div>{{.Invoice.Destination}}</div>
      <div class="meta-cell"><div class="meta-label">Delivery Note</div>{{.Invoice.DeliveryNote}}</div>
      <div class="meta-cell"><div class="meta-label">Terms of Delivery</div>{{.Invoice.DeliveryTerms}}</div>
    </div>

    <table class="goods">
      <thead>
        <tr>
          <th style="width:5%;">Sl No.</th>
          <th>Particulars</th>
          <th style="width:10%;">HSN/SAC</th>
          <th style="width:8%;">Qty</th>
          <th style="width:12%;">Rate</th>
          <th style="width:14%;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Items}}
        <tr>
          <td class="ctr">{{inc $i}}</td>
          <td>{{$item.Particulars}}</td>
          <td class="ctr">{{$item.HSN}}</td>
          <td class="num">{{$item.Qty.String}}</td>
          <td class="num">{{fmt $item.Rate}}</td>
          <td class="num" style="font-weight:600;">{{fmt $item.Amount}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr>
          <td colspan="5" class="num">Subtotal</td>
          <td class="num">{{fmt .Totals.Subtotal}}</td>
        </tr>
        <tr>
          <td colspan="5" class="num">CGST</td>
          <td class="num">{{fmt .Totals.CGSTTotal}}</td>
        </tr>
        <tr>
          <td colspan="5" class="num">SGST</td>
          <td class="num">{{fmt .Totals.SGSTTotal}}</td>
        </tr>
        <tr class="total-row">
          <td colspan="5" class="num">Total</td>
          <td class="num">{{fmt .Totals.GrandTotal}}</td>
        </tr>
      </tfoot>
    </table>

    <div class="words">
      <div>Amount Chargeable (in words)</div>
      <div style="font-weight:700;">{{.AmountInWords}}</div>
    </div>

    <table class="taxes">
      <thead>
        <tr>
          <th rowspan="2">HSN/SAC</th>
          <th rowspan="2" style="width:18%;">Taxable Value</th>
          <th colspan="2" class="ctr">CGST</th>
          <th colspan="2" class="ctr">SGST</th>
        </tr>
        <tr>
          <th style="width:10%;">Rate</th>
          <th style="width:14%;">Amount</th>
          <th style="width:10%;">Rate</th>
          <th style="width:14%;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .TaxRows}}
        <tr>
          <td class="ctr">{{.HSN}}</td>
          <td class="num">{{fmt .Taxable}}</td>
          <td class="ctr">{{pct .CGSTRate}}</td>
          <td class="num">{{fmt .CGSTAmt}}</td>
          <td class="ctr">{{pct .SGSTRate}}</td>
          <td class="num">{{fmt .SGSTAmt}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr class="total-row">
          <td class="ctr">Total</td>
          <td class="num">{{fmt .Totals.TaxableTotal}}</td>
          <td></td>
          <td class="num">{{fmt .Totals.CGSTTotal}}</td>
          <td></td>
          <td class="num">{{fmt .Totals.SGSTTotal}}</td>
        </tr>
      </tfoot>
    </table>

    <div class="words">
      <div>Tax Amount (in words)</div>
      <div style="font-weight:700;">{{.TaxAmountInWords}}</div>
    </div>

    <div class="footer">
      <div class="block">
        <div class="block-label">Bank Details:</div>
        {{if .Bank.Name}}<div>Bank Name: {{.Bank.Name}}</div>{{end}}
        {{if .Bank.AcNo}}<div>A/c No.: {{.Bank.AcNo}}</div>{{end}}
        {{if .Bank.BranchIFSC}}<div>Branch &amp; IFSC: {{.Bank.BranchIFSC}}</div>{{end}}
        {{if .Bank.SWIFT}}<div>SWIFT: {{.Bank.SWIFT}}</div>{{end}}
      </div>
      <div class="block">
        <div>for <strong>{{.Seller.Name}}</strong></div>
        <div class="sign">Authorised Signatory</div>
      </div>
    </div>

    {{if .Remarks}}<div class="remarks">{{.Remarks}}</div>{{end}}
    <div class="remarks">E. &amp; O.E</div>
  </div>
</body>
</html>
`

// HTMLRenderer produces the printable A4 document for a possibly
// partially filled invoice. Missing optional fields render empty; a
// missing logo renders an explicit placeholder box.
type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"fmt": format.FormatCurrency,
		"pct": format.FormatPercent,
		"inc": func(i int) int { return i + 1 },
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(doc domain.InvoiceDocument) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
