// Package domain contains the invoice document model and its validation
// rules. The document is a single in-memory aggregate owned by the editing
// session; everything under Totals plus the two words fields is derived,
// never authored directly.
package domain

// Seller identifies the issuing party.
type Seller struct {
	Name      string `json:"name"`
	NameShort string `json:"name_short,omitempty"`
	Addr1     string `json:"addr1,omitempty"`
	Addr2     string `json:"addr2,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
	StateName string `json:"state_name,omitempty"`
	StateCode string `json:"state_code,omitempty"`
	Email     string `json:"email,omitempty"`
	PAN       string `json:"pan,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

// Buyer identifies the billed party.
type Buyer struct {
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
	StateName string `json:"state_name,omitempty"`
	StateCode string `json:"state_code,omitempty"`
}

// InvoiceMeta holds document identity and logistics fields.
type InvoiceMeta struct {
	No               string `json:"no"`
	Date             string `json:"date"`
	DeliveryNote     string `json:"delivery_note,omitempty"`
	PaymentTerms     string `json:"payment_terms,omitempty"`
	SupplierRef      string `json:"supplier_ref,omitempty"`
	OtherRef         string `json:"other_ref,omitempty"`
	OrderNo          string `json:"order_no,omitempty"`
	OrderDate        string `json:"order_date,omitempty"`
	DispatchDoc      string `json:"dispatch_doc,omitempty"`
	DeliveryNoteDate string `json:"delivery_note_date,omitempty"`
	DispatchThrough  string `json:"dispatch_through,omitempty"`
	Destination      string `json:"destination,omitempty"`
	DeliveryTerms    string `json:"delivery_terms,omitempty"`
}

// LineItem is one row of the goods table.
type LineItem struct {
	Particulars string  `json:"particulars"`
	HSN         string  `json:"hsn,omitempty"`
	Qty         Numeric `json:"qty"`
	Rate        Numeric `json:"rate"`
	Amount      Numeric `json:"amount"`
}

// TaxRow is one row of the HSN tax summary.
type TaxRow struct {
	HSN      string  `json:"hsn,omitempty"`
	Taxable  Numeric `json:"taxable"`
	CGSTRate Numeric `json:"cgst_rate"`
	CGSTAmt  Numeric `json:"cgst_amt"`
	SGSTRate Numeric `json:"sgst_rate"`
	SGSTAmt  Numeric `json:"sgst_amt"`
}

// Totals is the derived aggregate block. Every field is a computed
// projection of items and tax rows.
type Totals struct {
	Subtotal     Numeric `json:"subtotal"`
	TaxableTotal Numeric `json:"taxable_total"`
	CGSTTotal    Numeric `json:"cgst_total"`
	SGSTTotal    Numeric `json:"sgst_total"`
	TaxTotal     Numeric `json:"tax_total"`
	GrandTotal   Numeric `json:"grand_total"`
}

// BankDetails carries payment instructions for the footer.
type BankDetails struct {
	Name       string `json:"name,omitempty"`
	AcNo       string `json:"acno,omitempty"`
	BranchIFSC string `json:"branch_ifsc,omitempty"`
	SWIFT      string `json:"swift,omitempty"`
}

// InvoiceDocument is the root aggregate.
type InvoiceDocument struct {
	Seller           Seller      `json:"seller"`
	Buyer            Buyer       `json:"buyer"`
	Invoice          InvoiceMeta `json:"invoice"`
	Items            []LineItem  `json:"items"`
	Totals           Totals      `json:"totals"`
	TaxRows          []TaxRow    `json:"tax_rows"`
	AmountInWords    string      `json:"amount_in_words"`
	TaxAmountInWords string      `json:"tax_amount_in_words"`
	Remarks          string      `json:"remarks,omitempty"`
	Bank             BankDetails `json:"bank"`
}

// Clone returns a deep copy, detaching the item and tax row slices.
func (d InvoiceDocument) Clone() InvoiceDocument {
	out := d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	out.TaxRows = make([]TaxRow, len(d.TaxRows))
	copy(out.TaxRows, d.TaxRows)
	return out
}
