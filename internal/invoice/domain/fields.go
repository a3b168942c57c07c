package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SetField applies a single form edit at a dot path such as "seller.name",
// "items.2.qty" or "tax_rows.0.cgst_rate". Derived paths (totals.* and the
// two words fields) are read-only. Numeric fields accept a number or an
// explicit blank; any other string fails at this boundary.
func (d *InvoiceDocument) SetField(path string, value any) error {
	segments := strings.Split(path, ".")
	if len(segments) == 0 || segments[0] == "" {
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}

	switch segments[0] {
	case "totals", "amount_in_words", "tax_amount_in_words":
		return fmt.Errorf("%w: %q", ErrReadOnlyField, path)
	case "seller":
		return setStringField(d.sellerField(segments), path, value)
	case "buyer":
		return setStringField(d.buyerField(segments), path, value)
	case "invoice":
		return setStringField(d.invoiceField(segments), path, value)
	case "bank":
		return setStringField(d.bankField(segments), path, value)
	case "remarks":
		if len(segments) != 1 {
			return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
		}
		return setStringField(&d.Remarks, path, value)
	case "items":
		return d.setItemField(segments, path, value)
	case "tax_rows":
		return d.setTaxRowField(segments, path, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
}

func (d *InvoiceDocument) sellerField(segments []string) *string {
	if len(segments) != 2 {
		return nil
	}
	switch segments[1] {
	case "name":
		return &d.Seller.Name
	case "name_short":
		return &d.Seller.NameShort
	case "addr1":
		return &d.Seller.Addr1
	case "addr2":
		return &d.Seller.Addr2
	case "gstin":
		return &d.Seller.GSTIN
	case "state_name":
		return &d.Seller.StateName
	case "state_code":
		return &d.Seller.StateCode
	case "email":
		return &d.Seller.Email
	case "pan":
		return &d.Seller.PAN
	case "logoUrl":
		return &d.Seller.LogoURL
	}
	return nil
}

func (d *InvoiceDocument) buyerField(segments []string) *string {
	if len(segments) != 2 {
		return nil
	}
	switch segments[1] {
	case "name":
		return &d.Buyer.Name
	case "address":
		return &d.Buyer.Address
	case "gstin":
		return &d.Buyer.GSTIN
	case "state_name":
		return &d.Buyer.StateName
	case "state_code":
		return &d.Buyer.StateCode
	}
	return nil
}

func (d *InvoiceDocument) invoiceField(segments []string) *string {
	if len(segments) != 2 {
		return nil
	}
	switch segments[1] {
	case "no":
		return &d.Invoice.No
	case "date":
		return &d.Invoice.Date
	case "delivery_note":
		return &d.Invoice.DeliveryNote
	case "payment_terms":
		return &d.Invoice.PaymentTerms
	case "supplier_ref":
		return &d.Invoice.SupplierRef
	case "other_ref":
		return &d.Invoice.OtherRef
	case "order_no":
		return &d.Invoice.OrderNo
	case "order_date":
		return &d.Invoice.OrderDate
	case "dispatch_doc":
		return &d.Invoice.DispatchDoc
	case "delivery_note_date":
		return &d.Invoice.DeliveryNoteDate
	case "dispatch_through":
		return &d.Invoice.DispatchThrough
	case "destination":
		return &d.Invoice.Destination
	case "delivery_terms":
		return &d.Invoice.DeliveryTerms
	}
	return nil
}

func (d *InvoiceDocument) bankField(segments []string) *string {
	if len(segments) != 2 {
		return nil
	}
	switch segments[1] {
	case "name":
		return &d.Bank.Name
	case "acno":
		return &d.Bank.AcNo
	case "branch_ifsc":
		return &d.Bank.BranchIFSC
	case "swift":
		return &d.Bank.SWIFT
	}
	return nil
}

func (d *InvoiceDocument) setItemField(segments []string, path string, value any) error {
	if len(segments) != 3 {
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
	index, err := strconv.Atoi(segments[1])
	if err != nil || index < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
	if index >= len(d.Items) {
		return fmt.Errorf("%w: %q", ErrIndexOutOfRange, path)
	}

	item := &d.Items[index]
	switch segments[2] {
	case "particulars":
		return setStringField(&item.Particulars, path, value)
	case "hsn":
		return setStringField(&item.HSN, path, value)
	case "qty":
		return setNumericField(&item.Qty, value)
	case "rate":
		return setNumericField(&item.Rate, value)
	case "amount":
		return setNumericField(&item.Amount, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
}

func (d *InvoiceDocument) setTaxRowField(segments []string, path string, value any) error {
	if len(segments) != 3 {
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
	index, err := strconv.Atoi(segments[1])
	if err != nil || index < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
	if index >= len(d.TaxRows) {
		return fmt.Errorf("%w: %q", ErrIndexOutOfRange, path)
	}

	row := &d.TaxRows[index]
	switch segments[2] {
	case "hsn":
		return setStringField(&row.HSN, path, value)
	case "taxable":
		return setNumericField(&row.Taxable, value)
	case "cgst_rate":
		return setNumericField(&row.CGSTRate, value)
	case "cgst_amt":
		return setNumericField(&row.CGSTAmt, value)
	case "sgst_rate":
		return setNumericField(&row.SGSTRate, value)
	case "sgst_amt":
		return setNumericField(&row.SGSTAmt, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
}

func setStringField(target *string, path string, value any) error {
	if target == nil {
		return fmt.Errorf("%w: %q", ErrUnknownFieldPath, path)
	}
	switch v := value.(type) {
	case nil:
		*target = ""
		return nil
	case string:
		*target = v
		return nil
	default:
		return fmt.Errorf("%w: expected string at %q, got %T", ErrUnknownFieldPath, path, value)
	}
}

func setNumericField(target *Numeric, value any) error {
	parsed, err := ParseNumeric(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}
