package domain

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New()

// Validate checks the authorable fields of the document. It returns nil
// when the document is exportable, otherwise a *ValidationErrors with one
// entry per offending field. Export and print are blocked until it passes.
func (d InvoiceDocument) Validate() error {
	verr := &ValidationErrors{}

	if strings.TrimSpace(d.Seller.Name) == "" {
		verr.Add("seller.name", "required", "seller name is required")
	}
	if d.Seller.Email != "" {
		if err := fieldValidator.Var(d.Seller.Email, "email"); err != nil {
			verr.Add("seller.email", "invalid_email", "invalid email address")
		}
	}
	if d.Seller.LogoURL != "" {
		if err := fieldValidator.Var(d.Seller.LogoURL, "url"); err != nil {
			verr.Add("seller.logoUrl", "invalid_url", "invalid logo URL")
		}
	}

	if strings.TrimSpace(d.Buyer.Name) == "" {
		verr.Add("buyer.name", "required", "buyer name is required")
	}

	if strings.TrimSpace(d.Invoice.No) == "" {
		verr.Add("invoice.no", "required", "invoice number is required")
	}
	if strings.TrimSpace(d.Invoice.Date) == "" {
		verr.Add("invoice.date", "required", "invoice date is required")
	}

	for i, item := range d.Items {
		if strings.TrimSpace(item.Particulars) == "" {
			verr.Add(itemField(i, "particulars"), "required", "particulars are required")
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func itemField(index int, name string) string {
	return "items." + strconv.Itoa(index) + "." + name
}
