// Package pdf snapshots a recalculated invoice document into a single
// paginated A4 file.
package pdf

import (
	"context"
	"io"
	"strings"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"go.uber.org/fx"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, doc domain.InvoiceDocument) (io.Reader, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)

// Filename names the export artifact after the invoice number, falling
// back to the literal "invoice" when the number is blank.
func Filename(doc domain.InvoiceDocument) string {
	number := strings.TrimSpace(doc.Invoice.No)
	if number == "" {
		return "invoice.pdf"
	}
	return number + ".pdf"
}
