package render

import "github.com/dhrupad777/paperbrain/internal/invoice/domain"

// Renderer turns an invoice document into its printable representation.
type Renderer interface {
	RenderHTML(doc domain.InvoiceDocument) (string, error)
}
