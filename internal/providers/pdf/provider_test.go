package pdf

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
)

func TestFilename(t *testing.T) {
	doc := domain.DemoDocument(time.Now())
	assert.Equal(t, "TI-2024-001.pdf", Filename(doc))

	doc.Invoice.No = "  "
	assert.Equal(t, "invoice.pdf", Filename(doc))

	doc.Invoice.No = ""
	assert.Equal(t, "invoice.pdf", Filename(doc))
}

func TestGenerateInvoice(t *testing.T) {
	doc := domain.DemoDocument(time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC))

	reader, err := New().GenerateInvoice(context.Background(), doc)
	require.NoError(t, err)

	payload, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestGenerateInvoicePartialDocument(t *testing.T) {
	doc := domain.InvoiceDocument{
		Seller: domain.Seller{Name: "Solo Seller"},
		Items:  []domain.LineItem{{Particulars: "Widget"}},
	}

	reader, err := New().GenerateInvoice(context.Background(), doc)
	require.NoError(t, err)

	payload, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}
