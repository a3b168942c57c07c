package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dhrupad777/paperbrain/internal/clock"
	"github.com/dhrupad777/paperbrain/internal/config"
	"github.com/dhrupad777/paperbrain/internal/draft"
	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/dhrupad777/paperbrain/internal/invoice/engine"
	"github.com/dhrupad777/paperbrain/internal/invoice/narration"
	"github.com/dhrupad777/paperbrain/internal/invoice/words"
)

func newTestSession(t *testing.T, store draft.Store) *Session {
	t.Helper()
	logger := zap.NewNop()
	s := New(
		store,
		engine.New(words.Convert),
		narration.New(narration.LocalConverter{}, logger),
		config.NewStaticInvoiceDefaults(config.DefaultInvoiceDefaults()),
		clock.NewFakeClock(time.Date(2024, 7, 31, 12, 0, 0, 0, time.UTC)),
		logger,
	)
	require.NoError(t, s.Start(context.Background()))
	return s
}

func TestStartFallsBackToDemoTemplate(t *testing.T) {
	s := newTestSession(t, draft.NewMemoryStore())
	doc := s.Document()
	assert.Equal(t, "Tech Innovations Pvt. Ltd.", doc.Seller.Name)
	assert.Equal(t, "31-Jul-24", doc.Invoice.Date)
	assert.Equal(t, "26-Jul-24", doc.Invoice.OrderDate)
	assert.Equal(t, "129800", doc.Totals.GrandTotal.String())
}

func TestStartRestoresSavedDraft(t *testing.T) {
	store := draft.NewMemoryStore()

	first := newTestSession(t, store)
	_, err := first.OnFieldChange(context.Background(), "buyer.name", "Restored Buyer")
	require.NoError(t, err)

	second := newTestSession(t, store)
	assert.Equal(t, "Restored Buyer", second.Document().Buyer.Name)
}

func TestStartFallsBackOnCorruptDraft(t *testing.T) {
	store := draft.NewMemoryStore()
	store.Corrupt()

	s := newTestSession(t, store)
	assert.Equal(t, "Tech Innovations Pvt. Ltd.", s.Document().Seller.Name)
}

func TestOnFieldChangeTriggersRecalculation(t *testing.T) {
	s := newTestSession(t, draft.NewMemoryStore())

	doc, err := s.OnFieldChange(context.Background(), "items.0.qty", 2)
	require.NoError(t, err)

	// 2 x 80000 replaces the original 80000 line amount.
	assert.Equal(t, "160000", doc.Items[0].Amount.String())
	assert.Equal(t, "190000", doc.Totals.Subtotal.String())
	assert.Equal(t, "209800", doc.Totals.GrandTotal.String())

	s.WaitNarration()
	assert.Equal(t, "Two Lakh Nine Thousand Eight Hundred Rupees Only", s.Document().AmountInWords)
}

func TestOnFieldChangeUntrackedPathSkipsRecalculation(t *testing.T) {
	s := newTestSession(t, draft.NewMemoryStore())

	doc, err := s.OnFieldChange(context.Background(), "seller.name", "Renamed")
	require.NoError(t, err)

	assert.Equal(t, "Renamed", doc.Seller.Name)
	// Narration was never re-requested, so the template legend stands.
	assert.Equal(t, "One Lakh Twenty-Nine Thousand Eight Hundred Rupees Only", doc.AmountInWords)
}

func TestOnFieldChangeRejectedEditLeavesStateAlone(t *testing.T) {
	store := draft.NewMemoryStore()
	s := newTestSession(t, store)

	_, err := s.OnFieldChange(context.Background(), "items.0.qty", "lots")
	assert.ErrorIs(t, err, domain.ErrNotNumeric)
	assert.Equal(t, "1", s.Document().Items[0].Qty.String())

	_, err = s.OnFieldChange(context.Background(), "totals.grand_total", 1)
	assert.ErrorIs(t, err, domain.ErrReadOnlyField)
}

func TestOnFieldChangeAutosaves(t *testing.T) {
	store := draft.NewMemoryStore()
	s := newTestSession(t, store)

	_, err := s.OnFieldChange(context.Background(), "remarks", "saved")
	require.NoError(t, err)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "saved", saved.Remarks)
}

func TestAddAndRemoveItem(t *testing.T) {
	s := newTestSession(t, draft.NewMemoryStore())

	doc := s.AddItem(context.Background())
	require.Len(t, doc.Items, 4)
	added := doc.Items[3]
	assert.Equal(t, "1", added.Qty.String())
	assert.False(t, added.Rate.IsSet())
	assert.False(t, added.Amount.IsSet())
	// A blank row contributes nothing to the totals.
	assert.Equal(t, "110000", doc.Totals.Subtotal.String())

	doc, err := s.RemoveItem(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, doc.Items, 3)

	_, err = s.RemoveItem(context.Background(), 99)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAddTaxRowPresetsConfiguredRate(t *testing.T) {
	s := newTestSession(t, draft.NewMemoryStore())

	doc := s.AddTaxRow(context.Background())
	require.Len(t, doc.TaxRows, 4)
	added := doc.TaxRows[3]
	assert.Equal(t, "9", added.CGSTRate.String())
	assert.Equal(t, "9", added.SGSTRate.String())
	assert.False(t, added.Taxable.IsSet())

	doc, err := s.RemoveTaxRow(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, doc.TaxRows, 3)

	_, err = s.RemoveTaxRow(context.Background(), -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMintInvoiceNumber(t *testing.T) {
	store := draft.NewMemoryStore()
	s := newTestSession(t, store)

	doc, err := s.MintInvoiceNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INV-20240731-000001", doc.Invoice.No)

	doc, err = s.MintInvoiceNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INV-20240731-000002", doc.Invoice.No)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INV-20240731-000002", saved.Invoice.No)
}

func TestResetDiscardsDraft(t *testing.T) {
	store := draft.NewMemoryStore()
	s := newTestSession(t, store)

	_, err := s.OnFieldChange(context.Background(), "buyer.name", "Someone Else")
	require.NoError(t, err)

	doc := s.Reset(context.Background())
	assert.Equal(t, "Creative Solutions LLP", doc.Buyer.Name)

	// The reset state is itself checkpointed.
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Creative Solutions LLP", saved.Buyer.Name)
}

func TestNarrationLandsInDraft(t *testing.T) {
	store := draft.NewMemoryStore()
	s := newTestSession(t, store)

	_, err := s.OnFieldChange(context.Background(), "items.0.rate", 100000)
	require.NoError(t, err)
	s.WaitNarration()

	assert.Equal(t, "One Lakh Forty-Nine Thousand Eight Hundred Rupees Only", s.Document().AmountInWords)

	// The next checkpoint persists the narrated legend with the draft.
	_, err = s.OnFieldChange(context.Background(), "remarks", "done")
	require.NoError(t, err)
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "One Lakh Forty-Nine Thousand Eight Hundred Rupees Only", saved.AmountInWords)
}
