// Package session owns the single editable invoice document: it applies
// field edits, keeps the draft store checkpointed on every change, and
// runs recalculation when a watched path mutates. Numeric totals update
// synchronously; narration follows asynchronously.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dhrupad777/paperbrain/internal/clock"
	"github.com/dhrupad777/paperbrain/internal/config"
	"github.com/dhrupad777/paperbrain/internal/draft"
	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/dhrupad777/paperbrain/internal/invoice/engine"
	"github.com/dhrupad777/paperbrain/internal/invoice/format"
	"github.com/dhrupad777/paperbrain/internal/invoice/narration"
	"go.uber.org/zap"
)

var ErrIndexOutOfRange = domain.ErrIndexOutOfRange

type Session struct {
	store    draft.Store
	eng      *engine.Engine
	narrator *narration.Narrator
	defaults *config.InvoiceDefaultsHolder
	clk      clock.Clock
	logger   *zap.Logger

	// Per-process sequence for minted invoice numbers.
	numberSeq atomic.Int64

	// Guards doc against the narration callback; there is exactly one
	// editor otherwise.
	mu  sync.Mutex
	doc domain.InvoiceDocument
}

func New(store draft.Store, eng *engine.Engine, narrator *narration.Narrator, defaults *config.InvoiceDefaultsHolder, clk clock.Clock, logger *zap.Logger) *Session {
	return &Session{
		store:    store,
		eng:      eng,
		narrator: narrator,
		defaults: defaults,
		clk:      clk,
		logger:   logger,
	}
}

// Start restores the saved draft, or falls back to the demo template when
// none exists or the stored draft is unreadable.
func (s *Session) Start(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.logger.Info("draft loaded")
	case errors.Is(err, draft.ErrNoDraft):
		doc = domain.DemoDocument(s.clk.Now())
	case errors.Is(err, draft.ErrCorruptDraft):
		s.logger.Warn("saved draft unreadable, falling back to template", zap.Error(err))
		doc = domain.DemoDocument(s.clk.Now())
	default:
		s.logger.Error("draft store unavailable, starting from template", zap.Error(err))
		doc = domain.DemoDocument(s.clk.Now())
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Document returns a detached snapshot of the current state.
func (s *Session) Document() domain.InvoiceDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// OnFieldChange applies one edit at a dot path. Edits under the declared
// trigger prefixes recalculate totals before the new state is published
// and checkpointed; narration resolves afterwards, last write wins.
func (s *Session) OnFieldChange(ctx context.Context, path string, value any) (domain.InvoiceDocument, error) {
	s.mu.Lock()
	doc := s.doc.Clone()
	if err := doc.SetField(path, value); err != nil {
		s.mu.Unlock()
		return domain.InvoiceDocument{}, err
	}

	recalc := engine.ShouldRecalculate(path)
	if recalc {
		doc = s.eng.RecalculateNumerics(doc)
	}
	s.doc = doc
	snapshot := doc.Clone()
	s.mu.Unlock()

	if recalc {
		s.narrate(ctx, snapshot)
	}
	s.checkpoint(ctx, snapshot)
	return snapshot, nil
}

// AddItem appends a fresh goods row (qty preset to 1, the rest blank).
func (s *Session) AddItem(ctx context.Context) domain.InvoiceDocument {
	return s.mutateRows(ctx, func(doc *domain.InvoiceDocument) {
		doc.Items = append(doc.Items, domain.LineItem{Qty: domain.NumericFromInt(1)})
	})
}

// RemoveItem deletes the goods row at index.
func (s *Session) RemoveItem(ctx context.Context, index int) (domain.InvoiceDocument, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.doc.Items) {
		s.mu.Unlock()
		return domain.InvoiceDocument{}, ErrIndexOutOfRange
	}
	s.mu.Unlock()
	return s.mutateRows(ctx, func(doc *domain.InvoiceDocument) {
		doc.Items = append(doc.Items[:index], doc.Items[index+1:]...)
	}), nil
}

// AddTaxRow appends a tax row preset with the configured GST split rate.
func (s *Session) AddTaxRow(ctx context.Context) domain.InvoiceDocument {
	rate := s.defaults.Get().DefaultGSTRate
	return s.mutateRows(ctx, func(doc *domain.InvoiceDocument) {
		doc.TaxRows = append(doc.TaxRows, domain.TaxRow{
			CGSTRate: domain.NumericFromFloat(rate),
			SGSTRate: domain.NumericFromFloat(rate),
		})
	})
}

// RemoveTaxRow deletes the tax row at index.
func (s *Session) RemoveTaxRow(ctx context.Context, index int) (domain.InvoiceDocument, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.doc.TaxRows) {
		s.mu.Unlock()
		return domain.InvoiceDocument{}, ErrIndexOutOfRange
	}
	s.mu.Unlock()
	return s.mutateRows(ctx, func(doc *domain.InvoiceDocument) {
		doc.TaxRows = append(doc.TaxRows[:index], doc.TaxRows[index+1:]...)
	}), nil
}

// MintInvoiceNumber stamps a fresh number onto the document from the
// configured template. The sequence restarts with the process; template
// date tokens keep minted numbers unique across days.
func (s *Session) MintInvoiceNumber(ctx context.Context) (domain.InvoiceDocument, error) {
	number, err := format.FormatInvoiceNumber(
		s.defaults.Get().NumberTemplate,
		s.clk.Now(),
		s.numberSeq.Add(1),
	)
	if err != nil {
		return domain.InvoiceDocument{}, err
	}

	s.mu.Lock()
	s.doc.Invoice.No = number
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.checkpoint(ctx, snapshot)
	return snapshot, nil
}

// Reset discards the draft and returns to the demo template. Callers are
// responsible for confirming the discard with the user first.
func (s *Session) Reset(ctx context.Context) domain.InvoiceDocument {
	doc := domain.DemoDocument(s.clk.Now())

	s.mu.Lock()
	s.doc = doc
	snapshot := doc.Clone()
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("draft clear failed", zap.Error(err))
	}
	s.checkpoint(ctx, snapshot)
	return snapshot
}

func (s *Session) mutateRows(ctx context.Context, mutate func(*domain.InvoiceDocument)) domain.InvoiceDocument {
	s.mu.Lock()
	doc := s.doc.Clone()
	mutate(&doc)
	doc = s.eng.RecalculateNumerics(doc)
	s.doc = doc
	snapshot := doc.Clone()
	s.mu.Unlock()

	s.narrate(ctx, snapshot)
	s.checkpoint(ctx, snapshot)
	return snapshot
}

func (s *Session) narrate(ctx context.Context, doc domain.InvoiceDocument) {
	s.narrator.Narrate(
		context.WithoutCancel(ctx),
		doc.Totals.GrandTotal.Decimal(),
		doc.Totals.TaxTotal.Decimal(),
		s.applyNarration,
	)
}

func (s *Session) applyNarration(amountInWords, taxAmountInWords string) {
	s.mu.Lock()
	s.doc.AmountInWords = amountInWords
	s.doc.TaxAmountInWords = taxAmountInWords
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.checkpoint(context.Background(), snapshot)
}

// WaitNarration blocks until pending narration settles. Export uses it
// so the rendered document never ships a stale legend.
func (s *Session) WaitNarration() {
	s.narrator.Wait()
}

func (s *Session) checkpoint(ctx context.Context, doc domain.InvoiceDocument) {
	if err := s.store.Save(ctx, doc); err != nil {
		s.logger.Error("draft autosave failed", zap.Error(err))
	}
}
