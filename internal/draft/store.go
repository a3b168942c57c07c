// Package draft persists the work-in-progress invoice document. The
// store is an explicit port so the editing session can be tested with an
// in-memory fake.
package draft

import (
	"context"
	"errors"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
)

// DraftKey is the fixed key the single draft lives under.
const DraftKey = "pb.invoice.draft"

// ErrNoDraft is returned by Load when nothing was saved yet.
var ErrNoDraft = errors.New("no_draft")

// ErrCorruptDraft is returned by Load when the stored payload does not
// parse. The store clears itself before returning it; callers fall back
// to the demo template.
var ErrCorruptDraft = errors.New("corrupt_draft")

// Store checkpoints the full document on every change and restores it at
// session start.
type Store interface {
	Load(ctx context.Context) (domain.InvoiceDocument, error)
	Save(ctx context.Context, doc domain.InvoiceDocument) error
	Clear(ctx context.Context) error
}
