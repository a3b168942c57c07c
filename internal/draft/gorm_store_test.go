package draft

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
)

func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewGormStore(db)
	require.NoError(t, err)
	return store, db
}

func TestGormStoreLoadWithoutDraft(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	doc := domain.DemoDocument(time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Seller.Name, loaded.Seller.Name)
	assert.Equal(t, "31-Jul-24", loaded.Invoice.Date)
	assert.True(t, loaded.Totals.GrandTotal.Equal(domain.NumericFromInt(129800)))
	assert.Equal(t, doc.AmountInWords, loaded.AmountInWords)

	// Blank numerics survive the round trip as blanks.
	doc.Items[0].Qty = domain.UnsetNumeric()
	require.NoError(t, store.Save(ctx, doc))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.Items[0].Qty.IsSet())
}

func TestGormStoreSaveOverwrites(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	doc := domain.DemoDocument(time.Now())
	require.NoError(t, store.Save(ctx, doc))

	doc.Buyer.Name = "Second Save"
	require.NoError(t, store.Save(ctx, doc))

	var count int64
	require.NoError(t, db.Model(&DraftBlob{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second Save", loaded.Buyer.Name)
}

func TestGormStoreCorruptDraftIsDiscarded(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	blob := DraftBlob{Key: DraftKey, Payload: "{not json", UpdatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(&blob).Error)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptDraft)

	// The unreadable draft is gone; the next load starts clean.
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestGormStoreClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.DemoDocument(time.Now())))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoDraft)

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear(ctx))
}
