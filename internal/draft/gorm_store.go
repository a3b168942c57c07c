package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftBlob is the single-row key-value record the document serializes
// into.
type DraftBlob struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (DraftBlob) TableName() string { return "draft_blobs" }

// GormStore persists the draft under DraftKey in a relational table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&DraftBlob{}); err != nil {
		return nil, fmt.Errorf("migrate draft store: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context) (domain.InvoiceDocument, error) {
	var blob DraftBlob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", DraftKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.InvoiceDocument{}, ErrNoDraft
	}
	if err != nil {
		return domain.InvoiceDocument{}, err
	}

	var doc domain.InvoiceDocument
	if err := json.Unmarshal([]byte(blob.Payload), &doc); err != nil {
		// Unreadable drafts are discarded, not surfaced.
		_ = s.Clear(ctx)
		return domain.InvoiceDocument{}, fmt.Errorf("%w: %v", ErrCorruptDraft, err)
	}
	return doc, nil
}

func (s *GormStore) Save(ctx context.Context, doc domain.InvoiceDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	blob := DraftBlob{Key: DraftKey, Payload: string(payload), UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&blob).Error
}

func (s *GormStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Delete(&DraftBlob{}, "key = ?", DraftKey).Error
}
