package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bwmarrin/snowflake"
	"github.com/dhrupad777/paperbrain/internal/clock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type Service struct {
	client Client
	db     *gorm.DB
	genID  *snowflake.Node
	clk    clock.Clock
	logger *zap.Logger
}

func NewService(client Client, db *gorm.DB, genID *snowflake.Node, clk clock.Clock, logger *zap.Logger) (*Service, error) {
	if err := db.AutoMigrate(&UploadRecord{}); err != nil {
		return nil, fmt.Errorf("migrate upload history: %w", err)
	}
	return &Service{client: client, db: db, genID: genID, clk: clk, logger: logger}, nil
}

// Upload forwards one file to the analyzer and records it in history.
// Analyzer failure is non-fatal: the documented result shape is still
// produced with placeholder extraction.
func (s *Service) Upload(ctx context.Context, filename string, file io.Reader) (Result, error) {
	id := s.genID.Generate()

	result, err := s.client.Analyze(ctx, filename, file)
	if err != nil {
		s.logger.Warn("analyzer unavailable, serving placeholder result", zap.Error(err))
		result = placeholderResult(id.String(), s.clk)
	}
	if result.ID == "" {
		result.ID = id.String()
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = s.clk.Now()
	}

	fields, err := json.Marshal(result.ExtractedFields)
	if err != nil {
		fields = []byte("{}")
	}
	record := UploadRecord{
		ID:              id,
		Filename:        filename,
		Status:          StatusCompleted,
		ExtractedFields: string(fields),
		UploadedAt:      s.clk.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return Result{}, fmt.Errorf("record upload: %w", err)
	}
	return result, nil
}

// Analyze re-serves the analysis result for a previously uploaded file.
func (s *Service) Analyze(ctx context.Context, fileID string) (Result, error) {
	id, err := snowflake.ParseString(fileID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidFileID, fileID)
	}

	var record UploadRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return Result{}, ErrUploadNotFound
		}
		return Result{}, err
	}

	result := placeholderResult(record.ID.String(), s.clk)
	result.Timestamp = record.UploadedAt
	var fields map[string]string
	if err := json.Unmarshal([]byte(record.ExtractedFields), &fields); err == nil && len(fields) > 0 {
		result.ExtractedFields = fields
	}
	return result, nil
}

// History lists past uploads, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) (HistoryPage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&UploadRecord{}).Count(&total).Error; err != nil {
		return HistoryPage{}, err
	}

	var records []UploadRecord
	err := s.db.WithContext(ctx).
		Order("uploaded_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return HistoryPage{}, err
	}

	items := make([]HistoryItem, 0, len(records))
	for _, record := range records {
		var fields map[string]string
		_ = json.Unmarshal([]byte(record.ExtractedFields), &fields)
		items = append(items, HistoryItem{
			ID:              record.ID.String(),
			Filename:        record.Filename,
			UploadedAt:      record.UploadedAt,
			Status:          record.Status,
			ExtractedFields: fields,
		})
	}

	return HistoryPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// placeholderResult mirrors the shape the analyzer serves while its
// extraction models remain offline.
func placeholderResult(id string, clk clock.Clock) Result {
	return Result{
		ID: id,
		ExtractedFields: map[string]string{
			"VENDOR": "Sample Vendor Name",
			"DATE":   clk.Now().Format("02-Jan-06"),
			"TOTAL":  "15,000.00",
		},
		Anomaly: Anomaly{
			Score:      0.15,
			IsAnomaly:  false,
			ReconError: 0.002,
			Threshold:  0.05,
		},
		Tokens:    []string{"Sample", "tokens", "from", "OCR"},
		Tags:      []string{"O", "B-VENDOR", "I-VENDOR", "O"},
		Timestamp: clk.Now(),
	}
}
