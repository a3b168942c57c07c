// Package analysis fronts the external invoice-analysis service. The
// extraction and anomaly models live elsewhere; this package forwards
// uploads, keeps the upload history, and preserves the service's result
// shape when it is unreachable.
package analysis

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Anomaly is the reconstruction-based anomaly verdict for one document.
type Anomaly struct {
	Score      float64 `json:"score"`
	IsAnomaly  bool    `json:"is_anomaly"`
	ReconError float64 `json:"recon_error"`
	Threshold  float64 `json:"threshold"`
}

// Result is the fixed shape every analysis returns.
type Result struct {
	ID              string            `json:"id"`
	ExtractedFields map[string]string `json:"extracted_fields"`
	Anomaly         Anomaly           `json:"anomaly"`
	Tokens          []string          `json:"tokens"`
	Tags            []string          `json:"tags"`
	Timestamp       time.Time         `json:"timestamp"`
}

// UploadRecord is one row of the upload history.
type UploadRecord struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	Filename        string       `gorm:"type:text;not null"`
	Status          string       `gorm:"type:text;not null"`
	ExtractedFields string       `gorm:"type:text;not null;default:'{}'"`
	UploadedAt      time.Time    `gorm:"not null;index"`
}

func (UploadRecord) TableName() string { return "upload_records" }

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// HistoryItem is the listing projection of an upload record.
type HistoryItem struct {
	ID              string            `json:"id"`
	Filename        string            `json:"filename"`
	UploadedAt      time.Time         `json:"uploaded_at"`
	Status          string            `json:"status"`
	ExtractedFields map[string]string `json:"extracted_fields"`
}

// HistoryPage is one page of upload history.
type HistoryPage struct {
	Items  []HistoryItem `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
