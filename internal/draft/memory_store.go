package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
)

// MemoryStore is the in-memory fake for tests. It serializes through
// JSON so round-trip behaviour matches the real store.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (domain.InvoiceDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return domain.InvoiceDocument{}, ErrNoDraft
	}
	var doc domain.InvoiceDocument
	if err := json.Unmarshal(s.payload, &doc); err != nil {
		s.payload = nil
		return domain.InvoiceDocument{}, fmt.Errorf("%w: %v", ErrCorruptDraft, err)
	}
	return doc, nil
}

func (s *MemoryStore) Save(_ context.Context, doc domain.InvoiceDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.payload = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.payload = nil
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites the stored payload with unparseable bytes. Test
// helper for the corrupt-draft fallback path.
func (s *MemoryStore) Corrupt() {
	s.mu.Lock()
	s.payload = []byte("{not json")
	s.mu.Unlock()
}
