package memory

import (
	"context"
	"sync"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

// MetadataStore is an in-process metadata resolver keyed by reference.
// Unknown references resolve to nil, matching the fetcher's degraded path.
type MetadataStore struct {
	mu   sync.RWMutex
	docs map[string]entities.Metadata
}

func NewMetadataStore(docs map[string]entities.Metadata) *MetadataStore {
	copied := make(map[string]entities.Metadata, len(docs))
	for reference, doc := range docs {
		copied[reference] = doc
	}
	return &MetadataStore{docs: copied}
}

func (s *MetadataStore) Put(reference string, doc entities.Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[reference] = doc
}

func (s *MetadataStore) Fetch(_ context.Context, reference string) *entities.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[reference]
	if !ok {
		return nil
	}
	return &doc
}
