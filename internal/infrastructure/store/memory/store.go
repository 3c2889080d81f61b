// Package memory holds uploaded documents in a process-local, lock-guarded
// map. Records are never evicted: unbounded retention is part of the service
// contract, and restarts drop everything.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
)

type Store struct {
	mu   sync.RWMutex
	docs map[string]*domain.Document

	// now is swappable in tests.
	now func() time.Time
}

func New() *Store {
	return &Store{
		docs: make(map[string]*domain.Document),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Put(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("store: document id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; exists {
		return fmt.Errorf("store: duplicate document id %s", doc.ID)
	}
	stored := *doc
	s.docs[doc.ID] = &stored
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get", fmt.Errorf("id=%s", id))
	}
	copied := *doc
	return &copied, nil
}

// Touch performs the read-modify-write of LastAccessedAt under the write
// lock, so concurrent touches against the same id never lose an update.
func (s *Store) Touch(_ context.Context, id string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "touch", fmt.Errorf("id=%s", id))
	}
	doc.LastAccessedAt = s.now()
	copied := *doc
	return &copied, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
