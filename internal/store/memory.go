package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sobara/commentbox/internal/model"
)

// InMemoryCommentStore keeps comments in process memory. Used by tests and
// when running with DSN=memory.
type InMemoryCommentStore struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]model.Comment // id -> comment
	pages    map[string][]uuid.UUID      // page_id -> comment ids
}

func NewInMemoryCommentStore() *InMemoryCommentStore {
	return &InMemoryCommentStore{
		comments: make(map[uuid.UUID]model.Comment),
		pages:    make(map[string][]uuid.UUID),
	}
}

func (s *InMemoryCommentStore) Create(_ context.Context, pageID, displayName, body string) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Comment{
		ID:          uuid.New(),
		PageID:      pageID,
		DisplayName: displayName,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
		Approved:    false,
	}
	s.comments[c.ID] = c
	s.pages[pageID] = append(s.pages[pageID], c.ID)
	return c, nil
}

func (s *InMemoryCommentStore) GetByPage(_ context.Context, pageID string) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.pages[pageID]
	comments := make([]model.Comment, 0, len(ids))
	for _, id := range ids {
		comments = append(comments, s.comments[id])
	}
	return comments, nil
}

func (s *InMemoryCommentStore) GetByID(_ context.Context, id uuid.UUID) (model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, ErrCommentNotFound
	}
	return c, nil
}

func (s *InMemoryCommentStore) Approve(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return ErrCommentNotFound
	}
	c.Approved = true
	s.comments[id] = c
	return nil
}
