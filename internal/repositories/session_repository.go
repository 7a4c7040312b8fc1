package repositories

import (
	"context"
	"sync"

	"lumo/internal/models/store_models"
	"lumo/pkg/utils"
)

type SessionRepository interface {
	Create(ctx context.Context, session *store_models.Session) error
	GetByID(ctx context.Context, id string) (*store_models.Session, error)
	Update(ctx context.Context, session *store_models.Session) error
}

// InMemorySessionRepository keeps sessions in a mutex-guarded map for the
// life of the process. Nothing is ever evicted.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*store_models.Session
}

func NewInMemorySessionRepository() SessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[string]*store_models.Session),
	}
}

func (r *InMemorySessionRepository) Create(ctx context.Context, session *store_models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return utils.ErrInvalidInput
	}

	r.sessions[session.ID] = session
	return nil
}

func (r *InMemorySessionRepository) GetByID(ctx context.Context, id string) (*store_models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (r *InMemorySessionRepository) Update(ctx context.Context, session *store_models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return utils.ErrSessionNotFound
	}

	r.sessions[session.ID] = session
	return nil
}
