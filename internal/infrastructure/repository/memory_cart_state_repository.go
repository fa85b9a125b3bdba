package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	domainRepo "github.com/forkpoint/ordering-api/internal/domain/repository"
)

type memoryCartStateRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewMemoryCartStateRepository creates an in-memory cart state repository.
// Snapshots survive only for the process lifetime; used for ephemeral
// deployments and tests. Documents are stored encoded so Load returns a copy,
// the same way the Postgres implementation behaves.
func NewMemoryCartStateRepository() domainRepo.CartStateRepository {
	return &memoryCartStateRepository{store: make(map[string][]byte)}
}

func (r *memoryCartStateRepository) Save(_ context.Context, snapshot *entity.CartSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[snapshot.SessionID] = payload
	return nil
}

func (r *memoryCartStateRepository) Load(_ context.Context, sessionID string) (*entity.CartSnapshot, error) {
	r.mu.RLock()
	payload, ok := r.store[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var snapshot entity.CartSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *memoryCartStateRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, sessionID)
	return nil
}
