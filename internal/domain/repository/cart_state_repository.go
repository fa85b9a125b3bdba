package repository

import (
	"context"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
)

// CartStateRepository persists cart snapshots across sessions. Save replaces
// the stored snapshot wholesale (last writer wins, no merging); Load returns
// nil, nil when no snapshot exists for the session.
type CartStateRepository interface {
	Save(ctx context.Context, snapshot *entity.CartSnapshot) error
	Load(ctx context.Context, sessionID string) (*entity.CartSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}
