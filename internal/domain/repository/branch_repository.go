package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/pkg/pagination"
)

// BranchRepository defines the interface for branch fee-configuration access.
// Branch records are owned by the platform backend; the cart core only reads
// them.
type BranchRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Branch, int64, error)
	Create(ctx context.Context, branch *entity.Branch) error
	Update(ctx context.Context, branch *entity.Branch) error
}
