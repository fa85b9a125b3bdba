package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	domainRepo "github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/pkg/pagination"
)

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) domainRepo.BranchRepository {
	return &branchRepository{db: db}
}

// GetByID retrieves a branch by ID, nil when it does not exist
func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var branch entity.Branch
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&branch).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

// List retrieves branches with pagination
func (r *branchRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Branch, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Branch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var branches []entity.Branch
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&branches).Error
	return branches, total, err
}

// Create creates a new branch
func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

// Update updates an existing branch
func (r *branchRepository) Update(ctx context.Context, branch *entity.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}
