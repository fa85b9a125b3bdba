package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	domainRepo "github.com/forkpoint/ordering-api/internal/domain/repository"
)

type cartStateRepository struct {
	db *gorm.DB
}

// NewCartStateRepository creates a cart state repository backed by Postgres.
// Each session stores one JSON document; Save upserts it wholesale.
func NewCartStateRepository(db *gorm.DB) domainRepo.CartStateRepository {
	return &cartStateRepository{db: db}
}

func (r *cartStateRepository) Save(ctx context.Context, snapshot *entity.CartSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	record := entity.CartStateRecord{
		SessionID:     snapshot.SessionID,
		SchemaVersion: snapshot.SchemaVersion,
		Payload:       payload,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"schema_version", "payload", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *cartStateRepository) Load(ctx context.Context, sessionID string) (*entity.CartSnapshot, error) {
	var record entity.CartStateRecord
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var snapshot entity.CartSnapshot
	if err := json.Unmarshal(record.Payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return &snapshot, nil
}

func (r *cartStateRepository) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&entity.CartStateRecord{}).Error
}
