package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

// Branch represents a single restaurant location with its fee configuration.
// Branch records are owned by the platform backend; the cart only references
// them and treats the fee configuration as immutable for the session.
type Branch struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string              `gorm:"size:255;not null" json:"name"`
	Currency             string              `gorm:"size:3;not null;default:'USD'" json:"currency"`
	DeliveryCharge       decimal.Decimal     `gorm:"type:decimal(12,2);default:0" json:"delivery_charge"`
	ServiceChargePercent decimal.Decimal     `gorm:"type:decimal(6,2);default:0" json:"service_charge_percent"`
	TaxPercent           decimal.Decimal     `gorm:"type:decimal(6,2);default:0" json:"tax_percent"`
	TaxAppliedType       enum.TaxAppliedType `gorm:"default:0" json:"tax_applied_type"`
	// MaxDiscountAmount caps the aggregate discount per order. Zero means no cap.
	MaxDiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"max_discount_amount"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new branch
func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}
