package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill is a snapshot aggregation of one customer's orders over a date range.
// Total is fixed at generation time and never recomputed, even if the
// underlying orders change afterwards. Bills are hard-deleted; deletion
// never touches the referenced orders.
type Bill struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderIDs   []uuid.UUID        `gorm:"type:jsonb;serializer:json" json:"order_ids"`
	StartDate  time.Time          `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time          `gorm:"type:date;not null" json:"end_date"`
	Total      float64            `gorm:"type:decimal(10,2);not null" json:"total"`
	Status     enum.PaymentStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
