package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClothType is a price-list entry: a service/item category and its per-unit
// rate. Orders reference cloth types by id, but the link is advisory only;
// a deleted cloth type degrades to an "N/A" description on rendered invoices.
type ClothType struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UnitRate  float64        `gorm:"type:decimal(10,2);not null" json:"unit_rate"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cloth type
func (ct *ClothType) BeforeCreate(tx *gorm.DB) error {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	return nil
}

// TableName returns the canonical table name for the ClothType model.
// Legacy data sets used both "cloth-types" and "clothTypes"; cmd/migrate
// folds those into this table.
func (ClothType) TableName() string {
	return "cloth_types"
}
