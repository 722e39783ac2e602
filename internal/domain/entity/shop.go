package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop holds the owner's shop profile, printed as the invoice header.
// Exactly one row per user, created lazily with defaults on first read.
type Shop struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ShopName       string         `gorm:"size:255" json:"shop_name"`
	Address        string         `gorm:"type:text" json:"address"`
	Mobile         string         `gorm:"size:50" json:"mobile"`
	Email          string         `gorm:"size:255" json:"email"`
	OperatingHours string         `gorm:"size:255" json:"operating_hours"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shop profile
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}
