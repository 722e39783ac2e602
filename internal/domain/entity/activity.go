package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Activity is an append-only audit record of a mutating action. Activities
// are written best-effort off the request path and are never updated or
// deleted.
type Activity struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      enum.ActivityType `gorm:"size:50;not null" json:"type"`
	DocID     uuid.UUID         `gorm:"type:uuid;not null" json:"doc_id"`
	Details   string            `gorm:"type:text" json:"details"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new activity
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Activity model
func (Activity) TableName() string {
	return "activities"
}
