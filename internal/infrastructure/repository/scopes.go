package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// OwnerIDKey is the context key for the authenticated owner's user ID
const OwnerIDKey ctxKey = "owner_id"

// OwnerScope returns a GORM scope that filters rows by the owner carried in
// ctx. Every query against owner-scoped tables goes through this single
// choke point; handlers and services never write their own user_id filters.
// If the owner is missing from ctx the scope matches nothing rather than
// everything.
func OwnerScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		ownerID, ok := ctx.Value(OwnerIDKey).(uuid.UUID)
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Where("user_id = ?", ownerID)
	}
}

// WithOwner adds the owner's user ID to context
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, OwnerIDKey, ownerID)
}

// GetOwnerID extracts the owner's user ID from context
func GetOwnerID(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(OwnerIDKey).(uuid.UUID)
	return ownerID, ok
}
