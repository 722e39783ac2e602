package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
)

// ShopRepository defines the interface for shop profile operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
}
