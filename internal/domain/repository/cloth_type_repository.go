package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
)

// ClothTypeRepository defines the interface for price catalog data operations
type ClothTypeRepository interface {
	Create(ctx context.Context, clothType *entity.ClothType) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClothType, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ClothType, error)
	Update(ctx context.Context, clothType *entity.ClothType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.ClothType, error)
}
