package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	domainRepo "github.com/washbook/washbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).First(&shop, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}
