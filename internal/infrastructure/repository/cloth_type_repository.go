package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	domainRepo "github.com/washbook/washbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type clothTypeRepository struct {
	db *gorm.DB
}

// NewClothTypeRepository creates a new cloth type repository
func NewClothTypeRepository(db *gorm.DB) domainRepo.ClothTypeRepository {
	return &clothTypeRepository{db: db}
}

func (r *clothTypeRepository) Create(ctx context.Context, clothType *entity.ClothType) error {
	return r.db.WithContext(ctx).Create(clothType).Error
}

func (r *clothTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClothType, error) {
	var clothType entity.ClothType
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).First(&clothType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &clothType, nil
}

func (r *clothTypeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.ClothType, error) {
	var clothTypes []entity.ClothType
	if len(ids) == 0 {
		return clothTypes, nil
	}
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Where("id IN ?", ids).
		Find(&clothTypes).Error
	return clothTypes, err
}

func (r *clothTypeRepository) Update(ctx context.Context, clothType *entity.ClothType) error {
	return r.db.WithContext(ctx).Save(clothType).Error
}

func (r *clothTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).Delete(&entity.ClothType{}, "id = ?", id).Error
}

// List returns the owner's full catalog. The catalog is small (tens of rows)
// so it is never paginated.
func (r *clothTypeRepository) List(ctx context.Context) ([]entity.ClothType, error) {
	var clothTypes []entity.ClothType
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Order("name ASC").
		Find(&clothTypes).Error
	return clothTypes, err
}
