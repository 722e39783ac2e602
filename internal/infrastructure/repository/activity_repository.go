package repository

import (
	"context"

	"github.com/washbook/washbook-api/internal/domain/entity"
	domainRepo "github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) domainRepo.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Activity, int64, error) {
	var activities []entity.Activity
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Activity{}).Scopes(OwnerScope(ctx))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&activities).Error

	return activities, total, err
}
