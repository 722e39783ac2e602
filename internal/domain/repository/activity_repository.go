package repository

import (
	"context"

	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/pkg/pagination"
)

// ActivityRepository defines the interface for audit log operations.
// Activities are append-only.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Activity, int64, error)
}
