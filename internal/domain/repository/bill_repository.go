package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations. Bills are
// hard-deleted; there is no soft-delete column on the table.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	// ListWithCursor pages forward through bills, newest first. There is no
	// backward paging; clients restart from the beginning to refresh.
	ListWithCursor(ctx context.Context, params *BillCursorFilterParams) ([]entity.Bill, error)
}

// BillCursorFilterParams contains cursor-based filtering for bill queries
type BillCursorFilterParams struct {
	Cursor     *pagination.CursorParams
	Status     *enum.PaymentStatus
	CustomerID *uuid.UUID
}
