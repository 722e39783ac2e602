package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	domainRepo "github.com/washbook/washbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Preload("Customer").
		First(&bill, "bills.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// Delete removes the bill row permanently. The orders referenced by the bill
// are untouched.
func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).Delete(&entity.Bill{}, "id = ?", id).Error
}

func (r *billRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Bill{}).Scopes(OwnerScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListWithCursor returns bills newest first using keyset pagination.
// Fetches limit+1 rows to detect whether more pages exist.
func (r *billRepository) ListWithCursor(ctx context.Context, params *domainRepo.BillCursorFilterParams) ([]entity.Bill, error) {
	var bills []entity.Bill

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Bill{}).Scopes(OwnerScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Customer").
		Order("created_at DESC, id DESC").
		Find(&bills).Error

	return bills, err
}
