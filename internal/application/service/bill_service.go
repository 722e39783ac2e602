package service

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/events"
	infraRepo "github.com/washbook/washbook-api/internal/infrastructure/repository"
	"github.com/washbook/washbook-api/pkg/apperror"
	"github.com/washbook/washbook-api/pkg/pagination"
)

// BillService aggregates a customer's orders over a period into bills and
// manages the bill lifecycle.
type BillService struct {
	billRepo     repository.BillRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	bus          EventBus.Bus
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	bus EventBus.Bus,
) *BillService {
	return &BillService{
		billRepo:     billRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		bus:          bus,
	}
}

// GenerateBillInput represents the bill generation input. StartDate and
// EndDate are calendar days; time-of-day components are ignored.
type GenerateBillInput struct {
	CustomerID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

// dayBounds widens a date pair to full days: start at midnight, end just
// before the following midnight, so orders on both boundary days are billed.
func dayBounds(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())
	return from, to
}

// GenerateBill sums the customer's orders created within the period and
// records the result as a Pending bill. The total is a snapshot: later edits
// to the underlying orders never change it. When no orders match, no bill is
// created and ErrNoOrdersInRange is returned.
func (s *BillService) GenerateBill(ctx context.Context, input *GenerateBillInput) (*entity.Bill, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	from, to := dayBounds(input.StartDate, input.EndDate)
	orders, err := s.orderRepo.ListByCustomerAndRange(ctx, input.CustomerID, from, to)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperror.ErrNoOrdersInRange
	}

	var total float64
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		total += order.Total
		orderIDs = append(orderIDs, order.ID)
	}

	bill := &entity.Bill{
		UserID:     ownerID,
		CustomerID: input.CustomerID,
		OrderIDs:   orderIDs,
		StartDate:  from,
		EndDate:    to,
		Total:      total,
		Status:     enum.PaymentStatusPending,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  ownerID,
		Type:    enum.ActivityBillGenerated,
		DocID:   bill.ID,
		Details: fmt.Sprintf("Bill generated for %q covering %d orders", customer.Name, len(orders)),
	})

	return s.billRepo.GetByID(ctx, bill.ID)
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills pages through bills newest first using an opaque cursor
func (s *BillService) ListBills(ctx context.Context, params *repository.BillCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Bill], error) {
	bills, err := s.billRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	cursorPag, items := pagination.NewCursorPagination(bills, params.Cursor.Limit,
		func(b entity.Bill) string { return b.ID.String() },
		func(b entity.Bill) time.Time { return b.CreatedAt },
	)

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateBillStatus changes a bill's payment status. Any valid status can be
// set from any other; the shop owner is the sole authority.
func (s *BillService) UpdateBillStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) (*entity.Bill, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment status")
	}

	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	if err := s.billRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	bill.Status = status

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  bill.UserID,
		Type:    enum.ActivityBillUpdated,
		DocID:   bill.ID,
		Details: fmt.Sprintf("Bill %s marked %s", bill.ID, status),
	})

	return bill, nil
}

// DeleteBill removes a bill permanently. The orders it referenced are left
// untouched and may be billed again.
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}

	if err := s.billRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  bill.UserID,
		Type:    enum.ActivityBillDeleted,
		DocID:   bill.ID,
		Details: fmt.Sprintf("Bill %s deleted", bill.ID),
	})

	return nil
}
