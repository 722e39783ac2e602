package service

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/events"
	infraRepo "github.com/washbook/washbook-api/internal/infrastructure/repository"
	"github.com/washbook/washbook-api/pkg/apperror"
	"github.com/washbook/washbook-api/pkg/pagination"
	"github.com/washbook/washbook-api/pkg/utils"
)

// OrderService handles laundry order operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	customerRepo  repository.CustomerRepository
	clothTypeRepo repository.ClothTypeRepository
	bus           EventBus.Bus
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	customerRepo repository.CustomerRepository,
	clothTypeRepo repository.ClothTypeRepository,
	bus EventBus.Bus,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		customerRepo:  customerRepo,
		clothTypeRepo: clothTypeRepo,
		bus:           bus,
	}
}

// OrderItemInput is one garment line on an order
type OrderItemInput struct {
	ClothTypeID uuid.UUID
	Quantity    int
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Status     *enum.PaymentStatus
	Items      []OrderItemInput
}

// buildItems resolves cloth types in one batch and prices each line at the
// catalog rate in effect right now. The rates are frozen into the line items;
// later catalog edits never reprice an existing order.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one item is required"},
		})
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, item := range inputs {
		if item.Quantity <= 0 {
			return nil, 0, apperror.NewValidationError([]apperror.FieldError{
				{Field: "quantity", Message: "Quantity must be greater than zero"},
			})
		}
		ids = append(ids, item.ClothTypeID)
	}

	clothTypes, err := s.clothTypeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	rates := make(map[uuid.UUID]float64, len(clothTypes))
	for _, ct := range clothTypes {
		rates[ct.ID] = ct.UnitRate
	}

	var items []entity.OrderItem
	var total float64
	for _, input := range inputs {
		rate, ok := rates[input.ClothTypeID]
		if !ok {
			return nil, 0, apperror.NewNotFoundError("Cloth type")
		}
		lineTotal := rate * float64(input.Quantity)
		items = append(items, entity.OrderItem{
			ClothTypeID: input.ClothTypeID,
			Quantity:    input.Quantity,
			UnitRate:    rate,
			LineTotal:   lineTotal,
		})
		total += lineTotal
	}

	return items, total, nil
}

// CreateOrder creates a new order with priced line items
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	items, total, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	status := enum.PaymentStatusPending
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment status")
		}
		status = *input.Status
	}

	order := &entity.Order{
		UserID:     ownerID,
		CustomerID: input.CustomerID,
		OrderNo:    utils.GenerateOrderNo(),
		Total:      total,
		Status:     status,
		Items:      items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  ownerID,
		Type:    enum.ActivityOrderCreated,
		DocID:   order.ID,
		Details: fmt.Sprintf("Order %s created for %q", order.OrderNo, customer.Name),
	})

	return s.orderRepo.GetByID(ctx, order.ID)
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with optional filters
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Status     *enum.PaymentStatus
	Items      []OrderItemInput
}

// UpdateOrder edits an order. When items are supplied the line items are
// replaced wholesale and the total is recomputed at current catalog rates.
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		order.CustomerID = *input.CustomerID
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment status")
		}
		order.Status = *input.Status
	}

	if input.Items != nil {
		items, total, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		if err := s.orderItemRepo.DeleteByOrderID(ctx, order.ID); err != nil {
			return nil, err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
		order.Total = total
		order.Items = nil
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  order.UserID,
		Type:    enum.ActivityOrderUpdated,
		DocID:   order.ID,
		Details: fmt.Sprintf("Order %s updated", order.OrderNo),
	})

	return s.orderRepo.GetByID(ctx, order.ID)
}

// UpdateOrderStatus changes only the payment status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment status")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  order.UserID,
		Type:    enum.ActivityOrderUpdated,
		DocID:   order.ID,
		Details: fmt.Sprintf("Order %s marked %s", order.OrderNo, status),
	})

	return order, nil
}

// DeleteOrder deletes an order and its line items. Bills that reference the
// order keep their snapshot totals.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  order.UserID,
		Type:    enum.ActivityOrderDeleted,
		DocID:   order.ID,
		Details: fmt.Sprintf("Order %s deleted", order.OrderNo),
	})

	return nil
}
