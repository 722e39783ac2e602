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
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	bus          EventBus.Bus
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, bus EventBus.Bus) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, bus: bus}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Address *string
	Phone   *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	customer := &entity.Customer{
		UserID:  ownerID,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  ownerID,
		Type:    enum.ActivityCustomerCreated,
		DocID:   customer.ID,
		Details: fmt.Sprintf("Customer %q added", customer.Name),
	})

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists the owner's customers
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Name    *string
	Address *string
	Phone   *string
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name is required"},
			})
		}
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  customer.UserID,
		Type:    enum.ActivityCustomerUpdated,
		DocID:   customer.ID,
		Details: fmt.Sprintf("Customer %q updated", customer.Name),
	})

	return customer, nil
}

// DeleteCustomer deletes a customer. Existing orders and bills keep their
// customer reference; reads resolve the missing customer to a placeholder.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  customer.UserID,
		Type:    enum.ActivityCustomerDeleted,
		DocID:   customer.ID,
		Details: fmt.Sprintf("Customer %q removed", customer.Name),
	})

	return nil
}
