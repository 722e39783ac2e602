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
)

// ClothTypeService manages the per-shop price catalog
type ClothTypeService struct {
	clothTypeRepo repository.ClothTypeRepository
	bus           EventBus.Bus
}

// NewClothTypeService creates a new cloth type service
func NewClothTypeService(clothTypeRepo repository.ClothTypeRepository, bus EventBus.Bus) *ClothTypeService {
	return &ClothTypeService{clothTypeRepo: clothTypeRepo, bus: bus}
}

func validateClothTypeFields(name string, unitRate float64) error {
	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if unitRate <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "unit_rate", Message: "Unit rate must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateClothTypeInput represents the create cloth type input
type CreateClothTypeInput struct {
	Name     string
	UnitRate float64
}

// CreateClothType adds a garment type with its per-unit price
func (s *ClothTypeService) CreateClothType(ctx context.Context, input *CreateClothTypeInput) (*entity.ClothType, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	if err := validateClothTypeFields(input.Name, input.UnitRate); err != nil {
		return nil, err
	}

	clothType := &entity.ClothType{
		UserID:   ownerID,
		Name:     input.Name,
		UnitRate: input.UnitRate,
	}

	if err := s.clothTypeRepo.Create(ctx, clothType); err != nil {
		return nil, err
	}

	s.publishChange(ownerID, "created", clothType)
	return clothType, nil
}

// ListClothTypes returns the owner's full catalog
func (s *ClothTypeService) ListClothTypes(ctx context.Context) ([]entity.ClothType, error) {
	return s.clothTypeRepo.List(ctx)
}

// UpdateClothTypeInput represents the update cloth type input
type UpdateClothTypeInput struct {
	ID       uuid.UUID
	Name     string
	UnitRate float64
}

// UpdateClothType renames a garment type or changes its rate. Existing order
// lines keep the rate they were created with.
func (s *ClothTypeService) UpdateClothType(ctx context.Context, input *UpdateClothTypeInput) (*entity.ClothType, error) {
	clothType, err := s.clothTypeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if clothType == nil {
		return nil, apperror.NewNotFoundError("Cloth type")
	}

	if err := validateClothTypeFields(input.Name, input.UnitRate); err != nil {
		return nil, err
	}

	clothType.Name = input.Name
	clothType.UnitRate = input.UnitRate

	if err := s.clothTypeRepo.Update(ctx, clothType); err != nil {
		return nil, err
	}

	s.publishChange(clothType.UserID, "updated", clothType)
	return clothType, nil
}

// DeleteClothType removes a garment type from the catalog
func (s *ClothTypeService) DeleteClothType(ctx context.Context, id uuid.UUID) error {
	clothType, err := s.clothTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if clothType == nil {
		return apperror.NewNotFoundError("Cloth type")
	}

	if err := s.clothTypeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishChange(clothType.UserID, "deleted", clothType)
	return nil
}

func (s *ClothTypeService) publishChange(ownerID uuid.UUID, action string, clothType *entity.ClothType) {
	s.bus.Publish(events.TopicCatalogChanged, events.CatalogEvent{
		UserID: ownerID,
		Action: action,
		ID:     clothType.ID,
	})

	activityType := enum.ActivityClothTypeCreated
	switch action {
	case "updated":
		activityType = enum.ActivityClothTypeUpdated
	case "deleted":
		activityType = enum.ActivityClothTypeDeleted
	}
	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  ownerID,
		Type:    activityType,
		DocID:   clothType.ID,
		Details: fmt.Sprintf("Cloth type %q %s", clothType.Name, action),
	})
}
