package service

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/events"
	infraRepo "github.com/washbook/washbook-api/internal/infrastructure/repository"
	"github.com/washbook/washbook-api/pkg/apperror"
)

// ShopService manages the owner's shop profile
type ShopService struct {
	shopRepo repository.ShopRepository
	bus      EventBus.Bus
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository, bus EventBus.Bus) *ShopService {
	return &ShopService{shopRepo: shopRepo, bus: bus}
}

// GetShop returns the owner's shop profile, creating it with defaults on
// first access.
func (s *ShopService) GetShop(ctx context.Context) (*entity.Shop, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	shop, err := s.shopRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if shop != nil {
		return shop, nil
	}

	shop = &entity.Shop{
		UserID:   ownerID,
		ShopName: "My Laundry Shop",
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// UpdateShopInput represents the update shop profile input
type UpdateShopInput struct {
	ShopName       *string
	Address        *string
	Mobile         *string
	Email          *string
	OperatingHours *string
}

// UpdateShop updates the owner's shop profile
func (s *ShopService) UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	if input.ShopName != nil {
		if *input.ShopName == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "shop_name", Message: "Shop name is required"},
			})
		}
		shop.ShopName = *input.ShopName
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Mobile != nil {
		shop.Mobile = *input.Mobile
	}
	if input.Email != nil {
		shop.Email = *input.Email
	}
	if input.OperatingHours != nil {
		shop.OperatingHours = *input.OperatingHours
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  shop.UserID,
		Type:    enum.ActivityShopUpdated,
		DocID:   shop.ID,
		Details: fmt.Sprintf("Shop profile %q updated", shop.ShopName),
	})

	return shop, nil
}
