package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/washbook/washbook-api/internal/application/service"
	"github.com/washbook/washbook-api/internal/presentation/http/dto/response"
)

// ShopHandler handles shop profile HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Get returns the owner's shop profile
func (h *ShopHandler) Get(c *gin.Context) {
	shop, err := h.shopService.GetShop(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop profile retrieved successfully", shop)
}

// Update handles updating the shop profile
func (h *ShopHandler) Update(c *gin.Context) {
	var req struct {
		ShopName       *string `json:"shop_name"`
		Address        *string `json:"address"`
		Mobile         *string `json:"mobile"`
		Email          *string `json:"email"`
		OperatingHours *string `json:"operating_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), &service.UpdateShopInput{
		ShopName:       req.ShopName,
		Address:        req.Address,
		Mobile:         req.Mobile,
		Email:          req.Email,
		OperatingHours: req.OperatingHours,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop profile updated successfully", shop)
}
