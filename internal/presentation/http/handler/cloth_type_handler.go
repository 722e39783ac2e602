package handler

import (
	"io"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/application/service"
	"github.com/washbook/washbook-api/internal/events"
	"github.com/washbook/washbook-api/internal/presentation/http/dto/response"
)

// ClothTypeHandler handles price catalog HTTP requests
type ClothTypeHandler struct {
	clothTypeService *service.ClothTypeService
	bus              EventBus.Bus
}

// NewClothTypeHandler creates a new cloth type handler
func NewClothTypeHandler(clothTypeService *service.ClothTypeService, bus EventBus.Bus) *ClothTypeHandler {
	return &ClothTypeHandler{clothTypeService: clothTypeService, bus: bus}
}

// List handles listing the full catalog
func (h *ClothTypeHandler) List(c *gin.Context) {
	clothTypes, err := h.clothTypeService.ListClothTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cloth types retrieved successfully", clothTypes)
}

// Create handles adding a cloth type
func (h *ClothTypeHandler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		UnitRate float64 `json:"unit_rate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	clothType, err := h.clothTypeService.CreateClothType(c.Request.Context(), &service.CreateClothTypeInput{
		Name:     req.Name,
		UnitRate: req.UnitRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cloth type created successfully", clothType)
}

// Update handles renaming or repricing a cloth type
func (h *ClothTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cloth type ID")
		return
	}

	var req struct {
		Name     string  `json:"name" binding:"required"`
		UnitRate float64 `json:"unit_rate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	clothType, err := h.clothTypeService.UpdateClothType(c.Request.Context(), &service.UpdateClothTypeInput{
		ID:       id,
		Name:     req.Name,
		UnitRate: req.UnitRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cloth type updated successfully", clothType)
}

// Delete handles removing a cloth type
func (h *ClothTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cloth type ID")
		return
	}

	if err := h.clothTypeService.DeleteClothType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cloth type deleted successfully", nil)
}

// Watch streams catalog changes to the client over server-sent events. The
// first event is a snapshot of the current catalog; each subsequent event
// describes a single change made by any of the owner's devices.
func (h *ClothTypeHandler) Watch(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	clothTypes, err := h.clothTypeService.ListClothTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	changes := make(chan events.CatalogEvent, 16)
	listener := func(event events.CatalogEvent) {
		if event.UserID != *userID {
			return
		}
		select {
		case changes <- event:
		default:
			// Slow consumer; drop the event, the client refetches on reconnect
		}
	}
	if err := h.bus.SubscribeAsync(events.TopicCatalogChanged, listener, false); err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = h.bus.Unsubscribe(events.TopicCatalogChanged, listener)
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("snapshot", clothTypes)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event := <-changes:
			c.SSEvent("change", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
