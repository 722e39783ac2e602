package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/washbook/washbook-api/internal/application/service"
	"github.com/washbook/washbook-api/internal/presentation/http/dto/response"
)

// ActivityHandler handles audit log HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns the owner's audit log, newest first
func (h *ActivityHandler) List(c *gin.Context) {
	result, err := h.activityService.ListActivities(c.Request.Context(), pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Activities retrieved successfully", result)
}
