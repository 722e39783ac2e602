package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/application/service"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	ClothTypeID uuid.UUID `json:"cloth_type_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required"`
}

func toItemInputs(items []orderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.OrderItemInput{
			ClothTypeID: item.ClothTypeID,
			Quantity:    item.Quantity,
		})
	}
	return inputs
}

// List handles listing orders with optional filters
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.PaymentStatus
		if err := status.UnmarshalJSON([]byte(`"` + statusStr + `"`)); err == nil {
			params.Status = &status
		}
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}
	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			params.StartDate = &start
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			endOfDay := end.Add(24*time.Hour - time.Millisecond)
			params.EndDate = &endOfDay
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID           `json:"customer_id" binding:"required"`
		Status     *enum.PaymentStatus `json:"status"`
		Items      []orderItemRequest  `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Items:      toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles editing an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		CustomerID *uuid.UUID          `json:"customer_id"`
		Status     *enum.PaymentStatus `json:"status"`
		Items      []orderItemRequest  `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateOrderInput{
		ID:         id,
		CustomerID: req.CustomerID,
		Status:     req.Status,
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// UpdateStatus handles changing only the payment status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		Status enum.PaymentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}
