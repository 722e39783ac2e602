package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/application/service"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/presentation/http/dto/response"
	"github.com/washbook/washbook-api/pkg/pagination"
)

const billDateLayout = "2006-01-02"

// BillHandler handles bill HTTP requests
type BillHandler struct {
	billService    *service.BillService
	invoiceService *service.InvoiceService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, invoiceService *service.InvoiceService) *BillHandler {
	return &BillHandler{billService: billService, invoiceService: invoiceService}
}

// List handles cursor-paginated bill listing, newest first
func (h *BillHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	params := &repository.BillCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor: c.Query("cursor"),
			Limit:  limit,
		},
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

	result, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", result)
}

// Create handles generating a bill from a customer's orders over a period
func (h *BillHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID `json:"customer_id" binding:"required"`
		StartDate  string    `json:"start_date" binding:"required"`
		EndDate    string    `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startDate, err := time.Parse(billDateLayout, req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(billDateLayout, req.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	bill, err := h.billService.GenerateBill(c.Request.Context(), &service.GenerateBillInput{
		CustomerID: req.CustomerID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill generated successfully", bill)
}

// Get handles retrieving a single bill
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// UpdateStatus handles changing a bill's payment status
func (h *BillHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		Status enum.PaymentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bill, err := h.billService.UpdateBillStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill status updated successfully", bill)
}

// Delete handles deleting a bill
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}

// Invoice renders the bill as a print-ready HTML invoice
func (h *BillHandler) Invoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	html, err := h.invoiceService.RenderInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", []byte(html))
}
