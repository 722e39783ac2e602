package service

import (
	"bytes"
	"context"
	"html/template"
	"math"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/pkg/apperror"
	"github.com/washbook/washbook-api/pkg/numwords"
	"github.com/washbook/washbook-api/pkg/utils"
)

const invoiceDateFormat = "02 Jan 2006"

// InvoiceService composes bills with customer, order, catalog and shop data
// into print-ready HTML invoices.
type InvoiceService struct {
	billRepo      repository.BillRepository
	orderRepo     repository.OrderRepository
	clothTypeRepo repository.ClothTypeRepository
	shopRepo      repository.ShopRepository
	tmpl          *template.Template
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	clothTypeRepo repository.ClothTypeRepository,
	shopRepo repository.ShopRepository,
) *InvoiceService {
	return &InvoiceService{
		billRepo:      billRepo,
		orderRepo:     orderRepo,
		clothTypeRepo: clothTypeRepo,
		shopRepo:      shopRepo,
		tmpl:          template.Must(template.New("invoice").Parse(invoiceTemplate)),
	}
}

// BuildInvoice assembles the invoice value object for a bill. Records deleted
// since the bill was generated degrade to "N/A" placeholders; the bill's
// snapshot total is printed as-is, never recomputed.
func (s *InvoiceService) BuildInvoice(ctx context.Context, billID uuid.UUID) (*entity.Invoice, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	invoice := &entity.Invoice{
		InvoiceNo:     utils.InvoiceNoFromBillID(bill.ID),
		IssueDate:     bill.CreatedAt.Format(invoiceDateFormat),
		PeriodStart:   bill.StartDate.Format(invoiceDateFormat),
		PeriodEnd:     bill.EndDate.Format(invoiceDateFormat),
		Total:         bill.Total,
		AmountInWords: numwords.Convert(int64(math.Round(bill.Total))),
		Status:        bill.Status.String(),
		CustomerName:  "N/A",
	}

	shop, err := s.shopRepo.GetByUserID(ctx, bill.UserID)
	if err != nil {
		return nil, err
	}
	if shop != nil {
		invoice.Header = entity.InvoiceHeader{
			ShopName:       shop.ShopName,
			Address:        shop.Address,
			Mobile:         shop.Mobile,
			Email:          shop.Email,
			OperatingHours: shop.OperatingHours,
		}
	}

	if bill.Customer != nil {
		invoice.CustomerName = bill.Customer.Name
		if bill.Customer.Address != nil {
			invoice.CustomerAddress = *bill.Customer.Address
		}
		if bill.Customer.Phone != nil {
			invoice.CustomerPhone = *bill.Customer.Phone
		}
	}

	lines, err := s.buildLines(ctx, bill.OrderIDs)
	if err != nil {
		return nil, err
	}
	invoice.Lines = lines

	return invoice, nil
}

// buildLines flattens the line items of every order on the bill, resolving
// garment names through a single batch catalog lookup.
func (s *InvoiceService) buildLines(ctx context.Context, orderIDs []uuid.UUID) ([]entity.InvoiceLine, error) {
	orders, err := s.orderRepo.GetByIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	clothTypeIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.ClothTypeID] {
				seen[item.ClothTypeID] = true
				clothTypeIDs = append(clothTypeIDs, item.ClothTypeID)
			}
		}
	}

	clothTypes, err := s.clothTypeRepo.GetByIDs(ctx, clothTypeIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(clothTypes))
	for _, ct := range clothTypes {
		names[ct.ID] = ct.Name
	}

	var lines []entity.InvoiceLine
	for _, order := range orders {
		for _, item := range order.Items {
			name, ok := names[item.ClothTypeID]
			if !ok {
				name = "N/A"
			}
			lines = append(lines, entity.InvoiceLine{
				Description: name,
				Quantity:    item.Quantity,
				UnitRate:    item.UnitRate,
				LineTotal:   item.LineTotal,
			})
		}
	}

	return lines, nil
}

// RenderInvoice renders the invoice as a standalone HTML document
func (s *InvoiceService) RenderInvoice(ctx context.Context, billID uuid.UUID) (string, error) {
	invoice, err := s.BuildInvoice(ctx, billID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, invoice); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNo}}</title>
<style>
  body { font-family: Arial, sans-serif; color: #333; margin: 40px; }
  .header { text-align: center; border-bottom: 2px solid #1e6f5c; padding-bottom: 12px; }
  .header h1 { margin: 0; color: #1e6f5c; }
  .meta { margin-top: 16px; display: flex; justify-content: space-between; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
  th { background-color: #1e6f5c; color: white; }
  td.num, th.num { text-align: right; }
  .total-row td { font-weight: bold; }
  .words { margin-top: 16px; font-style: italic; text-transform: capitalize; }
  .status { margin-top: 8px; font-weight: bold; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Header.ShopName}}</h1>
  {{if .Header.Address}}<div>{{.Header.Address}}</div>{{end}}
  {{if .Header.Mobile}}<div>Mobile: {{.Header.Mobile}}</div>{{end}}
  {{if .Header.Email}}<div>Email: {{.Header.Email}}</div>{{end}}
  {{if .Header.OperatingHours}}<div>{{.Header.OperatingHours}}</div>{{end}}
</div>
<div class="meta">
  <div>
    <div><strong>Billed To:</strong> {{.CustomerName}}</div>
    {{if .CustomerAddress}}<div>{{.CustomerAddress}}</div>{{end}}
    {{if .CustomerPhone}}<div>{{.CustomerPhone}}</div>{{end}}
  </div>
  <div>
    <div><strong>Invoice No:</strong> {{.InvoiceNo}}</div>
    <div><strong>Date:</strong> {{.IssueDate}}</div>
    <div><strong>Period:</strong> {{.PeriodStart}} to {{.PeriodEnd}}</div>
  </div>
</div>
<table>
  <tr>
    <th>Description</th>
    <th class="num">Qty</th>
    <th class="num">Rate</th>
    <th class="num">Amount</th>
  </tr>
  {{range .Lines}}
  <tr>
    <td>{{.Description}}</td>
    <td class="num">{{.Quantity}}</td>
    <td class="num">{{printf "%.2f" .UnitRate}}</td>
    <td class="num">{{printf "%.2f" .LineTotal}}</td>
  </tr>
  {{end}}
  <tr class="total-row">
    <td colspan="3">Grand Total</td>
    <td class="num">{{printf "%.2f" .Total}}</td>
  </tr>
</table>
<div class="words">Rupees {{.AmountInWords}}</div>
<div class="status">Status: {{.Status}}</div>
</body>
</html>`
