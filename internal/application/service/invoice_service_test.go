package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
)

func newInvoiceServiceFixture() (*InvoiceService, *stubBillRepo, *stubOrderRepo, *stubClothTypeRepo, *stubShopRepo) {
	billRepo := newStubBillRepo()
	orderRepo := newStubOrderRepo()
	clothTypeRepo := newStubClothTypeRepo()
	shopRepo := newStubShopRepo()
	svc := NewInvoiceService(billRepo, orderRepo, clothTypeRepo, shopRepo)
	return svc, billRepo, orderRepo, clothTypeRepo, shopRepo
}

func TestBuildInvoiceComposesAllOrders(t *testing.T) {
	svc, billRepo, orderRepo, clothTypeRepo, shopRepo := newInvoiceServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	_ = shopRepo.Create(ctx, &entity.Shop{
		UserID:   ownerID,
		ShopName: "Sparkle Laundry",
		Mobile:   "9876543210",
	})

	shirt := &entity.ClothType{UserID: ownerID, Name: "Shirt", UnitRate: 10}
	saree := &entity.ClothType{UserID: ownerID, Name: "Saree", UnitRate: 50}
	_ = clothTypeRepo.Create(ctx, shirt)
	_ = clothTypeRepo.Create(ctx, saree)

	customerName := "Asha"
	order1 := &entity.Order{
		UserID: ownerID,
		Total:  20,
		Items: []entity.OrderItem{
			{ClothTypeID: shirt.ID, Quantity: 2, UnitRate: 10, LineTotal: 20},
		},
	}
	order2 := &entity.Order{
		UserID: ownerID,
		Total:  50,
		Items: []entity.OrderItem{
			{ClothTypeID: saree.ID, Quantity: 1, UnitRate: 50, LineTotal: 50},
		},
	}
	_ = orderRepo.Create(ctx, order1)
	_ = orderRepo.Create(ctx, order2)

	bill := &entity.Bill{
		ID:        uuid.MustParse("abcde111-2222-3333-4444-555566667777"),
		UserID:    ownerID,
		OrderIDs:  []uuid.UUID{order1.ID, order2.ID},
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Total:     70,
		Status:    enum.PaymentStatusPending,
		Customer:  &entity.Customer{Name: customerName},
		CreatedAt: time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC),
	}
	billRepo.bills[bill.ID] = bill

	invoice, err := svc.BuildInvoice(ctx, bill.ID)
	if err != nil {
		t.Fatalf("BuildInvoice: %v", err)
	}

	if invoice.InvoiceNo != "ABCDE" {
		t.Errorf("invoice no = %q, want ABCDE", invoice.InvoiceNo)
	}
	if invoice.Header.ShopName != "Sparkle Laundry" {
		t.Errorf("shop name = %q", invoice.Header.ShopName)
	}
	if invoice.CustomerName != customerName {
		t.Errorf("customer = %q, want %q", invoice.CustomerName, customerName)
	}
	if len(invoice.Lines) != 2 {
		t.Fatalf("lines = %d, want one per item across all orders", len(invoice.Lines))
	}
	if invoice.Total != 70 {
		t.Errorf("total = %v, want 70", invoice.Total)
	}
	if invoice.AmountInWords != "seventy only" {
		t.Errorf("amount in words = %q, want %q", invoice.AmountInWords, "seventy only")
	}
}

func TestBuildInvoiceMissingRecordsBecomePlaceholders(t *testing.T) {
	svc, billRepo, orderRepo, _, _ := newInvoiceServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	// The cloth type behind this line no longer exists
	order := &entity.Order{
		UserID: ownerID,
		Total:  30,
		Items: []entity.OrderItem{
			{ClothTypeID: uuid.New(), Quantity: 3, UnitRate: 10, LineTotal: 30},
		},
	}
	_ = orderRepo.Create(ctx, order)

	// No customer on the bill, no shop profile configured
	bill := &entity.Bill{
		ID:        uuid.New(),
		UserID:    ownerID,
		OrderIDs:  []uuid.UUID{order.ID},
		StartDate: time.Now(),
		EndDate:   time.Now(),
		Total:     30,
		CreatedAt: time.Now(),
	}
	billRepo.bills[bill.ID] = bill

	invoice, err := svc.BuildInvoice(ctx, bill.ID)
	if err != nil {
		t.Fatalf("BuildInvoice: %v", err)
	}

	if invoice.CustomerName != "N/A" {
		t.Errorf("customer = %q, want N/A", invoice.CustomerName)
	}
	if len(invoice.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(invoice.Lines))
	}
	if invoice.Lines[0].Description != "N/A" {
		t.Errorf("description = %q, want N/A", invoice.Lines[0].Description)
	}
	// The snapshot amounts survive the missing catalog entry
	if invoice.Lines[0].LineTotal != 30 {
		t.Errorf("line total = %v, want 30", invoice.Lines[0].LineTotal)
	}
}

func TestRenderInvoiceProducesHTMLDocument(t *testing.T) {
	svc, billRepo, orderRepo, clothTypeRepo, shopRepo := newInvoiceServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	_ = shopRepo.Create(ctx, &entity.Shop{UserID: ownerID, ShopName: "Sparkle Laundry"})

	towel := &entity.ClothType{UserID: ownerID, Name: "Towel", UnitRate: 15}
	_ = clothTypeRepo.Create(ctx, towel)

	order := &entity.Order{
		UserID: ownerID,
		Total:  45,
		Items: []entity.OrderItem{
			{ClothTypeID: towel.ID, Quantity: 3, UnitRate: 15, LineTotal: 45},
		},
	}
	_ = orderRepo.Create(ctx, order)

	bill := &entity.Bill{
		ID:        uuid.New(),
		UserID:    ownerID,
		OrderIDs:  []uuid.UUID{order.ID},
		StartDate: time.Now(),
		EndDate:   time.Now(),
		Total:     45,
		Customer:  &entity.Customer{Name: "Asha"},
		CreatedAt: time.Now(),
	}
	billRepo.bills[bill.ID] = bill

	html, err := svc.RenderInvoice(ctx, bill.ID)
	if err != nil {
		t.Fatalf("RenderInvoice: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Sparkle Laundry",
		"Asha",
		"Towel",
		"45.00",
		"forty five only",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered invoice missing %q", want)
		}
	}
}
