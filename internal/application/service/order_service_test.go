package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/events"
)

func newOrderServiceFixture() (*OrderService, *stubOrderRepo, *stubOrderItemRepo, *stubCustomerRepo, *stubClothTypeRepo) {
	orderRepo := newStubOrderRepo()
	orderItemRepo := newStubOrderItemRepo()
	customerRepo := newStubCustomerRepo()
	clothTypeRepo := newStubClothTypeRepo()
	svc := NewOrderService(orderRepo, orderItemRepo, customerRepo, clothTypeRepo, events.New())
	return svc, orderRepo, orderItemRepo, customerRepo, clothTypeRepo
}

func TestCreateOrderPricesItemsFromCatalog(t *testing.T) {
	svc, _, _, customerRepo, clothTypeRepo := newOrderServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	shirt := &entity.ClothType{UserID: ownerID, Name: "Shirt", UnitRate: 12.50}
	pant := &entity.ClothType{UserID: ownerID, Name: "Pant", UnitRate: 20}
	_ = clothTypeRepo.Create(ctx, shirt)
	_ = clothTypeRepo.Create(ctx, pant)

	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: customer.ID,
		Items: []OrderItemInput{
			{ClothTypeID: shirt.ID, Quantity: 4},
			{ClothTypeID: pant.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.Total != 90 {
		t.Errorf("total = %v, want 90", order.Total)
	}
	if order.Status != enum.PaymentStatusPending {
		t.Errorf("status = %v, want Pending", order.Status)
	}
	if order.OrderNo == "" {
		t.Error("order number not assigned")
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	for _, item := range order.Items {
		if item.LineTotal != item.UnitRate*float64(item.Quantity) {
			t.Errorf("line total %v does not match rate %v x qty %d", item.LineTotal, item.UnitRate, item.Quantity)
		}
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, _, customerRepo, clothTypeRepo := newOrderServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	shirt := &entity.ClothType{UserID: ownerID, Name: "Shirt", UnitRate: 12.50}
	_ = clothTypeRepo.Create(ctx, shirt)

	tests := []struct {
		name  string
		input CreateOrderInput
	}{
		{
			name:  "unknown customer",
			input: CreateOrderInput{CustomerID: uuid.New(), Items: []OrderItemInput{{ClothTypeID: shirt.ID, Quantity: 1}}},
		},
		{
			name:  "no items",
			input: CreateOrderInput{CustomerID: customer.ID},
		},
		{
			name:  "zero quantity",
			input: CreateOrderInput{CustomerID: customer.ID, Items: []OrderItemInput{{ClothTypeID: shirt.ID, Quantity: 0}}},
		},
		{
			name:  "unknown cloth type",
			input: CreateOrderInput{CustomerID: customer.ID, Items: []OrderItemInput{{ClothTypeID: uuid.New(), Quantity: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateOrder(ctx, &tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestUpdateOrderReplacesItemsAndRecomputesTotal(t *testing.T) {
	svc, _, orderItemRepo, customerRepo, clothTypeRepo := newOrderServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	shirt := &entity.ClothType{UserID: ownerID, Name: "Shirt", UnitRate: 10}
	saree := &entity.ClothType{UserID: ownerID, Name: "Saree", UnitRate: 60}
	_ = clothTypeRepo.Create(ctx, shirt)
	_ = clothTypeRepo.Create(ctx, saree)

	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ClothTypeID: shirt.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	updated, err := svc.UpdateOrder(ctx, &UpdateOrderInput{
		ID:    order.ID,
		Items: []OrderItemInput{{ClothTypeID: saree.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}

	if updated.Total != 120 {
		t.Errorf("total = %v, want 120", updated.Total)
	}
	items, _ := orderItemRepo.GetByOrderID(ctx, order.ID)
	if len(items) != 1 || items[0].ClothTypeID != saree.ID {
		t.Errorf("items not replaced: %+v", items)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _, _, customerRepo, clothTypeRepo := newOrderServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)
	shirt := &entity.ClothType{UserID: ownerID, Name: "Shirt", UnitRate: 10}
	_ = clothTypeRepo.Create(ctx, shirt)

	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ClothTypeID: shirt.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, enum.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if updated.Status != enum.PaymentStatusPaid {
		t.Errorf("status = %v, want Paid", updated.Status)
	}

	if _, err := svc.UpdateOrderStatus(ctx, order.ID, enum.PaymentStatus(42)); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestDeleteOrder(t *testing.T) {
	svc, orderRepo, _, customerRepo, clothTypeRepo := newOrderServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)
	shirt := &entity.ClothType{UserID: ownerID, Name: "Shirt", UnitRate: 10}
	_ = clothTypeRepo.Create(ctx, shirt)

	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ClothTypeID: shirt.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := svc.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if got, _ := orderRepo.GetByID(ctx, order.ID); got != nil {
		t.Error("order still present after delete")
	}
	if err := svc.DeleteOrder(ctx, order.ID); err == nil {
		t.Error("expected error deleting a missing order")
	}
}
