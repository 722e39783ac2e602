package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/events"
	"github.com/washbook/washbook-api/pkg/apperror"
)

func newBillServiceFixture() (*BillService, *stubBillRepo, *stubOrderRepo, *stubCustomerRepo) {
	billRepo := newStubBillRepo()
	orderRepo := newStubOrderRepo()
	customerRepo := newStubCustomerRepo()
	svc := NewBillService(billRepo, orderRepo, customerRepo, events.New())
	return svc, billRepo, orderRepo, customerRepo
}

func TestGenerateBillSumsOrderTotals(t *testing.T) {
	svc, billRepo, orderRepo, customerRepo := newBillServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, total := range []float64{150.25, 200.25} {
		_ = orderRepo.Create(ctx, &entity.Order{
			UserID:     ownerID,
			CustomerID: customer.ID,
			Total:      total,
			CreatedAt:  day.Add(10 * time.Hour),
		})
	}

	bill, err := svc.GenerateBill(ctx, &GenerateBillInput{
		CustomerID: customer.ID,
		StartDate:  day,
		EndDate:    day,
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	if bill.Total != 350.50 {
		t.Errorf("total = %v, want 350.50", bill.Total)
	}
	if bill.Status != enum.PaymentStatusPending {
		t.Errorf("status = %v, want Pending", bill.Status)
	}
	if len(bill.OrderIDs) != 2 {
		t.Errorf("order ids = %d, want 2", len(bill.OrderIDs))
	}
	if len(billRepo.bills) != 1 {
		t.Errorf("stored bills = %d, want 1", len(billRepo.bills))
	}
}

func TestGenerateBillNoOrdersInRange(t *testing.T) {
	svc, billRepo, orderRepo, customerRepo := newBillServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	// Order exists but outside the requested period
	_ = orderRepo.Create(ctx, &entity.Order{
		UserID:     ownerID,
		CustomerID: customer.ID,
		Total:      99,
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	_, err := svc.GenerateBill(ctx, &GenerateBillInput{
		CustomerID: customer.ID,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, apperror.ErrNoOrdersInRange) {
		t.Fatalf("err = %v, want ErrNoOrdersInRange", err)
	}
	if len(billRepo.bills) != 0 {
		t.Errorf("stored bills = %d, want none", len(billRepo.bills))
	}
}

func TestGenerateBillPeriodBoundsAreInclusive(t *testing.T) {
	svc, _, orderRepo, customerRepo := newBillServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	included := []time.Time{
		start.Add(30 * time.Minute),                  // early on the first day
		end.Add(23*time.Hour + 30*time.Minute),       // late on the last day
		time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC), // middle of the period
	}
	for _, createdAt := range included {
		_ = orderRepo.Create(ctx, &entity.Order{
			UserID:     ownerID,
			CustomerID: customer.ID,
			Total:      10,
			CreatedAt:  createdAt,
		})
	}
	// The morning after the period ends
	_ = orderRepo.Create(ctx, &entity.Order{
		UserID:     ownerID,
		CustomerID: customer.ID,
		Total:      500,
		CreatedAt:  time.Date(2026, 3, 13, 0, 10, 0, 0, time.UTC),
	})

	bill, err := svc.GenerateBill(ctx, &GenerateBillInput{
		CustomerID: customer.ID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}
	if len(bill.OrderIDs) != 3 {
		t.Errorf("order ids = %d, want 3", len(bill.OrderIDs))
	}
	if bill.Total != 30 {
		t.Errorf("total = %v, want 30", bill.Total)
	}
}

func TestGenerateBillRejectsInvertedPeriod(t *testing.T) {
	svc, _, _, customerRepo := newBillServiceFixture()

	ctx := ownerContext(uuid.New())
	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	_, err := svc.GenerateBill(ctx, &GenerateBillInput{
		CustomerID: customer.ID,
		StartDate:  time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err == nil {
		t.Fatal("expected error for end date before start date")
	}
}

func TestGenerateBillUnknownCustomer(t *testing.T) {
	svc, _, _, _ := newBillServiceFixture()

	_, err := svc.GenerateBill(ownerContext(uuid.New()), &GenerateBillInput{
		CustomerID: uuid.New(),
		StartDate:  time.Now(),
		EndDate:    time.Now(),
	})
	if err == nil {
		t.Fatal("expected error for unknown customer")
	}
}

func TestUpdateBillStatus(t *testing.T) {
	svc, billRepo, _, _ := newBillServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	bill := &entity.Bill{UserID: ownerID, CustomerID: uuid.New(), Total: 100}
	_ = billRepo.Create(ctx, bill)

	// Status toggles freely in both directions
	transitions := []enum.PaymentStatus{
		enum.PaymentStatusPaid,
		enum.PaymentStatusUnpaid,
		enum.PaymentStatusPaid,
		enum.PaymentStatusPending,
	}
	for _, status := range transitions {
		updated, err := svc.UpdateBillStatus(ctx, bill.ID, status)
		if err != nil {
			t.Fatalf("UpdateBillStatus(%v): %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %v, want %v", updated.Status, status)
		}
	}

	if _, err := svc.UpdateBillStatus(ctx, bill.ID, enum.PaymentStatus(9)); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestDeleteBillLeavesOrdersIntact(t *testing.T) {
	svc, billRepo, orderRepo, customerRepo := newBillServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	order := &entity.Order{
		UserID:     ownerID,
		CustomerID: customer.ID,
		Total:      75,
		CreatedAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	_ = orderRepo.Create(ctx, order)

	bill, err := svc.GenerateBill(ctx, &GenerateBillInput{
		CustomerID: customer.ID,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	if err := svc.DeleteBill(ctx, bill.ID); err != nil {
		t.Fatalf("DeleteBill: %v", err)
	}
	if len(billRepo.bills) != 0 {
		t.Errorf("stored bills = %d, want none", len(billRepo.bills))
	}
	if got, _ := orderRepo.GetByID(ctx, order.ID); got == nil {
		t.Error("order was deleted along with the bill")
	}
}

func TestGenerateBillTotalIsSnapshot(t *testing.T) {
	svc, _, orderRepo, customerRepo := newBillServiceFixture()

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	customer := &entity.Customer{Name: "Asha"}
	_ = customerRepo.Create(ctx, customer)

	order := &entity.Order{
		UserID:     ownerID,
		CustomerID: customer.ID,
		Total:      120,
		CreatedAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	_ = orderRepo.Create(ctx, order)

	bill, err := svc.GenerateBill(ctx, &GenerateBillInput{
		CustomerID: customer.ID,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	// Editing the order afterwards must not touch the bill
	order.Total = 999
	_ = orderRepo.Update(ctx, order)

	got, err := svc.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if got.Total != 120 {
		t.Errorf("total = %v, want snapshot 120", got.Total)
	}
}
