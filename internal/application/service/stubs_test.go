package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/domain/repository"
	infraRepo "github.com/washbook/washbook-api/internal/infrastructure/repository"
	"github.com/washbook/washbook-api/pkg/pagination"
)

func ownerContext(ownerID uuid.UUID) context.Context {
	return infraRepo.WithOwner(context.Background(), ownerID)
}

type stubCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
	deleted   []uuid.UUID
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *stubCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type stubClothTypeRepo struct {
	clothTypes map[uuid.UUID]*entity.ClothType
}

func newStubClothTypeRepo() *stubClothTypeRepo {
	return &stubClothTypeRepo{clothTypes: make(map[uuid.UUID]*entity.ClothType)}
}

func (r *stubClothTypeRepo) Create(_ context.Context, ct *entity.ClothType) error {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	r.clothTypes[ct.ID] = ct
	return nil
}

func (r *stubClothTypeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ClothType, error) {
	return r.clothTypes[id], nil
}

func (r *stubClothTypeRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.ClothType, error) {
	var out []entity.ClothType
	for _, id := range ids {
		if ct, ok := r.clothTypes[id]; ok {
			out = append(out, *ct)
		}
	}
	return out, nil
}

func (r *stubClothTypeRepo) Update(_ context.Context, ct *entity.ClothType) error {
	r.clothTypes[ct.ID] = ct
	return nil
}

func (r *stubClothTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clothTypes, id)
	return nil
}

func (r *stubClothTypeRepo) List(_ context.Context) ([]entity.ClothType, error) {
	var out []entity.ClothType
	for _, ct := range r.clothTypes {
		out = append(out, *ct)
	}
	return out, nil
}

type stubOrderRepo struct {
	orders  map[uuid.UUID]*entity.Order
	deleted []uuid.UUID
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *stubOrderRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubOrderRepo) List(_ context.Context, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *stubOrderRepo) ListByCustomerAndRange(_ context.Context, customerID uuid.UUID, start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.CustomerID != customerID {
			continue
		}
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

type stubOrderItemRepo struct {
	items map[uuid.UUID][]entity.OrderItem
}

func newStubOrderItemRepo() *stubOrderItemRepo {
	return &stubOrderItemRepo{items: make(map[uuid.UUID][]entity.OrderItem)}
}

func (r *stubOrderItemRepo) CreateBatch(_ context.Context, items []entity.OrderItem) error {
	for _, item := range items {
		r.items[item.OrderID] = append(r.items[item.OrderID], item)
	}
	return nil
}

func (r *stubOrderItemRepo) GetByOrderID(_ context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *stubOrderItemRepo) DeleteByOrderID(_ context.Context, orderID uuid.UUID) error {
	delete(r.items, orderID)
	return nil
}

type stubBillRepo struct {
	bills   map[uuid.UUID]*entity.Bill
	deleted []uuid.UUID
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *stubBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now()
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *stubBillRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	return r.bills[id], nil
}

func (r *stubBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubBillRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if b, ok := r.bills[id]; ok {
		b.Status = status
	}
	return nil
}

func (r *stubBillRepo) ListWithCursor(_ context.Context, params *repository.BillCursorFilterParams) ([]entity.Bill, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, nil
}

type stubActivityRepo struct {
	mu         sync.Mutex
	activities []entity.Activity
}

func (r *stubActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *stubActivityRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.Activity, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Activity, len(r.activities))
	copy(out, r.activities)
	return out, int64(len(out)), nil
}

type stubShopRepo struct {
	shops map[uuid.UUID]*entity.Shop
}

func newStubShopRepo() *stubShopRepo {
	return &stubShopRepo{shops: make(map[uuid.UUID]*entity.Shop)}
}

func (r *stubShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	r.shops[shop.UserID] = shop
	return nil
}

func (r *stubShopRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entity.Shop, error) {
	return r.shops[userID], nil
}

func (r *stubShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	r.shops[shop.UserID] = shop
	return nil
}
