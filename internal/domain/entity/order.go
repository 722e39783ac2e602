package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order records the cloth items dropped off by a customer, with a derived
// total. Total is persisted redundantly and recomputed by the service on
// every create/edit; the invariant is Total == sum of item line totals.
type Order struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderNo    string             `gorm:"size:100;unique;not null" json:"order_no"`
	Total      float64            `gorm:"type:decimal(10,2);default:0" json:"total"`
	Status     enum.PaymentStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time          `json:"last_modified"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a single cloth-type line on an order. UnitRate is snapshotted
// from the catalog at entry time so later rate changes do not rewrite
// existing orders.
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ClothTypeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"cloth_type_id"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitRate    float64        `gorm:"type:decimal(10,2);not null" json:"unit_rate"`
	LineTotal   float64        `gorm:"type:decimal(10,2);not null" json:"line_total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order     Order      `gorm:"foreignKey:OrderID" json:"-"`
	ClothType *ClothType `gorm:"foreignKey:ClothTypeID" json:"cloth_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
