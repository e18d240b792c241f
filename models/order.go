package models

import (
	"fmt"
	"time"
)

// Checkout steps
const (
	StepContact       = 1
	StepPaymentMethod = 2
	StepReview        = 3
)

// Status order
const (
	OrderStatusDraft      = "draft"
	OrderStatusProcessing = "processing"
	OrderStatusPaid       = "paid"
	OrderStatusExpired    = "expired"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Reference     string      `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	CartID        string      `gorm:"type:varchar(36);index" json:"cart_id"`
	TableID       *uint       `json:"table_id,omitempty"`
	Step          int         `gorm:"not null;default:1" json:"step"`
	Status        string      `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CustomerName  string      `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerEmail string      `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerPhone string      `gorm:"type:varchar(50)" json:"customer_phone"`
	PaymentMethod string      `gorm:"type:varchar(20)" json:"payment_method"`
	TotalAmount   int64       `gorm:"not null;default:0" json:"total_amount"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

// OrderItem is a snapshot of a cart line taken when checkout starts.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	MenuItemID uint      `gorm:"not null" json:"menu_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"unit_price"`
	Subtotal   int64     `gorm:"not null" json:"subtotal"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// IsEditable reports whether the customer may still change contact or payment details.
func (o *Order) IsEditable() bool {
	return o.Status == OrderStatusDraft
}

// ShortReference is the human-friendly order number printed on receipts.
func (o *Order) ShortReference() string {
	if len(o.Reference) < 8 {
		return fmt.Sprintf("ORD-%d", o.ID)
	}
	return fmt.Sprintf("ORD-%s", o.Reference[:8])
}
