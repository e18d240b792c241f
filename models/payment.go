package models

import (
	"time"
)

// Status pembayaran
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
)

// Payment represents a (simulated) payment transaction for an order
type Payment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	OrderID     uint       `json:"order_id" gorm:"not null;index"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Method      string     `json:"payment_method" gorm:"type:varchar(20);not null"`
	ReferenceID string     `json:"reference_id" gorm:"type:varchar(36)"`
	PaymentTime *time.Time `json:"payment_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PaymentMethod is an entry of the checkout payment catalog.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PaymentMethods lists the methods offered at checkout, in display order.
var PaymentMethods = []PaymentMethod{
	{ID: "gopay", Name: "GoPay", Icon: "/gopay-icon.png"},
	{ID: "ovo", Name: "OVO", Icon: "/ovo-icon.png"},
	{ID: "dana", Name: "DANA", Icon: "/dana-icon.png"},
	{ID: "bca", Name: "BCA Virtual Account", Icon: "/bca-icon.png"},
}

// FindPaymentMethod looks a method up by id.
func FindPaymentMethod(id string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// AllModels returns every model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Table{},
		&MenuItem{},
		&Cart{},
		&CartItem{},
		&Reservation{},
		&Order{},
		&OrderItem{},
		&Payment{},
	}
}
