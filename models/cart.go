package models

import "time"

type Cart struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TableID   *uint      `gorm:"index" json:"table_id,omitempty"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     string    `gorm:"type:varchar(36);not null;index" json:"cart_id"`
	MenuItemID uint      `gorm:"not null" json:"menu_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"unit_price"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// Subtotal is unit price times quantity.
func (ci CartItem) Subtotal() int64 {
	return ci.UnitPrice * int64(ci.Quantity)
}

// Total sums every line of the cart.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount returns the number of distinct lines, which is what the cart badge shows.
func (c *Cart) ItemCount() int {
	return len(c.Items)
}
