package models

import "time"

// Menu categories used by the seeded menu.
const (
	CategoryCoffee    = "coffee"
	CategoryNonCoffee = "non-coffee"
	CategoryPastry    = "pastry"
	CategoryFood      = "food"
)

// CategoryAll is the pseudo-category that disables filtering.
const CategoryAll = "all"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
