package models

import "time"

// Position is the cell a table occupies on the floor plan grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Number      int       `gorm:"not null;uniqueIndex" json:"number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	Position    Position  `gorm:"embedded;embeddedPrefix:position_" json:"position"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
