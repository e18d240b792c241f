package models

import "time"

const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Code          string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"type:varchar(255)" json:"name"`
	PartySize     int       `gorm:"not null" json:"party_size"`
	TotalCapacity int       `gorm:"not null" json:"total_capacity"`
	Status        string    `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	Tables        []Table   `gorm:"many2many:reservation_tables" json:"tables"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
