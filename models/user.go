package models

import (
	"time"
)

// User is a salon owner account. Clients booking through the public
// flow never get an account; they live in the clients table.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	Salon     *Salon    `json:"salon,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
