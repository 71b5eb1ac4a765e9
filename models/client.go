package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is created (or refreshed) by the public booking flow. A client
// is unique per salon and phone number; repeat bookings with the same
// phone update the existing row instead of inserting a new one.
type Client struct {
	gorm.Model
	SalonID   uint      `json:"salon_id" gorm:"index;uniqueIndex:idx_clients_salon_phone"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone" gorm:"uniqueIndex:idx_clients_salon_phone"`
	Email     string    `json:"email"`
	LastVisit time.Time `json:"last_visit"`
}
