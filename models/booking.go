package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// Booking occupies exactly one (stylist, date, time) triple. Date is a
// "YYYY-MM-DD" string and Time a 30-minute slot label "HH:MM", matching
// what the availability engine produces.
type Booking struct {
	gorm.Model
	Reference   string        `json:"reference" gorm:"uniqueIndex"`
	SalonID     uint          `json:"salon_id" gorm:"index"`
	ClientID    uint          `json:"client_id"`
	Client      Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ServiceID   uint          `json:"service_id"`
	Service     Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StylistID   uint          `json:"stylist_id" gorm:"index:idx_bookings_slot"`
	Stylist     Stylist       `json:"stylist,omitempty" gorm:"foreignKey:StylistID"`
	BookingDate string        `json:"booking_date" gorm:"index:idx_bookings_slot"`
	BookingTime string        `json:"booking_time" gorm:"index:idx_bookings_slot"`
	FinalPrice  float64       `json:"final_price"`
	PromotionID *uint         `json:"promotion_id"`
	Promotion   *Promotion    `json:"promotion,omitempty" gorm:"foreignKey:PromotionID"`
	Notes       string        `json:"notes"`
	Status      BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether a booking may move between the two
// statuses. Pending bookings can be confirmed or canceled, confirmed
// ones completed or canceled; completed and canceled are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCanceled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCanceled
	default:
		return false
	}
}

func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}
	b.Status = newStatus
	return tx.Save(b).Error
}
