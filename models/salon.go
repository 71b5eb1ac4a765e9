package models

import (
	"gorm.io/gorm"
)

type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPro  PlanTier = "pro"
)

// TrialDays is the length of the free-plan trial window.
const TrialDays = 15

type Salon struct {
	gorm.Model
	OwnerID     uint        `json:"owner_id" gorm:"uniqueIndex"`
	Owner       User        `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	OpenTime    string      `json:"open_time"`  // "HH:MM", hour resolution
	CloseTime   string      `json:"close_time"` // "HH:MM", hour resolution
	LogoURL     string      `json:"logo_url"`
	Plan        PlanTier    `json:"plan"`
	Services    []Service   `json:"services,omitempty" gorm:"foreignKey:SalonID"`
	Stylists    []Stylist   `json:"stylists,omitempty" gorm:"foreignKey:SalonID"`
	Promotions  []Promotion `json:"promotions,omitempty" gorm:"foreignKey:SalonID"`
	Clients     []Client    `json:"clients,omitempty" gorm:"foreignKey:SalonID"`
	Bookings    []Booking   `json:"bookings,omitempty" gorm:"foreignKey:SalonID"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.Plan == "" {
		s.Plan = PlanFree
	}
	if s.OpenTime == "" {
		s.OpenTime = "09:00"
	}
	if s.CloseTime == "" {
		s.CloseTime = "18:00"
	}
	return nil
}
