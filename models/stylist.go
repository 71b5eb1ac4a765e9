package models

import (
	"gorm.io/gorm"
)

type Stylist struct {
	gorm.Model
	SalonID uint   `json:"salon_id" gorm:"index"`
	Name    string `json:"name"`
}
