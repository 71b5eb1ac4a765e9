package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	SalonID     uint    `json:"salon_id" gorm:"index"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
}
