package models

import (
	"gorm.io/gorm"
)

type PromotionKind string

const (
	PromotionService PromotionKind = "service"
	PromotionDay     PromotionKind = "day"
)

// Promotion is a discount rule scoped either to one service (Target is
// the service name) or to one day of week (Target is "0".."6", 0=Sunday).
type Promotion struct {
	gorm.Model
	SalonID  uint          `json:"salon_id" gorm:"index"`
	Name     string        `json:"name"`
	Kind     PromotionKind `json:"kind" gorm:"column:kind"`
	Target   string        `json:"target"`
	Discount float64       `json:"discount"` // percentage, 0-100
	Active   bool          `json:"active" gorm:"default:true"`
}
