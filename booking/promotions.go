package booking

import (
	"strconv"
	"time"

	"github.com/salonflow/salonflow/models"
)

// SelectPromotion picks the single promotion to charge against a
// booking, or nil when none applies. A service promotion matches on
// exact service name, a day promotion on the UTC day of week of the
// booking date. When both kinds match, the day promotion wins; this
// priority is established salon policy and must not be reordered.
func SelectPromotion(promotions []models.Promotion, service models.Service, date string) *models.Promotion {
	servicePromo := findServicePromo(promotions, service)
	dayPromo := findDayPromo(promotions, date)

	if dayPromo != nil {
		return dayPromo
	}
	return servicePromo
}

// MatchingPromotions collects every promotion the client is eligible
// for, service match first, for display before the tie-break is
// applied. Distinct from SelectPromotion on purpose: the client sees
// all eligible promotions but is charged with only the winning one.
func MatchingPromotions(promotions []models.Promotion, service models.Service, date string) []models.Promotion {
	var matches []models.Promotion
	if p := findServicePromo(promotions, service); p != nil {
		matches = append(matches, *p)
	}
	if p := findDayPromo(promotions, date); p != nil {
		matches = append(matches, *p)
	}
	return matches
}

// FinalPrice is the chargeable price after the selected promotion.
// The discount is applied as-is; promotions are validated to the 0-100
// range at creation, not here.
func FinalPrice(service models.Service, promotion *models.Promotion) float64 {
	price := service.Price
	if promotion != nil {
		price = price - price*(promotion.Discount/100)
	}
	return price
}

func findServicePromo(promotions []models.Promotion, service models.Service) *models.Promotion {
	for i, p := range promotions {
		if p.Kind == models.PromotionService && p.Target == service.Name && p.Active {
			return &promotions[i]
		}
	}
	return nil
}

func findDayPromo(promotions []models.Promotion, date string) *models.Promotion {
	day, ok := dayOfWeek(date)
	if !ok {
		return nil
	}
	for i, p := range promotions {
		if p.Kind != models.PromotionDay || !p.Active {
			continue
		}
		target, err := strconv.Atoi(p.Target)
		if err != nil {
			continue
		}
		if target == day {
			return &promotions[i]
		}
	}
	return nil
}

// dayOfWeek interprets a "YYYY-MM-DD" date at UTC midnight and returns
// its weekday, 0=Sunday.
func dayOfWeek(date string) (int, bool) {
	if date == "" {
		return 0, false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}
