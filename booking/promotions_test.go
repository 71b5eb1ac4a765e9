package booking

import (
	"testing"

	"github.com/salonflow/salonflow/models"
)

var haircut = models.Service{Name: "Haircut", Price: 100}

// 2024-06-10 is a Monday (UTC day 1).
const monday = "2024-06-10"

func promo(id uint, kind models.PromotionKind, target string, discount float64, active bool) models.Promotion {
	p := models.Promotion{Kind: kind, Target: target, Discount: discount, Active: active}
	p.ID = id
	return p
}

func TestSelectPromotionDayBeatsService(t *testing.T) {
	promotions := []models.Promotion{
		promo(1, models.PromotionService, "Haircut", 10, true),
		promo(2, models.PromotionDay, "1", 20, true),
	}

	selected := SelectPromotion(promotions, haircut, monday)
	if selected == nil || selected.ID != 2 {
		t.Fatalf("selected = %+v, want the day promotion", selected)
	}
	if price := FinalPrice(haircut, selected); price != 80 {
		t.Fatalf("final price = %v, want 80 (20%% off 100)", price)
	}
}

func TestSelectPromotion(t *testing.T) {
	servicePromo := promo(1, models.PromotionService, "Haircut", 10, true)
	dayPromo := promo(2, models.PromotionDay, "1", 20, true)
	inactiveDay := promo(3, models.PromotionDay, "1", 50, false)
	otherService := promo(4, models.PromotionService, "Coloring", 30, true)
	tuesdayPromo := promo(5, models.PromotionDay, "2", 15, true)

	cases := []struct {
		name       string
		promotions []models.Promotion
		date       string
		wantID     uint // 0 means none
	}{
		{"service only", []models.Promotion{servicePromo}, monday, 1},
		{"day only", []models.Promotion{dayPromo}, monday, 2},
		{"none match", []models.Promotion{otherService, tuesdayPromo}, monday, 0},
		{"inactive excluded", []models.Promotion{inactiveDay}, monday, 0},
		{"no date, day promo cannot match", []models.Promotion{dayPromo, servicePromo}, "", 1},
		{"empty list", nil, monday, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPromotion(tt.promotions, haircut, tt.date)
			if tt.wantID == 0 {
				if got != nil {
					t.Fatalf("selected = %+v, want none", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Fatalf("selected = %+v, want promotion %d", got, tt.wantID)
			}
		})
	}
}

func TestMatchingPromotionsShowsAllEligible(t *testing.T) {
	promotions := []models.Promotion{
		promo(1, models.PromotionService, "Haircut", 10, true),
		promo(2, models.PromotionDay, "1", 20, true),
	}

	matches := MatchingPromotions(promotions, haircut, monday)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want both the service and the day promotion", len(matches))
	}
	if matches[0].ID != 1 || matches[1].ID != 2 {
		t.Fatalf("matches = %+v, want service promo first then day promo", matches)
	}

	// The display list is wider than what gets charged.
	if selected := SelectPromotion(promotions, haircut, monday); selected.ID != 2 {
		t.Fatalf("selected = %+v, want only the day promotion applied", selected)
	}
}

func TestFinalPrice(t *testing.T) {
	cases := []struct {
		name     string
		discount *float64
		want     float64
	}{
		{"no promotion", nil, 100},
		{"quarter off", f(25), 75},
		{"zero discount", f(0), 100},
		{"full discount", f(100), 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var p *models.Promotion
			if tt.discount != nil {
				pp := promo(1, models.PromotionService, "Haircut", *tt.discount, true)
				p = &pp
			}
			if got := FinalPrice(haircut, p); got != tt.want {
				t.Fatalf("FinalPrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func f(v float64) *float64 { return &v }
