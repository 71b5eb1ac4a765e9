package booking

import (
	"testing"
	"time"

	"github.com/salonflow/salonflow/models"
)

func TestCheckTrial(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		plan     models.PlanTier
		created  time.Time
		expired  bool
		daysLeft int
	}{
		{"free, 16 days in", models.PlanFree, now.AddDate(0, 0, -16), true, 0},
		{"free, 10 days in", models.PlanFree, now.AddDate(0, 0, -10), false, 5},
		{"free, exactly 15 days", models.PlanFree, now.AddDate(0, 0, -15), false, 0},
		{"free, 15 days and an hour", models.PlanFree, now.AddDate(0, 0, -15).Add(-time.Hour), true, 0},
		{"free, brand new", models.PlanFree, now.Add(-time.Minute), false, 14},
		{"pro never expires", models.PlanPro, now.AddDate(0, 0, -400), false, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			trial := CheckTrial(tt.plan, tt.created, now)
			if trial.Expired != tt.expired {
				t.Fatalf("expired = %v, want %v", trial.Expired, tt.expired)
			}
			if trial.DaysLeft != tt.daysLeft {
				t.Fatalf("days left = %d, want %d", trial.DaysLeft, tt.daysLeft)
			}
		})
	}
}
