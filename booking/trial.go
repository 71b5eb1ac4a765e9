package booking

import (
	"math"
	"time"

	"github.com/salonflow/salonflow/models"
)

// Trial is the free-plan trial state, recomputed from the salon's
// creation timestamp on every check; nothing persists an "expired"
// flag.
type Trial struct {
	Expired  bool `json:"expired"`
	DaysLeft int  `json:"days_left"`
}

// CheckTrial evaluates the trial window for a salon. Pro salons never
// expire. For free salons the elapsed days are rounded up, so a salon
// created 15 days and one hour ago counts as 16 days in and is locked.
func CheckTrial(plan models.PlanTier, createdAt, now time.Time) Trial {
	if plan != models.PlanFree {
		return Trial{}
	}
	daysElapsed := int(math.Ceil(now.Sub(createdAt).Hours() / 24))
	if daysElapsed > models.TrialDays {
		return Trial{Expired: true}
	}
	return Trial{DaysLeft: models.TrialDays - daysElapsed}
}
