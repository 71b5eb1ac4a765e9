package booking

import (
	"fmt"
)

type FlowStep string

const (
	// StepSelectService is the entry step of the public booking flow.
	StepSelectService FlowStep = "select_service"
	// StepSchedule collects stylist, date and time.
	StepSchedule FlowStep = "schedule"
	// StepConfirmDetails collects the client's contact details.
	StepConfirmDetails FlowStep = "confirm_details"
	// StepConfirmed is terminal; the booking row exists.
	StepConfirmed FlowStep = "confirmed"
	// StepBlocked is the terminal state entered when the salon's trial
	// has expired before the flow starts.
	StepBlocked FlowStep = "blocked"
)

// Flow is the tagged state of one public booking session. Only fields
// valid for steps already passed are ever set; transitions are pure and
// strictly forward — there is no way back to an earlier step.
type Flow struct {
	ID        string   `json:"id"`
	SalonID   uint     `json:"salon_id"`
	Step      FlowStep `json:"step"`
	ServiceID uint     `json:"service_id,omitempty"`
	StylistID uint     `json:"stylist_id,omitempty"`
	Date      string   `json:"date,omitempty"`
	Time      string   `json:"time,omitempty"`
}

// NewFlow starts a session. An expired trial short-circuits straight to
// Blocked.
func NewFlow(id string, salonID uint, trialExpired bool) Flow {
	step := StepSelectService
	if trialExpired {
		step = StepBlocked
	}
	return Flow{ID: id, SalonID: salonID, Step: step}
}

// SelectService moves the flow to the scheduling step.
func (f Flow) SelectService(serviceID uint) (Flow, error) {
	if f.Step != StepSelectService {
		return f, fmt.Errorf("cannot select a service at step %s", f.Step)
	}
	if serviceID == 0 {
		return f, fmt.Errorf("service is required")
	}
	f.ServiceID = serviceID
	f.Step = StepSchedule
	return f, nil
}

// Schedule records stylist, date and slot and moves the flow to the
// confirmation step.
func (f Flow) Schedule(stylistID uint, date, slot string) (Flow, error) {
	if f.Step != StepSchedule {
		return f, fmt.Errorf("cannot schedule at step %s", f.Step)
	}
	if stylistID == 0 || date == "" || slot == "" {
		return f, fmt.Errorf("stylist, date and time are required")
	}
	f.StylistID = stylistID
	f.Date = date
	f.Time = slot
	f.Step = StepConfirmDetails
	return f, nil
}

// Confirm finishes the flow.
func (f Flow) Confirm() (Flow, error) {
	if f.Step != StepConfirmDetails {
		return f, fmt.Errorf("cannot confirm at step %s", f.Step)
	}
	f.Step = StepConfirmed
	return f, nil
}
