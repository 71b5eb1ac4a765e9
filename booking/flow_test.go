package booking

import (
	"testing"
)

func TestFlowHappyPath(t *testing.T) {
	flow := NewFlow("sid", 1, false)
	if flow.Step != StepSelectService {
		t.Fatalf("entry step = %s, want %s", flow.Step, StepSelectService)
	}

	flow, err := flow.SelectService(7)
	if err != nil {
		t.Fatalf("SelectService: %v", err)
	}
	if flow.Step != StepSchedule || flow.ServiceID != 7 {
		t.Fatalf("after select: %+v", flow)
	}

	flow, err = flow.Schedule(3, "2024-06-10", "09:30")
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if flow.Step != StepConfirmDetails || flow.StylistID != 3 || flow.Date != "2024-06-10" || flow.Time != "09:30" {
		t.Fatalf("after schedule: %+v", flow)
	}

	flow, err = flow.Confirm()
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if flow.Step != StepConfirmed {
		t.Fatalf("final step = %s, want %s", flow.Step, StepConfirmed)
	}
}

func TestFlowBlockedAtEntry(t *testing.T) {
	flow := NewFlow("sid", 1, true)
	if flow.Step != StepBlocked {
		t.Fatalf("entry step = %s, want %s", flow.Step, StepBlocked)
	}

	if _, err := flow.SelectService(7); err == nil {
		t.Fatal("blocked flow accepted a service selection")
	}
	if _, err := flow.Schedule(3, "2024-06-10", "09:30"); err == nil {
		t.Fatal("blocked flow accepted a schedule")
	}
	if _, err := flow.Confirm(); err == nil {
		t.Fatal("blocked flow accepted a confirmation")
	}
}

func TestFlowRejectsOutOfOrderTransitions(t *testing.T) {
	flow := NewFlow("sid", 1, false)

	if _, err := flow.Schedule(3, "2024-06-10", "09:30"); err == nil {
		t.Fatal("scheduled before selecting a service")
	}
	if _, err := flow.Confirm(); err == nil {
		t.Fatal("confirmed before selecting a service")
	}

	flow, _ = flow.SelectService(7)
	if _, err := flow.SelectService(8); err == nil {
		t.Fatal("no backward transition: re-selecting a service must fail")
	}

	flow, _ = flow.Schedule(3, "2024-06-10", "09:30")
	flow, _ = flow.Confirm()
	if _, err := flow.Confirm(); err == nil {
		t.Fatal("confirmed twice")
	}
}

func TestFlowValidatesInputs(t *testing.T) {
	flow := NewFlow("sid", 1, false)

	if _, err := flow.SelectService(0); err == nil {
		t.Fatal("accepted a zero service id")
	}

	flow, _ = flow.SelectService(7)
	cases := []struct {
		name    string
		stylist uint
		date    string
		slot    string
	}{
		{"missing stylist", 0, "2024-06-10", "09:30"},
		{"missing date", 3, "", "09:30"},
		{"missing time", 3, "2024-06-10", ""},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := flow.Schedule(tt.stylist, tt.date, tt.slot); err == nil {
				t.Fatal("incomplete schedule accepted")
			}
		})
	}
}
