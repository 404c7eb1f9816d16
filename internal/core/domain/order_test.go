package domain

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "archived", "PENDING", "in_transit"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCanTransition_AllowsEveryPair(t *testing.T) {
	// The lifecycle is deliberately permissive: any known status may be set
	// from any other, including backwards moves.
	for _, from := range Statuses {
		for _, to := range Statuses {
			if !CanTransition(from, to) {
				t.Errorf("expected %s -> %s to be allowed", from, to)
			}
		}
	}
}

func TestCanTransition_RejectsUnknownStatus(t *testing.T) {
	if CanTransition(StatusPending, "archived") {
		t.Error("transition to unknown status must be rejected")
	}
	if CanTransition("archived", StatusPending) {
		t.Error("transition from unknown status must be rejected")
	}
}
