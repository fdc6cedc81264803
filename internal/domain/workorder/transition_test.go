package workorder

import (
	"errors"
	"testing"
	"time"

	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
)

func TestDecideLegalTransitions(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		action  Action
		next    Status
		notif   notification.Type
	}{
		{"accept from pending", StatusPending, ActionAccept, StatusInProgress, notification.WorkOrderAcceptedVendor},
		{"accept from pm reschedule", StatusRescheduleByPropMgr, ActionAccept, StatusInProgress, notification.WorkOrderAcceptedVendor},
		{"vendor reschedule from pending", StatusPending, ActionRescheduleVendor, StatusRescheduleByVendor, notification.WorkOrderRescheduleVendor},
		{"vendor reschedule from pm reschedule", StatusRescheduleByPropMgr, ActionRescheduleVendor, StatusRescheduleByVendor, notification.WorkOrderRescheduleVendor},
		{"pm reschedule from pending", StatusPending, ActionReschedulePropertyManager, StatusRescheduleByPropMgr, notification.WorkOrderReschedulePropMgr},
		{"pm reschedule from vendor reschedule", StatusRescheduleByVendor, ActionReschedulePropertyManager, StatusRescheduleByPropMgr, notification.WorkOrderReschedulePropMgr},
		{"close from in progress", StatusInProgress, ActionClose, StatusClosed, notification.WorkOrderClosedPropMgr},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decide(tc.current, tc.action)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Next != tc.next {
				t.Fatalf("expected next %q, got %q", tc.next, out.Next)
			}
			if out.Notification != tc.notif {
				t.Fatalf("expected notification %q, got %q", tc.notif, out.Notification)
			}
		})
	}
}

func TestDecideRejectsEverythingElse(t *testing.T) {
	all := []Status{StatusPending, StatusAccepted, StatusRescheduleByVendor,
		StatusRescheduleByPropMgr, StatusInProgress, StatusClosed}
	actions := []Action{ActionAccept, ActionRescheduleVendor,
		ActionReschedulePropertyManager, ActionClose}

	legal := map[Action]map[Status]bool{
		ActionAccept:                    {StatusPending: true, StatusRescheduleByPropMgr: true},
		ActionRescheduleVendor:          {StatusPending: true, StatusRescheduleByPropMgr: true},
		ActionReschedulePropertyManager: {StatusPending: true, StatusAccepted: true, StatusRescheduleByVendor: true},
		ActionClose:                     {StatusInProgress: true},
	}

	for _, a := range actions {
		for _, s := range all {
			if legal[a][s] {
				continue
			}
			if _, err := Decide(s, a); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("Decide(%q, %q): expected ErrInvalidTransition, got %v", s, a, err)
			}
		}
	}
}

func TestDecideUnknownAction(t *testing.T) {
	if _, err := Decide(StatusPending, Action("burn")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestClosedIsTerminal(t *testing.T) {
	for _, a := range []Action{ActionAccept, ActionRescheduleVendor,
		ActionReschedulePropertyManager, ActionClose} {
		if _, err := Decide(StatusClosed, a); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("action %q from closed: expected ErrInvalidTransition, got %v", a, err)
		}
	}
	if !StatusClosed.Terminal() {
		t.Fatal("closed should be terminal")
	}
}

func TestValidateSchedule(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)

	if err := ValidateSchedule(start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSchedule(end, start); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
	if err := ValidateSchedule(start, start); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("equal start/end: expected ErrInvalidSchedule, got %v", err)
	}
}

func TestActorOf(t *testing.T) {
	role, ok := ActorOf(ActionAccept)
	if !ok || role != "vendor" {
		t.Fatalf("expected vendor, got %q ok=%v", role, ok)
	}
	role, ok = ActorOf(ActionClose)
	if !ok || role != "propertyManager" {
		t.Fatalf("expected propertyManager, got %q ok=%v", role, ok)
	}
	if _, ok := ActorOf(Action("nope")); ok {
		t.Fatal("unknown action should not resolve an actor")
	}
}
