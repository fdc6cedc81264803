package workorder

import (
	"errors"
	"time"

	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
)

var (
	// ErrInvalidTransition means the action is not legal from the
	// order's current status. The engine never coerces.
	ErrInvalidTransition = errors.New("invalid work order status transition")
	// ErrInvalidSchedule means startDateTime is not before endDateTime.
	ErrInvalidSchedule = errors.New("startDateTime must be before endDateTime")
)

// Action is a lifecycle operation requested by one of the two parties.
type Action string

const (
	ActionAccept                    Action = "accept"
	ActionRescheduleVendor          Action = "rescheduleByVendor"
	ActionReschedulePropertyManager Action = "rescheduleByPropertyManager"
	ActionClose                     Action = "close"
)

// Outcome is the engine's decision for a legal transition.
type Outcome struct {
	Next         Status
	Notification notification.Type
}

type rule struct {
	actor types.Role
	from  []Status
	next  Status
	notif notification.Type
}

var transitions = map[Action]rule{
	ActionAccept: {
		actor: types.RoleVendor,
		from:  []Status{StatusPending, StatusRescheduleByPropMgr},
		next:  StatusInProgress,
		notif: notification.WorkOrderAcceptedVendor,
	},
	ActionRescheduleVendor: {
		actor: types.RoleVendor,
		from:  []Status{StatusPending, StatusRescheduleByPropMgr},
		next:  StatusRescheduleByVendor,
		notif: notification.WorkOrderRescheduleVendor,
	},
	ActionReschedulePropertyManager: {
		actor: types.RolePropertyManager,
		from:  []Status{StatusPending, StatusAccepted, StatusRescheduleByVendor},
		next:  StatusRescheduleByPropMgr,
		notif: notification.WorkOrderReschedulePropMgr,
	},
	ActionClose: {
		actor: types.RolePropertyManager,
		from:  []Status{StatusInProgress},
		next:  StatusClosed,
		notif: notification.WorkOrderClosedPropMgr,
	},
}

// ActorOf returns the role entitled to perform the action.
func ActorOf(action Action) (types.Role, bool) {
	r, ok := transitions[action]
	return r.actor, ok
}

// Decide maps (current status, action) to the resulting status and the
// notification the transition must fan out. Pure; no I/O.
func Decide(current Status, action Action) (Outcome, error) {
	r, ok := transitions[action]
	if !ok {
		return Outcome{}, ErrInvalidTransition
	}
	for _, s := range r.from {
		if s == current {
			return Outcome{Next: r.next, Notification: r.notif}, nil
		}
	}
	return Outcome{}, ErrInvalidTransition
}

// ValidateSchedule enforces the reschedule date invariant before any
// state is touched.
func ValidateSchedule(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidSchedule
	}
	return nil
}
