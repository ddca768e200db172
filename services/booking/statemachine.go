package booking

import (
	"urbanfix/models"
	"urbanfix/utils"
)

// Actor is the resolved relationship of the requesting identity to a booking.
type Actor int

const (
	ActorNone Actor = iota
	ActorCustomer
	ActorProvider
	ActorAdmin
)

// transitionRule describes one action of the booking state machine: which
// states it may be applied in, which actors may apply it, and the resulting
// state. A nil from set means "any state except completed" (generic cancel).
type transitionRule struct {
	from      map[models.BookingStatus]struct{}
	to        models.BookingStatus
	actors    map[Actor]struct{}
	actorHint string
	stateHint string
}

var providerOrAdmin = map[Actor]struct{}{ActorProvider: {}, ActorAdmin: {}}
var customerOrAdmin = map[Actor]struct{}{ActorCustomer: {}, ActorAdmin: {}}
var anyParticipant = map[Actor]struct{}{ActorCustomer: {}, ActorProvider: {}, ActorAdmin: {}}

var transitions = map[models.BookingAction]transitionRule{
	models.ActionAccept: {
		from:      map[models.BookingStatus]struct{}{models.StatusPending: {}},
		to:        models.StatusConfirmed,
		actors:    providerOrAdmin,
		actorHint: "Only provider can accept bookings",
		stateHint: "Can only accept pending bookings",
	},
	models.ActionDecline: {
		from:      map[models.BookingStatus]struct{}{models.StatusPending: {}},
		to:        models.StatusCancelled,
		actors:    providerOrAdmin,
		actorHint: "Only provider can decline bookings",
		stateHint: "Can only decline pending bookings",
	},
	models.ActionStart: {
		from:      map[models.BookingStatus]struct{}{models.StatusConfirmed: {}},
		to:        models.StatusInProgress,
		actors:    providerOrAdmin,
		actorHint: "Only provider can start service",
		stateHint: "Can only start confirmed bookings",
	},
	models.ActionComplete: {
		from:      map[models.BookingStatus]struct{}{models.StatusInProgress: {}},
		to:        models.StatusCompleted,
		actors:    providerOrAdmin,
		actorHint: "Only provider can complete service",
		stateHint: "Can only complete in-progress bookings",
	},
	models.ActionCancel: {
		from:      nil, // any state except completed
		to:        models.StatusCancelled,
		actors:    anyParticipant,
		stateHint: "Cannot cancel completed bookings",
	},
	models.ActionNoShow: {
		from:      map[models.BookingStatus]struct{}{models.StatusConfirmed: {}},
		to:        models.StatusNoShow,
		actors:    customerOrAdmin,
		actorHint: "Only customer can mark as no-show",
		stateHint: "Can only mark confirmed bookings as no-show",
	},
}

// NextStatus validates (current, action, actor) against the transition table
// and returns the resulting status. Actor violations map to 403, state
// violations to 400; either way the caller must not have mutated anything yet.
func NextStatus(current models.BookingStatus, action models.BookingAction, actor Actor) (models.BookingStatus, error) {
	rule, ok := transitions[action]
	if !ok {
		return "", utils.NewValidationError("Invalid action")
	}
	if _, ok := rule.actors[actor]; !ok {
		return "", utils.NewForbiddenError(rule.actorHint)
	}
	if rule.from == nil {
		if current == models.StatusCompleted {
			return "", utils.NewValidationError(rule.stateHint)
		}
		return rule.to, nil
	}
	if _, ok := rule.from[current]; !ok {
		return "", utils.NewValidationError(rule.stateHint)
	}
	return rule.to, nil
}
