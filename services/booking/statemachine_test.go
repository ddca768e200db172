package booking

import (
	"net/http"
	"testing"

	"urbanfix/models"
	"urbanfix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current models.BookingStatus
		action  models.BookingAction
		actor   Actor
		want    models.BookingStatus
	}{
		{"provider accepts pending", models.StatusPending, models.ActionAccept, ActorProvider, models.StatusConfirmed},
		{"admin accepts pending", models.StatusPending, models.ActionAccept, ActorAdmin, models.StatusConfirmed},
		{"provider declines pending", models.StatusPending, models.ActionDecline, ActorProvider, models.StatusCancelled},
		{"provider starts confirmed", models.StatusConfirmed, models.ActionStart, ActorProvider, models.StatusInProgress},
		{"provider completes in-progress", models.StatusInProgress, models.ActionComplete, ActorProvider, models.StatusCompleted},
		{"customer cancels pending", models.StatusPending, models.ActionCancel, ActorCustomer, models.StatusCancelled},
		{"provider cancels confirmed", models.StatusConfirmed, models.ActionCancel, ActorProvider, models.StatusCancelled},
		{"customer cancels in-progress", models.StatusInProgress, models.ActionCancel, ActorCustomer, models.StatusCancelled},
		{"customer marks confirmed no-show", models.StatusConfirmed, models.ActionNoShow, ActorCustomer, models.StatusNoShow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.current, tt.action, tt.actor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatusRejections(t *testing.T) {
	tests := []struct {
		name       string
		current    models.BookingStatus
		action     models.BookingAction
		actor      Actor
		wantStatus int
		wantMsg    string
	}{
		{"customer cannot accept", models.StatusPending, models.ActionAccept, ActorCustomer, http.StatusForbidden, "Only provider can accept bookings"},
		{"customer cannot decline", models.StatusPending, models.ActionDecline, ActorCustomer, http.StatusForbidden, "Only provider can decline bookings"},
		{"customer cannot start", models.StatusConfirmed, models.ActionStart, ActorCustomer, http.StatusForbidden, "Only provider can start service"},
		{"customer cannot complete", models.StatusInProgress, models.ActionComplete, ActorCustomer, http.StatusForbidden, "Only provider can complete service"},
		{"provider cannot mark no-show", models.StatusConfirmed, models.ActionNoShow, ActorProvider, http.StatusForbidden, "Only customer can mark as no-show"},
		{"accept requires pending", models.StatusConfirmed, models.ActionAccept, ActorProvider, http.StatusBadRequest, "Can only accept pending bookings"},
		{"decline requires pending", models.StatusCancelled, models.ActionDecline, ActorProvider, http.StatusBadRequest, "Can only decline pending bookings"},
		{"start requires confirmed", models.StatusPending, models.ActionStart, ActorProvider, http.StatusBadRequest, "Can only start confirmed bookings"},
		{"complete requires in-progress", models.StatusConfirmed, models.ActionComplete, ActorProvider, http.StatusBadRequest, "Can only complete in-progress bookings"},
		{"cannot cancel completed", models.StatusCompleted, models.ActionCancel, ActorCustomer, http.StatusBadRequest, "Cannot cancel completed bookings"},
		{"no-show requires confirmed", models.StatusPending, models.ActionNoShow, ActorCustomer, http.StatusBadRequest, "Can only mark confirmed bookings as no-show"},
		{"unknown action", models.StatusPending, models.BookingAction("pause"), ActorAdmin, http.StatusBadRequest, "Invalid action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextStatus(tt.current, tt.action, tt.actor)
			require.Error(t, err)
			var svcErr *utils.ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantStatus, svcErr.Status)
			assert.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestNextStatusCancelFromNonCompleted(t *testing.T) {
	// Cancel is permitted from every state except completed.
	for _, status := range []models.BookingStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusInProgress,
		models.StatusCancelled, models.StatusNoShow,
	} {
		got, err := NextStatus(status, models.ActionCancel, ActorAdmin)
		require.NoError(t, err, "cancel from %s", status)
		assert.Equal(t, models.StatusCancelled, got)
	}
}
