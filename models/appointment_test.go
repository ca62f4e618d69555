package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_Valid(t *testing.T) {
	assert.True(t, AppointmentPending.Valid())
	assert.True(t, AppointmentNoShow.Valid())
	assert.False(t, AppointmentStatus("BOOKED").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestCanTransition_ForwardPaths(t *testing.T) {
	assert.True(t, AppointmentPending.CanTransition(AppointmentConfirmed))
	assert.True(t, AppointmentPending.CanTransition(AppointmentCancelled))
	assert.True(t, AppointmentConfirmed.CanTransition(AppointmentCompleted))
	assert.True(t, AppointmentConfirmed.CanTransition(AppointmentNoShow))
	assert.True(t, AppointmentInProgress.CanTransition(AppointmentCompleted))
}

func TestCanTransition_NoBackwardPaths(t *testing.T) {
	assert.False(t, AppointmentConfirmed.CanTransition(AppointmentPending))
	assert.False(t, AppointmentInProgress.CanTransition(AppointmentConfirmed))
	assert.False(t, AppointmentInProgress.CanTransition(AppointmentNoShow))
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []AppointmentStatus{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		for _, next := range []AppointmentStatus{AppointmentPending, AppointmentConfirmed, AppointmentInProgress, AppointmentCompleted} {
			assert.False(t, terminal.CanTransition(next), "%s should not move to %s", terminal, next)
		}
	}
}

func TestCanTransition_RejectsSelfAndInvalid(t *testing.T) {
	assert.False(t, AppointmentPending.CanTransition(AppointmentPending))
	assert.False(t, AppointmentPending.CanTransition(AppointmentStatus("ARCHIVED")))
}

func TestRequestStatus_OpenSet(t *testing.T) {
	assert.Contains(t, OpenRequestStatuses, RequestActive)
	assert.Contains(t, OpenRequestStatuses, RequestPending)
	assert.NotContains(t, OpenRequestStatuses, RequestAccepted)
}

func TestUrgencyLevel_Valid(t *testing.T) {
	assert.True(t, UrgencyLow.Valid())
	assert.True(t, UrgencyUrgent.Valid())
	assert.False(t, UrgencyLevel(-1).Valid())
	assert.False(t, UrgencyLevel(4).Valid())
}
