package availability

import (
	"testing"
	"time"

	"randevio/models"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 4, 15, hour, min, 0, 0, time.UTC)
}

func TestOccupiedSlots_RoundsUpToSlotWidth(t *testing.T) {
	// 75 minutes spans three 30-minute slots, not two and a half.
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, OccupiedSlots(at(9, 0), 75))
}

func TestOccupiedSlots_ExactFit(t *testing.T) {
	assert.Equal(t, []string{"10:00"}, OccupiedSlots(at(10, 0), 30))
	assert.Equal(t, []string{"10:00", "10:30"}, OccupiedSlots(at(10, 0), 60))
}

func TestOccupiedSlots_MissingDurationDefaultsToOneSlot(t *testing.T) {
	assert.Equal(t, []string{"14:00"}, OccupiedSlots(at(14, 0), 0))
	assert.Equal(t, []string{"14:00"}, OccupiedSlots(at(14, 0), -10))
}

func TestBookedSlots_DeduplicatesOverlaps(t *testing.T) {
	// Two appointments sharing the 09:30 slot must report it once.
	appointments := []models.Appointment{
		{Date: at(9, 0), Duration: 60, Status: models.AppointmentConfirmed},
		{Date: at(9, 30), Duration: 30, Status: models.AppointmentPending},
	}
	assert.Equal(t, []string{"09:00", "09:30"}, BookedSlots(appointments))
}

func TestBookedSlots_SortedAcrossAppointments(t *testing.T) {
	appointments := []models.Appointment{
		{Date: at(15, 0), Duration: 30},
		{Date: at(9, 0), Duration: 30},
		{Date: at(11, 30), Duration: 45},
	}
	assert.Equal(t, []string{"09:00", "11:30", "12:00", "15:00"}, BookedSlots(appointments))
}

func TestBookedSlots_Idempotent(t *testing.T) {
	appointments := []models.Appointment{
		{Date: at(9, 0), Duration: 75},
		{Date: at(9, 0), Duration: 75},
	}
	first := BookedSlots(appointments)
	second := BookedSlots(appointments)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, first)
}

func TestBookedSlots_Empty(t *testing.T) {
	assert.Empty(t, BookedSlots(nil))
}
