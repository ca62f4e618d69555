package availability

import (
	"fmt"
	"sort"
	"time"

	"randevio/models"
)

// SlotMinutes is the fixed width of a booking slot. The calendar grid renders
// in these buckets regardless of any per-business slot configuration.
const SlotMinutes = 30

// DefaultDuration is assumed for appointments whose denormalized duration is
// missing or zero (legacy records).
const DefaultDuration = SlotMinutes

// BlockingStatuses are the appointment states that occupy calendar slots.
// Finished and abandoned appointments free their time.
var BlockingStatuses = []models.AppointmentStatus{
	models.AppointmentPending,
	models.AppointmentConfirmed,
}

// SlotLabel formats a slot start as the calendar's "HH:MM" label.
func SlotLabel(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// OccupiedSlots returns the slot start labels an appointment covers. An
// appointment occupies ceil(duration/SlotMinutes) consecutive slots from its
// start; a 75-minute appointment at 09:00 blocks 09:00, 09:30 and 10:00.
func OccupiedSlots(start time.Time, durationMinutes int) []string {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDuration
	}
	count := (durationMinutes + SlotMinutes - 1) / SlotMinutes
	labels := make([]string, 0, count)
	for i := 0; i < count; i++ {
		labels = append(labels, SlotLabel(start.Add(time.Duration(i*SlotMinutes)*time.Minute)))
	}
	return labels
}

// BookedSlots computes the sorted, deduplicated slot labels occupied by the
// given appointments. Overlapping appointments contribute each label once.
func BookedSlots(appointments []models.Appointment) []string {
	seen := make(map[string]struct{})
	for _, appt := range appointments {
		for _, label := range OccupiedSlots(appt.Date, appt.Duration) {
			seen[label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
