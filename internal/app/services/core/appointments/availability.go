package appointments

import "doctorportal-service/internal/app/models"

// ComputeAvailability subtracts booked slots from each option's slot pool.
// Bookings are partitioned by treatment name; a slot is removed from an
// option when a booking with the same treatment holds it. Matching is exact
// string equality and the original slot order is preserved. Bookings whose
// treatment matches no option are ignored. The input options are not
// mutated.
func ComputeAvailability(options []models.AppointmentOption, bookingsOnDate []models.Booking) []models.AppointmentOption {
	bookedSlots := make(map[string]map[string]struct{})
	for _, booking := range bookingsOnDate {
		slots, ok := bookedSlots[booking.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedSlots[booking.Treatment] = slots
		}
		slots[booking.Slot] = struct{}{}
	}

	result := make([]models.AppointmentOption, len(options))
	for i, option := range options {
		booked := bookedSlots[option.Name]
		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, taken := booked[slot]; !taken {
				remaining = append(remaining, slot)
			}
		}
		option.Slots = remaining
		result[i] = option
	}
	return result
}
