package appointments

import (
	"testing"

	"doctorportal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeAvailability(t *testing.T) {
	options := func() []models.AppointmentOption {
		return []models.AppointmentOption{
			{ID: "1", Name: "Teeth Cleaning", Slots: []string{"08.00 AM - 09.00 AM", "09.00 AM - 10.00 AM", "10.00 AM - 11.00 AM"}},
			{ID: "2", Name: "Cavity Protection", Slots: []string{"08.00 AM - 09.00 AM", "09.00 AM - 10.00 AM"}},
		}
	}

	t.Run("Booked Slots Removed Per Treatment", func(t *testing.T) {
		bookings := []models.Booking{
			{Treatment: "Teeth Cleaning", Slot: "09.00 AM - 10.00 AM"},
			{Treatment: "Teeth Cleaning", Slot: "10.00 AM - 11.00 AM"},
		}

		result := ComputeAvailability(options(), bookings)

		assert.Equal(t, []string{"08.00 AM - 09.00 AM"}, result[0].Slots, "booked cleaning slots should be removed")
		assert.Equal(t, []string{"08.00 AM - 09.00 AM", "09.00 AM - 10.00 AM"}, result[1].Slots, "other treatments keep their full pool")
	})

	t.Run("Same Slot Different Treatment Untouched", func(t *testing.T) {
		bookings := []models.Booking{
			{Treatment: "Cavity Protection", Slot: "08.00 AM - 09.00 AM"},
		}

		result := ComputeAvailability(options(), bookings)

		assert.Contains(t, result[0].Slots, "08.00 AM - 09.00 AM", "cleaning slot stays open when only cavity protection booked it")
		assert.Equal(t, []string{"09.00 AM - 10.00 AM"}, result[1].Slots)
	})

	t.Run("No Bookings Returns Full Pools", func(t *testing.T) {
		result := ComputeAvailability(options(), nil)

		assert.Equal(t, options(), result, "without bookings every slot stays available")
	})

	t.Run("Duplicate Bookings Idempotent", func(t *testing.T) {
		bookings := []models.Booking{
			{Treatment: "Teeth Cleaning", Slot: "09.00 AM - 10.00 AM"},
			{Treatment: "Teeth Cleaning", Slot: "09.00 AM - 10.00 AM"},
		}

		result := ComputeAvailability(options(), bookings)

		assert.Equal(t, []string{"08.00 AM - 09.00 AM", "10.00 AM - 11.00 AM"}, result[0].Slots, "a slot is removed once no matter how often it was booked")
	})

	t.Run("Unknown Treatment Ignored", func(t *testing.T) {
		bookings := []models.Booking{
			{Treatment: "Oral Surgery", Slot: "08.00 AM - 09.00 AM"},
		}

		result := ComputeAvailability(options(), bookings)

		assert.Equal(t, options(), result, "bookings for treatments without an option change nothing")
	})

	t.Run("Booked Slot Never Added", func(t *testing.T) {
		bookings := []models.Booking{
			{Treatment: "Cavity Protection", Slot: "11.00 AM - 12.00 PM"},
		}

		result := ComputeAvailability(options(), bookings)

		assert.Len(t, result[1].Slots, 2, "a booked slot outside the pool must not grow the pool")
	})

	t.Run("Order Preserved", func(t *testing.T) {
		bookings := []models.Booking{
			{Treatment: "Teeth Cleaning", Slot: "08.00 AM - 09.00 AM"},
		}

		result := ComputeAvailability(options(), bookings)

		assert.Equal(t, []string{"09.00 AM - 10.00 AM", "10.00 AM - 11.00 AM"}, result[0].Slots, "remaining slots keep their original order")
	})

	t.Run("Input Options Not Mutated", func(t *testing.T) {
		original := options()
		bookings := []models.Booking{
			{Treatment: "Teeth Cleaning", Slot: "09.00 AM - 10.00 AM"},
		}

		ComputeAvailability(original, bookings)

		assert.Len(t, original[0].Slots, 3, "callers keep their slot pools intact")
	})
}
