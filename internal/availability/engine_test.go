package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/resource-booking-backend/internal/booking"
)

func testSchedule(open, close, duration, buffer int) Schedule {
	return Schedule{
		SlotDuration: duration,
		BufferTime:   buffer,
		OpenMinutes:  open,
		CloseMinutes: close,
		Price:        30,
		Days: map[time.Weekday]bool{
			time.Sunday:    true,
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
		Location: time.UTC,
	}
}

func utcBooking(start, end time.Time, status booking.Status) *booking.Booking {
	return &booking.Booking{
		ID:        "b-" + start.Format("150405"),
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

// longAgo keeps past-slot detection out of tests that are not about it.
var longAgo = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// testDay is a Monday.
var testDay = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

func TestGenerateSlots(t *testing.T) {
	t.Run("slots are contiguous without buffer", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		slots := GenerateSlots(testDay, sched, nil, longAgo)

		require.Len(t, slots, 3)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.Equal(t, "10:00", slots[0].End)
		assert.Equal(t, "10:00", slots[1].Start)
		assert.Equal(t, "11:00", slots[1].End)
		assert.Equal(t, "11:00", slots[2].Start)
		assert.Equal(t, "12:00", slots[2].End)
		for _, s := range slots {
			assert.Equal(t, SlotAvailable, s.Status)
			assert.Equal(t, 30.0, s.Price)
		}
	})

	t.Run("buffer adds a gap between consecutive slots", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 15)
		slots := GenerateSlots(testDay, sched, nil, longAgo)

		// 09:00-10:00, 10:15-11:15; a third slot at 11:30 would overflow 12:00.
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.Equal(t, "10:15", slots[1].Start)
		assert.Equal(t, "11:15", slots[1].End)
	})

	t.Run("no slot overflows the closing time", func(t *testing.T) {
		// 45-minute slots closing at 11:00: 09:00-09:45 and 09:45-10:30 fit,
		// a third at 10:30 would end past close and is dropped.
		sched := testSchedule(9*60, 11*60, 45, 0)
		slots := GenerateSlots(testDay, sched, nil, longAgo)

		require.Len(t, slots, 2)
		assert.Equal(t, "09:45", slots[1].Start)
		assert.Equal(t, "10:30", slots[1].End)
	})

	t.Run("window smaller than one slot yields no slots", func(t *testing.T) {
		sched := testSchedule(9*60, 9*60+30, 60, 0)
		slots := GenerateSlots(testDay, sched, nil, longAgo)
		assert.Empty(t, slots)
	})

	t.Run("overlapping booking marks slots booked", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		b := utcBooking(
			time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 11, 0, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		require.Len(t, slots, 3)
		assert.Equal(t, SlotAvailable, slots[0].Status)
		assert.Equal(t, SlotBooked, slots[1].Status)
		assert.Equal(t, SlotAvailable, slots[2].Status)
	})

	t.Run("touching boundaries do not conflict", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		// Booking 10:00-11:00: slot ending exactly 10:00 and slot starting
		// exactly 11:00 both stay available.
		b := utcBooking(
			time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 11, 0, 0, 0, time.UTC),
			booking.StatusPending,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		assert.Equal(t, SlotAvailable, slots[0].Status) // 09:00-10:00
		assert.Equal(t, SlotAvailable, slots[2].Status) // 11:00-12:00
	})

	t.Run("partial overlap still blocks", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		// 09:30-10:30 clips both the 09:00 and 10:00 slots.
		b := utcBooking(
			time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 10, 30, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		assert.Equal(t, SlotBooked, slots[0].Status)
		assert.Equal(t, SlotBooked, slots[1].Status)
		assert.Equal(t, SlotAvailable, slots[2].Status)
	})

	t.Run("cancelled bookings are invisible", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 15)
		b := utcBooking(
			time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC),
			booking.StatusCancelled,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		// No booked and no buffer slots: a cancelled booking must not even
		// shadow the buffer window after it.
		for _, s := range slots {
			assert.Equal(t, SlotAvailable, s.Status)
		}
	})

	t.Run("buffer window follows a booking", func(t *testing.T) {
		sched := testSchedule(9*60, 13*60, 30, 30)
		// Slots: 09:00, 10:00, 11:00, 12:00 (each 30 min, step 60).
		// Booking 09:00-09:30 puts 09:30-10:00 in its buffer window; the
		// 10:00 slot starts exactly at buffer end and is available.
		b := utcBooking(
			time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		require.Len(t, slots, 4)
		assert.Equal(t, SlotBooked, slots[0].Status)
		assert.Equal(t, SlotAvailable, slots[1].Status)
	})

	t.Run("slot inside buffer window is marked buffer", func(t *testing.T) {
		sched := testSchedule(9*60, 13*60, 60, 30)
		// Slots: 09:00-10:00, 10:30-11:30, 12:00-13:00.
		// Booking 09:15-10:15 overlaps the first slot and its buffer runs
		// to 10:45, catching the 10:30 slot start.
		b := utcBooking(
			time.Date(2024, time.June, 3, 9, 15, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 10, 15, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		require.Len(t, slots, 3)
		assert.Equal(t, SlotBooked, slots[0].Status)
		assert.Equal(t, SlotBuffer, slots[1].Status)
		assert.Equal(t, SlotAvailable, slots[2].Status)
	})

	t.Run("booked wins over buffer", func(t *testing.T) {
		sched := testSchedule(9*60, 13*60, 60, 30)
		// Second slot is both inside the first booking's buffer window and
		// overlapped by a second booking: booked takes precedence.
		b1 := utcBooking(
			time.Date(2024, time.June, 3, 9, 15, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 10, 15, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		b2 := utcBooking(
			time.Date(2024, time.June, 3, 10, 30, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 11, 30, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b1, b2}, longAgo)

		assert.Equal(t, SlotBooked, slots[1].Status)
	})

	t.Run("past slots use the evaluation instant", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		// Evaluated at 10:30 local: 09:00 and 10:00 slots have started.
		now := time.Date(2024, time.June, 3, 10, 30, 0, 0, time.UTC)
		slots := GenerateSlots(testDay, sched, nil, now)

		require.Len(t, slots, 3)
		assert.Equal(t, SlotPast, slots[0].Status)
		assert.Equal(t, SlotPast, slots[1].Status)
		assert.Equal(t, SlotAvailable, slots[2].Status)
	})

	t.Run("past wins over booked", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		b := utcBooking(
			time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		now := time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, now)

		assert.Equal(t, SlotPast, slots[0].Status)
	})

	t.Run("bookings on other days are ignored", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		b := utcBooking(
			time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 4, 10, 0, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		for _, s := range slots {
			assert.Equal(t, SlotAvailable, s.Status)
		}
	})

	t.Run("booking date is matched in the schedule timezone", func(t *testing.T) {
		loc, err := time.LoadLocation("Asia/Taipei")
		require.NoError(t, err)

		sched := testSchedule(9*60, 12*60, 60, 0)
		sched.Location = loc

		// 2024-06-03 02:00 UTC is 10:00 on June 3rd in Taipei.
		b := utcBooking(
			time.Date(2024, time.June, 3, 2, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 3, 0, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		slots := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		require.Len(t, slots, 3)
		assert.Equal(t, SlotBooked, slots[1].Status)
	})

	t.Run("generation is idempotent", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 15)
		b := utcBooking(
			time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC),
			booking.StatusConfirmed,
		)
		first := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)
		second := GenerateSlots(testDay, sched, []*booking.Booking{b}, longAgo)

		assert.Equal(t, first, second)
	})
}

func TestForDay(t *testing.T) {
	t.Run("closed weekday produces no slots", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		sched.Days = map[time.Weekday]bool{time.Tuesday: true}

		day := ForDay(testDay, sched, nil, longAgo) // Monday

		assert.Equal(t, DayClosed, day.Status)
		assert.Equal(t, 0, day.TotalSlots)
		assert.NotNil(t, day.Slots)
		assert.Empty(t, day.Slots)
	})

	t.Run("counts and thresholds", func(t *testing.T) {
		// 10 one-hour slots: 08:00 through 18:00.
		sched := testSchedule(8*60, 18*60, 60, 0)

		book := func(hour int) *booking.Booking {
			return utcBooking(
				time.Date(2024, time.June, 3, hour, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 3, hour+1, 0, 0, 0, time.UTC),
				booking.StatusConfirmed,
			)
		}

		t.Run("mostly free is available", func(t *testing.T) {
			day := ForDay(testDay, sched, []*booking.Booking{book(8)}, longAgo)
			assert.Equal(t, DayAvailable, day.Status)
			assert.Equal(t, 10, day.TotalSlots)
			assert.Equal(t, 9, day.AvailableSlots)
		})

		t.Run("thirty percent free is limited", func(t *testing.T) {
			var bookings []*booking.Booking
			for h := 8; h < 15; h++ { // 7 of 10 booked
				bookings = append(bookings, book(h))
			}
			day := ForDay(testDay, sched, bookings, longAgo)
			assert.Equal(t, 3, day.AvailableSlots)
			assert.Equal(t, DayLimited, day.Status)
		})

		t.Run("just above thirty percent is available", func(t *testing.T) {
			var bookings []*booking.Booking
			for h := 8; h < 14; h++ { // 6 of 10 booked
				bookings = append(bookings, book(h))
			}
			day := ForDay(testDay, sched, bookings, longAgo)
			assert.Equal(t, 4, day.AvailableSlots)
			assert.Equal(t, DayAvailable, day.Status)
		})

		t.Run("no free slots is full", func(t *testing.T) {
			var bookings []*booking.Booking
			for h := 8; h < 18; h++ {
				bookings = append(bookings, book(h))
			}
			day := ForDay(testDay, sched, bookings, longAgo)
			assert.Equal(t, 0, day.AvailableSlots)
			assert.Equal(t, DayFull, day.Status)
		})
	})

	t.Run("past slots drop out of totals", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		// Evaluated at 10:30: only the 11:00 slot still counts.
		now := time.Date(2024, time.June, 3, 10, 30, 0, 0, time.UTC)
		day := ForDay(testDay, sched, nil, now)

		assert.Equal(t, 1, day.TotalSlots)
		assert.Equal(t, 1, day.AvailableSlots)
		assert.Equal(t, DayAvailable, day.Status)
		// The full slot list is still returned for rendering.
		assert.Len(t, day.Slots, 3)
	})

	t.Run("fully elapsed day is closed not full", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		now := time.Date(2024, time.June, 3, 23, 0, 0, 0, time.UTC)
		day := ForDay(testDay, sched, nil, now)

		assert.Equal(t, 0, day.TotalSlots)
		assert.Equal(t, DayClosed, day.Status)
	})

	t.Run("date string is local calendar date", func(t *testing.T) {
		sched := testSchedule(9*60, 12*60, 60, 0)
		day := ForDay(testDay, sched, nil, longAgo)
		assert.Equal(t, "2024-06-03", day.Date)
	})
}

func TestForMonth(t *testing.T) {
	sched := testSchedule(9*60, 12*60, 60, 0)

	t.Run("leap february has 29 entries in order", func(t *testing.T) {
		days := ForMonth(2024, time.February, sched, nil, longAgo)

		require.Len(t, days, 29)
		assert.Equal(t, "2024-02-01", days[0].Date)
		assert.Equal(t, "2024-02-29", days[28].Date)
		for i := 1; i < len(days); i++ {
			assert.Less(t, days[i-1].Date, days[i].Date)
		}
	})

	t.Run("non-leap february has 28 entries", func(t *testing.T) {
		days := ForMonth(2023, time.February, sched, nil, longAgo)
		assert.Len(t, days, 28)
	})

	t.Run("booking affects only its own day", func(t *testing.T) {
		var bookings []*booking.Booking
		for h := 9; h < 12; h++ {
			bookings = append(bookings, utcBooking(
				time.Date(2024, time.June, 10, h, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 10, h+1, 0, 0, 0, time.UTC),
				booking.StatusConfirmed,
			))
		}
		days := ForMonth(2024, time.June, sched, bookings, longAgo)

		require.Len(t, days, 30)
		assert.Equal(t, DayFull, days[9].Status) // June 10th
		assert.Equal(t, DayAvailable, days[8].Status)
		assert.Equal(t, DayAvailable, days[10].Status)
	})

	t.Run("closed weekdays stay closed across the month", func(t *testing.T) {
		weekdaysOnly := testSchedule(9*60, 12*60, 60, 0)
		weekdaysOnly.Days = map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		}
		days := ForMonth(2024, time.June, weekdaysOnly, nil, longAgo)

		// June 2024 starts on a Saturday.
		assert.Equal(t, DayClosed, days[0].Status)
		assert.Equal(t, DayClosed, days[1].Status)
		assert.Equal(t, DayAvailable, days[2].Status)
	})
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "00:00", clockString(0))
	assert.Equal(t, "09:05", clockString(9*60+5))
	assert.Equal(t, "23:59", clockString(23*60+59))
}
