package availability

import (
	"fmt"
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/booking"
)

// busyInterval is a blocking booking projected onto minutes-of-day in the
// schedule's timezone.
type busyInterval struct {
	start int
	end   int
}

// GenerateSlots produces the ordered slot sequence for one calendar day.
// date is interpreted as a calendar date (year/month/day) in the schedule's
// timezone; its own timezone and time-of-day are ignored. bookings may span
// any date or status: non-blocking and off-day entries are filtered here.
// now is the evaluation instant used for past-slot detection, so results are
// reproducible under test.
func GenerateSlots(date time.Time, sched Schedule, bookings []*booking.Booking, now time.Time) []TimeSlot {
	year, month, day := date.Date()

	// Project blocking bookings whose start instant falls on this local
	// calendar date onto minutes-of-day. Comparing local date components
	// rather than UTC date strings keeps bookings on the day users see.
	var busy []busyInterval
	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		start := b.StartTime.In(sched.Location)
		by, bm, bd := start.Date()
		if by != year || bm != month || bd != day {
			continue
		}
		end := b.EndTime.In(sched.Location)
		busy = append(busy, busyInterval{
			start: start.Hour()*60 + start.Minute(),
			end:   end.Hour()*60 + end.Minute(),
		})
	}

	step := sched.SlotDuration + sched.BufferTime
	slots := make([]TimeSlot, 0, (sched.CloseMinutes-sched.OpenMinutes)/step+1)

	// Walk the operating window; a trailing slot that would overflow the
	// closing time is dropped rather than truncated.
	for cur := sched.OpenMinutes; cur+sched.SlotDuration <= sched.CloseMinutes; cur += step {
		slotEnd := cur + sched.SlotDuration
		slots = append(slots, TimeSlot{
			Start:  clockString(cur),
			End:    clockString(slotEnd),
			Status: classifySlot(cur, slotEnd, busy, sched, year, month, day, now),
			Price:  sched.Price,
		})
	}

	return slots
}

// classifySlot applies the status precedence: past, then booked, then
// buffer, then available. First match wins.
func classifySlot(slotStart, slotEnd int, busy []busyInterval, sched Schedule, year int, month time.Month, day int, now time.Time) SlotStatus {
	startInstant := time.Date(year, month, day, 0, slotStart, 0, 0, sched.Location)
	if startInstant.Before(now) {
		return SlotPast
	}

	for _, b := range busy {
		// Half-open overlap: touching at a boundary is not a conflict.
		if slotStart < b.end && slotEnd > b.start {
			return SlotBooked
		}
	}

	if sched.BufferTime > 0 {
		for _, b := range busy {
			if slotStart >= b.end && slotStart < b.end+sched.BufferTime {
				return SlotBuffer
			}
		}
	}

	return SlotAvailable
}

// ForDay computes the day-level availability summary.
// Days outside the operating weekday set close immediately without slot
// generation. TotalSlots counts only non-past slots, so a day whose
// remaining slots have all elapsed reports closed rather than full.
func ForDay(date time.Time, sched Schedule, bookings []*booking.Booking, now time.Time) DayAvailability {
	year, month, day := date.Date()
	localDate := time.Date(year, month, day, 0, 0, 0, 0, sched.Location)

	result := DayAvailability{
		Date:  localDate.Format("2006-01-02"),
		Slots: []TimeSlot{},
	}

	if !sched.Days[localDate.Weekday()] {
		result.Status = DayClosed
		return result
	}

	slots := GenerateSlots(date, sched, bookings, now)

	available := 0
	total := 0
	for _, s := range slots {
		if s.Status == SlotPast {
			continue
		}
		total++
		if s.Status == SlotAvailable {
			available++
		}
	}

	result.Slots = slots
	result.AvailableSlots = available
	result.TotalSlots = total

	// Three-tier threshold used by calendar color-coding; the 30% boundary
	// is inclusive.
	switch {
	case total == 0:
		result.Status = DayClosed
	case available == 0:
		result.Status = DayFull
	case float64(available) <= float64(total)*0.3:
		result.Status = DayLimited
	default:
		result.Status = DayAvailable
	}

	return result
}

// ForMonth computes one DayAvailability per calendar day of the given month,
// in ascending date order. Each day is computed independently from the full
// booking snapshot; there is no shared state between iterations.
func ForMonth(year int, month time.Month, sched Schedule, bookings []*booking.Booking, now time.Time) []DayAvailability {
	// Day 0 of the following month is the last day of this one, which
	// handles leap years via the standard calendar rules.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, sched.Location).Day()

	days := make([]DayAvailability, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, sched.Location)
		days = append(days, ForDay(date, sched, bookings, now))
	}

	return days
}

// clockString renders minutes-since-midnight as "HH:mm".
func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
