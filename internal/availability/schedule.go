package availability

import (
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

// Schedule is the parsed, validated view of a resource's booking parameters.
// Slot generation trusts a Schedule completely, so the only way malformed
// descriptor input can reach the engine is by constructing one by hand.
type Schedule struct {
	SlotDuration int // minutes per slot, > 0
	BufferTime   int // mandatory gap after each booking, >= 0
	OpenMinutes  int // opening time, minutes since midnight
	CloseMinutes int // closing time, minutes since midnight, > OpenMinutes
	Price        float64
	Days         map[time.Weekday]bool
	Location     *time.Location
}

// NewSchedule builds a Schedule from a stored resource, failing fast on
// malformed descriptor fields instead of propagating garbage into slot
// generation. An empty Timezone falls back to the server's local timezone.
func NewSchedule(res *resource.Resource) (Schedule, error) {
	if res.SlotDurationMinutes <= 0 {
		return Schedule{}, resource.ErrInvalidDuration
	}
	if res.BufferTimeMinutes < 0 {
		return Schedule{}, resource.ErrInvalidBuffer
	}

	open, err := resource.ParseClock(res.OpeningTime)
	if err != nil {
		return Schedule{}, err
	}
	closeM, err := resource.ParseClock(res.ClosingTime)
	if err != nil {
		return Schedule{}, err
	}
	if open >= closeM {
		return Schedule{}, resource.ErrInvalidHours
	}

	days := make(map[time.Weekday]bool, len(res.AvailableDays))
	for _, d := range res.AvailableDays {
		if d < 0 || d > 6 {
			return Schedule{}, resource.ErrInvalidWeekday
		}
		days[time.Weekday(d)] = true
	}

	loc := time.Local
	if res.Timezone != "" {
		loc, err = time.LoadLocation(res.Timezone)
		if err != nil {
			return Schedule{}, resource.ErrUnknownTimezone
		}
	}

	return Schedule{
		SlotDuration: res.SlotDurationMinutes,
		BufferTime:   res.BufferTimeMinutes,
		OpenMinutes:  open,
		CloseMinutes: closeM,
		Price:        res.Price,
		Days:         days,
		Location:     loc,
	}, nil
}
