package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

func validResource() *resource.Resource {
	return &resource.Resource{
		ID:                  "res-1",
		Name:                "Court A",
		Kind:                resource.KindRoom,
		Price:               30,
		SlotDurationMinutes: 60,
		BufferTimeMinutes:   15,
		OpeningTime:         "09:00",
		ClosingTime:         "18:00",
		AvailableDays:       []int32{1, 2, 3, 4, 5},
		Timezone:            "UTC",
	}
}

func TestNewSchedule(t *testing.T) {
	t.Run("valid resource", func(t *testing.T) {
		sched, err := NewSchedule(validResource())
		require.NoError(t, err)

		assert.Equal(t, 60, sched.SlotDuration)
		assert.Equal(t, 15, sched.BufferTime)
		assert.Equal(t, 9*60, sched.OpenMinutes)
		assert.Equal(t, 18*60, sched.CloseMinutes)
		assert.Equal(t, 30.0, sched.Price)
		assert.True(t, sched.Days[time.Monday])
		assert.False(t, sched.Days[time.Sunday])
		assert.Equal(t, time.UTC, sched.Location)
	})

	t.Run("seconds in clock strings are accepted", func(t *testing.T) {
		res := validResource()
		res.OpeningTime = "09:00:00"
		res.ClosingTime = "18:30:00"

		sched, err := NewSchedule(res)
		require.NoError(t, err)
		assert.Equal(t, 18*60+30, sched.CloseMinutes)
	})

	t.Run("empty timezone falls back to local", func(t *testing.T) {
		res := validResource()
		res.Timezone = ""

		sched, err := NewSchedule(res)
		require.NoError(t, err)
		assert.Equal(t, time.Local, sched.Location)
	})

	t.Run("rejects malformed descriptors", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*resource.Resource)
			wantErr error
		}{
			{"zero duration", func(r *resource.Resource) { r.SlotDurationMinutes = 0 }, resource.ErrInvalidDuration},
			{"negative duration", func(r *resource.Resource) { r.SlotDurationMinutes = -30 }, resource.ErrInvalidDuration},
			{"negative buffer", func(r *resource.Resource) { r.BufferTimeMinutes = -1 }, resource.ErrInvalidBuffer},
			{"garbage opening time", func(r *resource.Resource) { r.OpeningTime = "morning" }, resource.ErrInvalidClock},
			{"out of range clock", func(r *resource.Resource) { r.ClosingTime = "25:00" }, resource.ErrInvalidClock},
			{"open equals close", func(r *resource.Resource) { r.OpeningTime = "09:00"; r.ClosingTime = "09:00" }, resource.ErrInvalidHours},
			{"open after close", func(r *resource.Resource) { r.OpeningTime = "18:00"; r.ClosingTime = "09:00" }, resource.ErrInvalidHours},
			{"weekday out of range", func(r *resource.Resource) { r.AvailableDays = []int32{7} }, resource.ErrInvalidWeekday},
			{"negative weekday", func(r *resource.Resource) { r.AvailableDays = []int32{-1} }, resource.ErrInvalidWeekday},
			{"unknown timezone", func(r *resource.Resource) { r.Timezone = "Mars/Olympus" }, resource.ErrUnknownTimezone},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				res := validResource()
				tc.mutate(res)

				_, err := NewSchedule(res)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}
