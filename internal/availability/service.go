package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/booking"
	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

// Service loads a resource's descriptor and booking snapshot and runs the
// slot engine over them. Every call recomputes from the latest snapshot;
// nothing is cached between calls.
type Service interface {
	Slots(ctx context.Context, resourceID string, date time.Time) ([]TimeSlot, error)
	Day(ctx context.Context, resourceID string, date time.Time) (*DayAvailability, error)
	Month(ctx context.Context, resourceID string, year int, month time.Month) ([]DayAvailability, error)
}

type service struct {
	resources resource.Service
	bookings  booking.Repository
	now       func() time.Time
}

// NewService creates an availability Service backed by the real clock.
func NewService(resources resource.Service, bookings booking.Repository) Service {
	return NewServiceWithClock(resources, bookings, time.Now)
}

// NewServiceWithClock allows injecting the evaluation clock, primarily so
// past-slot detection is deterministic in tests.
func NewServiceWithClock(resources resource.Service, bookings booking.Repository, now func() time.Time) Service {
	return &service{
		resources: resources,
		bookings:  bookings,
		now:       now,
	}
}

// load fetches the resource and parses its schedule.
func (s *service) load(ctx context.Context, resourceID string) (*resource.Resource, Schedule, error) {
	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, Schedule{}, err
	}

	sched, err := NewSchedule(res)
	if err != nil {
		return nil, Schedule{}, fmt.Errorf("resource %s has invalid booking parameters: %w", res.ID, err)
	}

	return res, sched, nil
}

func (s *service) Slots(ctx context.Context, resourceID string, date time.Time) ([]TimeSlot, error) {
	res, sched, err := s.load(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	from, to := dayRange(date, sched.Location)
	bookings, err := s.bookings.ListForRange(ctx, res.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return GenerateSlots(date, sched, bookings, s.now()), nil
}

func (s *service) Day(ctx context.Context, resourceID string, date time.Time) (*DayAvailability, error) {
	res, sched, err := s.load(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	from, to := dayRange(date, sched.Location)
	bookings, err := s.bookings.ListForRange(ctx, res.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	day := ForDay(date, sched, bookings, s.now())
	return &day, nil
}

func (s *service) Month(ctx context.Context, resourceID string, year int, month time.Month) ([]DayAvailability, error) {
	res, sched, err := s.load(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, sched.Location)
	to := from.AddDate(0, 1, 0)
	bookings, err := s.bookings.ListForRange(ctx, res.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return ForMonth(year, month, sched, bookings, s.now()), nil
}

// dayRange returns the half-open instant range covering one local calendar
// day, used to bound the booking snapshot query. The engine re-filters by
// local date, so the range only needs to be a superset of the day.
func dayRange(date time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := date.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}
