package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "resource not found")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking reserves a resource for the interval [StartTime, EndTime).
// Every status except cancelled blocks the reserved interval.
type Booking struct {
	ID           string
	ResourceID   string
	ResourceName string
	UserID       string
	UserName     string
	StartTime    time.Time
	EndTime      time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Blocks reports whether the booking occupies its interval for the purpose
// of availability computation. Cancelled bookings are treated as if they
// never existed.
func (b *Booking) Blocks() bool {
	return b.Status != StatusCancelled
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID     string
	ResourceID string
	Status     string
	StartTime  *time.Time // bookings ending at or after this instant
	EndTime    *time.Time // bookings starting at or before this instant
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
