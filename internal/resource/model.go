package resource

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidKind     = errors.New("invalid resource kind")
	ErrInvalidDuration = errors.New("slot duration must be positive")
	ErrInvalidBuffer   = errors.New("buffer time cannot be negative")
	ErrInvalidPrice    = errors.New("price cannot be negative")
	ErrInvalidClock    = errors.New("operating hours must be HH:mm")
	ErrInvalidHours    = errors.New("opening time must be before closing time")
	ErrInvalidWeekday  = errors.New("available days must be weekday indices 0-6")
	ErrUnknownTimezone = errors.New("unknown timezone")
)

// Kind categorizes a bookable resource.
type Kind string

const (
	KindRoom      Kind = "room"
	KindEquipment Kind = "equipment"
	KindVenue     Kind = "venue"
)

// ValidKinds lists every accepted resource kind.
var ValidKinds = []Kind{KindRoom, KindEquipment, KindVenue}

// Resource represents a bookable unit (e.g., Meeting Room 101, Projector B)
// together with the booking parameters that drive slot generation.
type Resource struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
	Price       float64

	// Booking parameters. OpeningTime/ClosingTime are wall-clock "HH:mm"
	// strings local to the resource; AvailableDays uses weekday indices
	// 0=Sunday..6=Saturday; Timezone is an IANA name, empty meaning the
	// server's local timezone.
	SlotDurationMinutes int
	BufferTimeMinutes   int
	OpeningTime         string
	ClosingTime         string
	AvailableDays       []int32
	Timezone            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing resources.
type Filter struct {
	Kind      string
	Name      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
