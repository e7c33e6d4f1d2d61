package http

import (
	"github.com/nekogravitycat/resource-booking-backend/internal/availability"
)

// DayQuery defines query parameters for single-day availability endpoints.
type DayQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// MonthQuery defines query parameters for the month availability endpoint.
type MonthQuery struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// SlotsResponse is the payload for the day slot listing.
type SlotsResponse struct {
	ResourceID string                  `json:"resource_id"`
	Date       string                  `json:"date"`
	Slots      []availability.TimeSlot `json:"slots"`
}

// MonthResponse is the payload for the month availability view.
type MonthResponse struct {
	ResourceID string                         `json:"resource_id"`
	Year       int                            `json:"year"`
	Month      int                            `json:"month"`
	Days       []availability.DayAvailability `json:"days"`
}
