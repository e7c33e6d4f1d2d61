package http

import (
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

// ListResourcesRequest defines query parameters for listing resources.
type ListResourcesRequest struct {
	request.ListParams
	Kind   string `form:"kind" binding:"omitempty,oneof=room equipment venue"`
	Name   string `form:"name"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=name kind price created_at"`
}

// Validate performs custom validation for ListResourcesRequest.
func (r *ListResourcesRequest) Validate() error {
	return nil
}

// ResourceResponse is the shape of resource data returned in API responses.
type ResourceResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Kind                string    `json:"kind"`
	Price               float64   `json:"price"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	BufferTimeMinutes   int       `json:"buffer_time_minutes"`
	OpeningTime         string    `json:"opening_time"`
	ClosingTime         string    `json:"closing_time"`
	AvailableDays       []int32   `json:"available_days"`
	Timezone            string    `json:"timezone,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ResourceTag is a brief representation of a resource.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewResourceResponse converts a domain resource to its API representation.
func NewResourceResponse(res *resource.Resource) ResourceResponse {
	days := res.AvailableDays
	if days == nil {
		days = []int32{}
	}

	return ResourceResponse{
		ID:                  res.ID,
		Name:                res.Name,
		Description:         res.Description,
		Kind:                string(res.Kind),
		Price:               res.Price,
		SlotDurationMinutes: res.SlotDurationMinutes,
		BufferTimeMinutes:   res.BufferTimeMinutes,
		OpeningTime:         res.OpeningTime,
		ClosingTime:         res.ClosingTime,
		AvailableDays:       days,
		Timezone:            res.Timezone,
		CreatedAt:           res.CreatedAt,
		UpdatedAt:           res.UpdatedAt,
	}
}

// CreateResourceRequest defines the payload for creating a resource.
type CreateResourceRequest struct {
	Name                string  `json:"name" binding:"required"`
	Description         string  `json:"description"`
	Kind                string  `json:"kind" binding:"required,oneof=room equipment venue"`
	Price               float64 `json:"price" binding:"omitempty,min=0"`
	SlotDurationMinutes int     `json:"slot_duration_minutes" binding:"required,min=1"`
	BufferTimeMinutes   int     `json:"buffer_time_minutes" binding:"omitempty,min=0"`
	OpeningTime         string  `json:"opening_time" binding:"required"`
	ClosingTime         string  `json:"closing_time" binding:"required"`
	AvailableDays       []int32 `json:"available_days" binding:"required,dive,min=0,max=6"`
	Timezone            string  `json:"timezone"`
}

// Validate performs custom validation for CreateResourceRequest.
func (r *CreateResourceRequest) Validate() error {
	open, err := resource.ParseClock(r.OpeningTime)
	if err != nil {
		return err
	}
	closing, err := resource.ParseClock(r.ClosingTime)
	if err != nil {
		return err
	}
	if open >= closing {
		return resource.ErrInvalidHours
	}
	return nil
}

// UpdateResourceRequest defines fields allowed to be updated via PATCH.
// Pointers distinguish "field not sent" from zero values.
type UpdateResourceRequest struct {
	Name                *string  `json:"name"`
	Description         *string  `json:"description"`
	Kind                *string  `json:"kind" binding:"omitempty,oneof=room equipment venue"`
	Price               *float64 `json:"price" binding:"omitempty,min=0"`
	SlotDurationMinutes *int     `json:"slot_duration_minutes" binding:"omitempty,min=1"`
	BufferTimeMinutes   *int     `json:"buffer_time_minutes" binding:"omitempty,min=0"`
	OpeningTime         *string  `json:"opening_time"`
	ClosingTime         *string  `json:"closing_time"`
	AvailableDays       []int32  `json:"available_days" binding:"omitempty,dive,min=0,max=6"`
	Timezone            *string  `json:"timezone"`
}

// Validate performs custom validation for UpdateResourceRequest.
func (r *UpdateResourceRequest) Validate() error {
	if r.OpeningTime != nil {
		if _, err := resource.ParseClock(*r.OpeningTime); err != nil {
			return err
		}
	}
	if r.ClosingTime != nil {
		if _, err := resource.ParseClock(*r.ClosingTime); err != nil {
			return err
		}
	}
	return nil
}
