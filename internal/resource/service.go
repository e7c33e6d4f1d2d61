package resource

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Name                string
	Description         string
	Kind                string
	Price               float64
	SlotDurationMinutes int
	BufferTimeMinutes   int
	OpeningTime         string
	ClosingTime         string
	AvailableDays       []int32
	Timezone            string
}

type UpdateRequest struct {
	Name                *string
	Description         *string
	Kind                *string
	Price               *float64
	SlotDurationMinutes *int
	BufferTimeMinutes   *int
	OpeningTime         *string
	ClosingTime         *string
	AvailableDays       []int32
	Timezone            *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	res := &Resource{
		Name:                strings.TrimSpace(req.Name),
		Description:         req.Description,
		Kind:                Kind(req.Kind),
		Price:               req.Price,
		SlotDurationMinutes: req.SlotDurationMinutes,
		BufferTimeMinutes:   req.BufferTimeMinutes,
		OpeningTime:         req.OpeningTime,
		ClosingTime:         req.ClosingTime,
		AvailableDays:       req.AvailableDays,
		Timezone:            req.Timezone,
	}

	if err := validate(res); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		res.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
	if req.Kind != nil {
		res.Kind = Kind(*req.Kind)
	}
	if req.Price != nil {
		res.Price = *req.Price
	}
	if req.SlotDurationMinutes != nil {
		res.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.BufferTimeMinutes != nil {
		res.BufferTimeMinutes = *req.BufferTimeMinutes
	}
	if req.OpeningTime != nil {
		res.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		res.ClosingTime = *req.ClosingTime
	}
	if req.AvailableDays != nil {
		res.AvailableDays = req.AvailableDays
	}
	if req.Timezone != nil {
		res.Timezone = *req.Timezone
	}

	if err := validate(res); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// validate enforces the descriptor rules at the write path, so every stored
// resource is guaranteed to yield a valid slot-generation schedule.
func validate(res *Resource) error {
	if res.Name == "" {
		return ErrEmptyName
	}

	validKind := false
	for _, k := range ValidKinds {
		if res.Kind == k {
			validKind = true
			break
		}
	}
	if !validKind {
		return ErrInvalidKind
	}

	if res.Price < 0 {
		return ErrInvalidPrice
	}
	if res.SlotDurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if res.BufferTimeMinutes < 0 {
		return ErrInvalidBuffer
	}

	open, err := ParseClock(res.OpeningTime)
	if err != nil {
		return err
	}
	closing, err := ParseClock(res.ClosingTime)
	if err != nil {
		return err
	}
	if open >= closing {
		return ErrInvalidHours
	}

	for _, d := range res.AvailableDays {
		if d < 0 || d > 6 {
			return ErrInvalidWeekday
		}
	}

	if res.Timezone != "" {
		if _, err := time.LoadLocation(res.Timezone); err != nil {
			return ErrUnknownTimezone
		}
	}

	return nil
}
