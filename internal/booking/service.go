package booking

import (
	"context"
	"errors"
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

type CreateRequest struct {
	UserID     string
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
}

type UpdateRequest struct {
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Booking, error)
	Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error
}

type service struct {
	repo       Repository
	resService resource.Service
}

func NewService(repo Repository, resService resource.Service) Service {
	return &service{
		repo:       repo,
		resService: resService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate Time Range
	if req.EndTime.Before(req.StartTime) || req.EndTime.Equal(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	// Strict check: StartTime cannot be in the past
	if req.StartTime.Before(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}

	// 2. Validate Resource Exists
	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		switch {
		case errors.Is(err, resource.ErrNotFound):
			return nil, ErrResourceNotFound
		default:
			return nil, err
		}
	}

	// 3. Check for Overlaps
	hasOverlap, err := s.repo.HasOverlap(ctx, req.ResourceID, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	// 4. Create Booking
	b := &Booking{
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     StatusPending, // Default status
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := b.UserID == updaterUserID
	if !isAdmin && !isOwner {
		return nil, ErrPermissionDenied
	}

	// Reschedule: prepare new values
	newStart := b.StartTime
	newEnd := b.EndTime
	timeChanged := false

	if req.StartTime != nil {
		newStart = *req.StartTime
		timeChanged = true
	}
	if req.EndTime != nil {
		newEnd = *req.EndTime
		timeChanged = true
	}

	if timeChanged {
		if newEnd.Before(newStart) || newEnd.Equal(newStart) {
			return nil, ErrInvalidTimeRange
		}

		if req.StartTime != nil && req.StartTime.Before(time.Now().UTC()) {
			return nil, ErrStartTimePast
		}

		// Check overlap excluding the booking itself
		hasOverlap, err := s.repo.HasOverlap(ctx, b.ResourceID, newStart, newEnd, b.ID)
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			return nil, ErrTimeConflict
		}
		b.StartTime = newStart
		b.EndTime = newEnd
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusPending && st != StatusConfirmed && st != StatusCancelled {
			return nil, ErrInvalidStatus
		}

		// A booking owner may only cancel; confirming is an admin action.
		if isOwner && !isAdmin && st != StatusCancelled {
			return nil, ErrPermissionDenied
		}
		b.Status = st
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && b.UserID != deleterUserID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}
