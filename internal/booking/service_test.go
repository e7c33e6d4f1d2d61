package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

type memoryRepo struct {
	Repository
	byID    map[string]*Booking
	overlap bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: map[string]*Booking{}}
}

func (m *memoryRepo) Create(_ context.Context, b *Booking) error {
	if b.ID == "" {
		b.ID = "bk-1"
	}
	m.byID[b.ID] = b
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memoryRepo) Update(_ context.Context, b *Booking) error {
	if _, ok := m.byID[b.ID]; !ok {
		return ErrNotFound
	}
	m.byID[b.ID] = b
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepo) HasOverlap(_ context.Context, _ string, _, _ time.Time, _ string) (bool, error) {
	return m.overlap, nil
}

type stubResourceService struct {
	resource.Service
	exists bool
}

func (s *stubResourceService) GetByID(_ context.Context, id string) (*resource.Resource, error) {
	if !s.exists {
		return nil, resource.ErrNotFound
	}
	return &resource.Resource{ID: id}, nil
}

func futureRange() (time.Time, time.Time) {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	return start, start.Add(time.Hour)
}

func TestServiceCreate(t *testing.T) {
	t.Run("creates a pending booking", func(t *testing.T) {
		repo := newMemoryRepo()
		svc := NewService(repo, &stubResourceService{exists: true})
		start, end := futureRange()

		b, err := svc.Create(context.Background(), CreateRequest{
			UserID:     "user-1",
			ResourceID: "res-1",
			StartTime:  start,
			EndTime:    end,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, "user-1", b.UserID)
	})

	t.Run("rejects inverted or empty time range", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubResourceService{exists: true})
		start, _ := futureRange()

		_, err := svc.Create(context.Background(), CreateRequest{
			UserID: "user-1", ResourceID: "res-1", StartTime: start, EndTime: start,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.Create(context.Background(), CreateRequest{
			UserID: "user-1", ResourceID: "res-1", StartTime: start, EndTime: start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("rejects start time in the past", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubResourceService{exists: true})
		start := time.Now().UTC().Add(-time.Hour)

		_, err := svc.Create(context.Background(), CreateRequest{
			UserID: "user-1", ResourceID: "res-1", StartTime: start, EndTime: start.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("rejects unknown resource", func(t *testing.T) {
		svc := NewService(newMemoryRepo(), &stubResourceService{exists: false})
		start, end := futureRange()

		_, err := svc.Create(context.Background(), CreateRequest{
			UserID: "user-1", ResourceID: "ghost", StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("rejects conflicting time", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.overlap = true
		svc := NewService(repo, &stubResourceService{exists: true})
		start, end := futureRange()

		_, err := svc.Create(context.Background(), CreateRequest{
			UserID: "user-1", ResourceID: "res-1", StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, ErrTimeConflict)
	})
}

func TestServiceUpdate(t *testing.T) {
	seed := func(t *testing.T) (*memoryRepo, Service) {
		t.Helper()
		repo := newMemoryRepo()
		start, end := futureRange()
		repo.byID["bk-1"] = &Booking{
			ID: "bk-1", ResourceID: "res-1", UserID: "owner",
			StartTime: start, EndTime: end, Status: StatusPending,
		}
		return repo, NewService(repo, &stubResourceService{exists: true})
	}

	cancelled := string(StatusCancelled)
	confirmed := string(StatusConfirmed)

	t.Run("owner can cancel", func(t *testing.T) {
		_, svc := seed(t)
		b, err := svc.Update(context.Background(), "bk-1", UpdateRequest{Status: &cancelled}, "owner", false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
	})

	t.Run("owner cannot confirm", func(t *testing.T) {
		_, svc := seed(t)
		_, err := svc.Update(context.Background(), "bk-1", UpdateRequest{Status: &confirmed}, "owner", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin can confirm", func(t *testing.T) {
		_, svc := seed(t)
		b, err := svc.Update(context.Background(), "bk-1", UpdateRequest{Status: &confirmed}, "someone-else", true)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, b.Status)
	})

	t.Run("stranger cannot touch the booking", func(t *testing.T) {
		_, svc := seed(t)
		_, err := svc.Update(context.Background(), "bk-1", UpdateRequest{Status: &cancelled}, "stranger", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("reschedule checks conflicts", func(t *testing.T) {
		repo, svc := seed(t)
		repo.overlap = true
		start, end := futureRange()
		start = start.Add(3 * time.Hour)
		end = end.Add(3 * time.Hour)

		_, err := svc.Update(context.Background(), "bk-1", UpdateRequest{StartTime: &start, EndTime: &end}, "owner", false)
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, svc := seed(t)
		bad := "maybe"
		_, err := svc.Update(context.Background(), "bk-1", UpdateRequest{Status: &bad}, "owner", true)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestServiceDelete(t *testing.T) {
	seed := func(t *testing.T) (*memoryRepo, Service) {
		t.Helper()
		repo := newMemoryRepo()
		repo.byID["bk-1"] = &Booking{ID: "bk-1", UserID: "owner"}
		return repo, NewService(repo, &stubResourceService{exists: true})
	}

	t.Run("owner can delete", func(t *testing.T) {
		repo, svc := seed(t)
		require.NoError(t, svc.Delete(context.Background(), "bk-1", "owner", false))
		assert.Empty(t, repo.byID)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		_, svc := seed(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "bk-1", "stranger", false), ErrPermissionDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, svc := seed(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "ghost", "owner", true), ErrNotFound)
	})
}
