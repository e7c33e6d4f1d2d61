package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nekogravitycat/resource-booking-backend/internal/availability"
	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// bindTarget extracts and validates the resource ID path parameter and the
// date query parameter shared by the day endpoints.
func (h *Handler) bindTarget(c *gin.Context) (string, time.Time, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return "", time.Time{}, false
	}

	var q DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return "", time.Time{}, false
	}

	// binding already enforced the layout
	date, _ := time.Parse("2006-01-02", q.Date)
	return id, date, true
}

// Slots returns the full slot sequence of one day for a resource.
func (h *Handler) Slots(c *gin.Context) {
	id, date, ok := h.bindTarget(c)
	if !ok {
		return
	}

	slots, err := h.service.Slots(c.Request.Context(), id, date)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SlotsResponse{
		ResourceID: id,
		Date:       date.Format("2006-01-02"),
		Slots:      slots,
	})
}

// Day returns the aggregated availability summary of one day.
func (h *Handler) Day(c *gin.Context) {
	id, date, ok := h.bindTarget(c)
	if !ok {
		return
	}

	day, err := h.service.Day(c.Request.Context(), id, date)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}

// Month returns one availability summary per calendar day of a month.
func (h *Handler) Month(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	days, err := h.service.Month(c.Request.Context(), id, q.Year, time.Month(q.Month))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{
		ResourceID: id,
		Year:       q.Year,
		Month:      q.Month,
		Days:       days,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, resource.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
}
