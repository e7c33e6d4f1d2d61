package http

import (
	"time"

	"github.com/nekogravitycat/resource-booking-backend/internal/photo"
)

// PhotoResponse is the shape of photo metadata returned in API responses.
type PhotoResponse struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resource_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPhotoResponse converts a photo model to its API representation.
func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		ResourceID:  p.ResourceID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		u := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &u
	}
	return resp
}
