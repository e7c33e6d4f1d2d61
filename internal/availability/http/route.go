package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers availability routes under the resources group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/resources/:id")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("/slots", h.Slots)              // Day slot sequence
		group.GET("/availability", h.Day)         // Day summary
		group.GET("/availability/month", h.Month) // Month summary
	}
}
