package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers resource catalog routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/resources")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)    // List resources
		group.GET("/:id", h.Get) // Get resource details
	}

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.POST("", h.Create)       // Create resource
		admin.PATCH("/:id", h.Update)  // Update resource
		admin.DELETE("/:id", h.Delete) // Delete resource
	}
}
