package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers photo routes.
func RegisterRoutes(r gin.IRouter, handler *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	resources := r.Group("/resources/:id/photos")
	{
		resources.GET("", authMiddleware, handler.ListByResource)
		resources.POST("", authMiddleware, adminMiddleware, handler.Upload)
	}

	photos := r.Group("/photos")
	photos.Use(authMiddleware)
	{
		photos.GET("/:id", handler.Serve)
		photos.GET("/:id/thumbnail", handler.ServeThumbnail)
		photos.DELETE("/:id", adminMiddleware, handler.Delete)
	}
}
