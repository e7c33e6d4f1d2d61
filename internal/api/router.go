package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/resource-booking-backend/internal/auth"
	"github.com/nekogravitycat/resource-booking-backend/internal/availability"
	availHttp "github.com/nekogravitycat/resource-booking-backend/internal/availability/http"
	"github.com/nekogravitycat/resource-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/resource-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/resource-booking-backend/internal/photo"
	photoHttp "github.com/nekogravitycat/resource-booking-backend/internal/photo/http"
	"github.com/nekogravitycat/resource-booking-backend/internal/resource"
	resHttp "github.com/nekogravitycat/resource-booking-backend/internal/resource/http"
	"github.com/nekogravitycat/resource-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/resource-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction        bool
	ProdOrigins         string
	UserService         user.Service
	ResourceService     resource.Service
	BookingService      booking.Service
	AvailabilityService availability.Service
	PhotoService        photo.Service
	JWTManager          *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: Further checks if the authenticated user has System Admin privileges.
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	resHandler := resHttp.NewHandler(cfg.ResourceService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		resHttp.RegisterRoutes(v1, resHandler, authMiddleware, sysAdminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		availHttp.RegisterRoutes(v1, availHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, sysAdminMiddleware)
	}

	return r
}
