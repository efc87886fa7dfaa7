package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/config"
	"github.com/temitayo1239/student-information-portal-main/internal/handler"
	"github.com/temitayo1239/student-information-portal-main/internal/middleware"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
	"github.com/temitayo1239/student-information-portal-main/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Registration *handler.RegistrationHandler
	Notification *handler.NotificationHandler
	Academic     *handler.AcademicHandler
	WS           *handler.WSHandler
	Health       *handler.HealthHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	portal *service.PortalService,
	handlers *Handlers,
	loginLimiter *middleware.RateLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the access log and every envelope carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// Health check.
	router.GET("/health", handlers.Health.Health)

	requireSession := []gin.HandlerFunc{
		middleware.RequireStudentJWT(portal),
		middleware.RequireActiveSession(portal),
		middleware.NoStore(),
	}

	// ─── 1. Auth Group (Public, Rate Limited Login) ─────────────────────
	auth := router.Group("/api/v1/auth/student")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.Auth.StudentLogin)

		// Logout skips the session check so a dead session can still log out.
		auth.POST("/logout", middleware.RequireStudentJWT(portal), handlers.Auth.StudentLogout)
		auth.GET("/me", append(requireSession, handlers.Auth.GetStudentProfile)...)
	}

	// ─── 2. Student Group (JWT + Active Session) ───────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(requireSession...)
	{
		studentAPI.GET("/dashboard", handlers.Academic.GetDashboard)
		studentAPI.GET("/results", handlers.Academic.GetResults)
		studentAPI.GET("/timetable", handlers.Academic.GetTimetable)
		studentAPI.GET("/fees", handlers.Academic.GetFees)

		studentAPI.GET("/courses", handlers.Registration.ListCourses)
		studentAPI.GET("/registration", handlers.Registration.GetRegistration)
		studentAPI.POST("/registration/cart", handlers.Registration.AddToCart)
		studentAPI.DELETE("/registration/cart/:code", handlers.Registration.RemoveFromCart)
		studentAPI.POST("/registration/commit", handlers.Registration.CommitRegistration)
		studentAPI.DELETE("/registration/courses/:code", handlers.Registration.DropCourse)

		studentAPI.GET("/notifications", handlers.Notification.ListNotifications)
		studentAPI.POST("/notifications/read-all", handlers.Notification.MarkAllRead)
		studentAPI.POST("/notifications/:id/read", handlers.Notification.MarkRead)
	}

	// ─── 3. WebSocket Group (Student WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1/student")
	ws.Use(middleware.RequireStudentWSAuth(portal))
	{
		ws.GET("/notifications/stream", handlers.WS.NotificationStream)
	}

	return router
}
