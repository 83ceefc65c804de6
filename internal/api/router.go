package api

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aciky/community-api/internal/api/handler"
	"github.com/aciky/community-api/internal/api/middleware"
	"github.com/aciky/community-api/internal/core/ports"
	"github.com/aciky/community-api/internal/core/service"
	"github.com/aciky/community-api/internal/infrastructure/config"
	"github.com/aciky/community-api/internal/infrastructure/db/postgres"
	"github.com/aciky/community-api/internal/ratelimit"
)

// NewRouter builds the Echo instance with all routes registered. rdb may be
// nil when the in-memory rate-limit store is in use.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, limitStore ratelimit.Store, mailer ports.Mailer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsProduction())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(session.Middleware(newSessionStore(cfg)))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	testimonialRepo := postgres.NewTestimonialRepository(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	contactService := service.NewContactService(mailer, cfg.AdminEmail)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	contactHandler := handler.NewContactHandler(contactService)

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin(userRepo)

	rl := cfg.RateLimit
	authLimiter := middleware.RateLimit(ratelimit.Config{
		Name:        "auth",
		Window:      rl.AuthWindow,
		MaxRequests: rl.AuthMax,
		Message:     "Too many authentication attempts. Please try again in 15 minutes.",
	}, limitStore, log)
	contactLimiter := middleware.RateLimit(ratelimit.Config{
		Name:        "contact",
		Window:      rl.ContactWindow,
		MaxRequests: rl.ContactMax,
		Message:     "Too many contact form submissions. Please try again later.",
	}, limitStore, log)
	bookingLimiter := middleware.RateLimit(ratelimit.Config{
		Name:        "booking",
		Window:      rl.BookingWindow,
		MaxRequests: rl.BookingMax,
		Message:     "Too many booking requests. Please try again later.",
	}, limitStore, log)
	generalLimiter := middleware.RateLimit(ratelimit.Config{
		Name:        "general",
		Window:      rl.GeneralWindow,
		MaxRequests: rl.GeneralMax,
		Message:     "Too many requests from this IP. Please try again later.",
		ExemptAdmin: true,
	}, limitStore, log)

	// --- Routes ---
	apiGroup := e.Group("/api", generalLimiter)

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", authHandler.Register, authLimiter)
	authGroup.POST("/login", authHandler.Login, authLimiter)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/check", authHandler.Check)
	authGroup.PUT("/profile", authHandler.UpdateProfile, requireAuth)

	usersGroup := apiGroup.Group("/users")
	usersGroup.GET("/instructors", userHandler.Instructors)
	usersGroup.GET("", userHandler.List, requireAdmin)
	usersGroup.POST("", userHandler.Create, requireAdmin)
	usersGroup.GET("/:id", userHandler.Get, requireAdmin)
	usersGroup.PUT("/:id", userHandler.Update, requireAdmin)
	usersGroup.DELETE("/:id", userHandler.Delete, requireAdmin)

	testimonialsGroup := apiGroup.Group("/testimonials")
	testimonialsGroup.GET("", testimonialHandler.ListApproved)
	testimonialsGroup.POST("", testimonialHandler.Submit)
	testimonialsGroup.GET("/all", testimonialHandler.ListAll, requireAdmin)
	testimonialsGroup.PUT("/:id/approval", testimonialHandler.SetApproval, requireAdmin)
	testimonialsGroup.DELETE("/:id", testimonialHandler.Delete, requireAdmin)

	apiGroup.POST("/contact", contactHandler.Contact, contactLimiter)
	apiGroup.POST("/booking", contactHandler.Booking, bookingLimiter)

	// --- Health probes and metrics (no auth, no limiting) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// newSessionStore configures the cookie store. Development keeps lax
// same-site over plain http; production serves the front end from another
// origin, so the cookie goes secure + SameSite=None.
func newSessionStore(cfg *config.Config) sessions.Store {
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.IsProduction() {
		store.Options.SameSite = http.SameSiteNoneMode
	}
	return store
}
