package routes

import (
	"net/http"

	"classbook/internal/config"
	"classbook/internal/database"
	"classbook/internal/delivery/http/handler"
	"classbook/internal/infrastructure/database/postgres"
	"classbook/internal/logger"
	"classbook/internal/middleware"
	"classbook/internal/usecase/catalog"
	"classbook/internal/usecase/payment"
	"classbook/internal/usecase/reservation"
	"classbook/internal/usecase/teacher"
	"classbook/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires repositories, services and handlers onto a gin engine.
// It returns the engine and the user service so the caller can run the
// refresh token cleanup job.
func SetupRoutes(cfg *config.Config, db *database.Database) (*gin.Engine, *user.Service) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	refreshTokenRepository := postgres.NewRefreshTokenRepository(db)
	catalogRepository := postgres.NewCatalogRepository(db)
	reservationRepository := postgres.NewReservationRepository(db)
	paymentRepository := postgres.NewPaymentRepository(db)

	userService := user.NewService(userRepository, refreshTokenRepository, cfg)
	catalogService := catalog.NewService(catalogRepository)
	reservationService := reservation.NewService(reservationRepository, userRepository)
	teacherService := teacher.NewService(reservationRepository)
	paymentService := payment.NewService(paymentRepository, userRepository)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	classHandler := handler.NewClassHandler(catalogService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	teacherHandler := handler.NewTeacherHandler(teacherService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		classHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProfileRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			teacherHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router, userService
}
