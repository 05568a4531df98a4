package routes

import (
	"github.com/eddietapia/reservations/configs"
	"github.com/eddietapia/reservations/controllers"
	"github.com/eddietapia/reservations/events"
	"github.com/eddietapia/reservations/middlewares"
	"github.com/eddietapia/reservations/repository"
	"github.com/eddietapia/reservations/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, cache *repository.CatalogCache, publisher *events.Publisher) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	eaterRepo := repository.NewEaterRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	authSvc := services.NewAuthService(eaterRepo, cfg.JWTSecret, cfg.JWTTTL)
	restaurantSvc := services.NewRestaurantService(restaurantRepo, cache)
	availabilitySvc := services.NewAvailabilityService(eaterRepo, restaurantRepo, reservationRepo)
	reservationSvc := services.NewReservationService(db, eaterRepo, restaurantRepo, reservationRepo, publisher)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restaurantSvc)
	availCtrl := controllers.NewAvailabilityController(availabilitySvc)
	resvCtrl := controllers.NewReservationController(reservationSvc, services.QRGenerator{BaseURL: cfg.PublicBaseURL})

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public catalog + availability
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/available", availCtrl.Search)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Reservations (eater)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/reservations", resvCtrl.Create)
		u.GET("/reservations/:id", resvCtrl.Detail)
		u.DELETE("/reservations/:id", resvCtrl.Cancel)
		u.GET("/reservations/:id/qr", resvCtrl.CheckinCode)
		u.GET("/profile/reservations", resvCtrl.ListMine)
	}

	// Admin catalog management
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/restaurants", restCtrl.Create)
		admin.POST("/restaurants/:id/tables", restCtrl.AddTable)
		admin.PUT("/restaurants/:id/hours", restCtrl.SetHours)
	}
}
