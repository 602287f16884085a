package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/services/admin"
)

// HandlerBundle groups the handlers and the auth collaborator needed to wire
// the route tree.
type HandlerBundle struct {
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
	Admin   *handlers.AdminHandler
	Auth    *handlers.AuthHandler

	AuthService admin.AuthService
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/timeslots", hb.Catalog.ListTimeSlots)
	}
}

// RegisterBookingRoutes registers the public booking endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations. Everything but
// login sits behind the session middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Auth.Login)

		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AuthService))
		adminGroup.POST("/logout", hb.Auth.Logout)
		adminGroup.POST("/services", hb.Admin.AddService)
		adminGroup.DELETE("/services/:id", hb.Admin.DeleteService)
		adminGroup.POST("/timeslots", hb.Admin.AddTimeSlot)
		adminGroup.DELETE("/timeslots/:slot", hb.Admin.DeleteTimeSlot)
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
