package api

import (
	"log"
	stdhttp "net/http"

	intconfig "railway/internal/config"
	h "railway/internal/http/handlers"
	"railway/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/profile", middleware.Auth(), h.Profile)

		// Trains (public reads)
		trains := api.Group("/trains")
		trains.GET("", h.GetTrains)
		trains.GET("/search", h.SearchTrains)
		trains.GET("/:id", h.GetTrainByID)

		// Stations (public reads)
		stations := api.Group("/stations")
		stations.GET("", h.GetStations)
		stations.GET("/search", h.SearchStations)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("/pnr/:pnrNumber", h.PNRStatus) // public, PNR is the capability
		bookings.POST("", middleware.Auth(), h.CreateBooking)
		bookings.GET("", middleware.Auth(), h.GetMyBookings)
		bookings.GET("/:id", middleware.Auth(), h.GetBookingByID)
		bookings.PUT("/:id/cancel", middleware.Auth(), h.CancelBooking)
		bookings.GET("/:id/e-ticket", middleware.Auth(), h.GetBookingETicket)
	}

	return r
}
