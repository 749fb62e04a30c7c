package routes

import (
	"arakucamp/handlers"
	"arakucamp/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the availability lookup, the wizard session
// endpoints, and the authenticated payment endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	// Browsing availability and walking the wizard require no sign-in; the
	// guest authenticates when they reach the payment step.
	r.GET("/api/availability/:checkIn", handlers.CheckAvailability)

	wizard := r.Group("/api/booking")
	{
		wizard.POST("/session", handlers.StartBookingSession)
		wizard.GET("/session/:sessionID", handlers.GetBookingSession)
		wizard.DELETE("/session/:sessionID", handlers.CancelBookingSession)
		wizard.PUT("/session/:sessionID/tents", handlers.SelectTents)
		wizard.PUT("/session/:sessionID/tents/toggle", handlers.ToggleTent)
		wizard.PUT("/session/:sessionID/details", handlers.SubmitDetails)
		wizard.GET("/session/:sessionID/confirmation", handlers.GetConfirmation)
		wizard.DELETE("/session/:sessionID/confirmation", handlers.ClearConfirmation)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.FirebaseAuthMiddleware())
		bookings.POST("", handlers.CreateBooking)
		bookings.POST("/verify-payment", handlers.VerifyPayment)
		bookings.POST("/poll", handlers.PollPaymentStatus)
		bookings.GET("/status/:orderId", handlers.GetPaymentStatus)
		bookings.GET("/user/:userId", handlers.GetUserBookings)
	}
}
