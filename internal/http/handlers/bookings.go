package handlers

import (
	"net/http"
	"strconv"

	"railway/internal/http/middleware"
	"railway/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req services.CreateBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	confirmation, err := svc.Create(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking successful",
		"booking": confirmation,
	})
}

// GET /api/bookings
func GetMyBookings(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	list, err := svc.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    list,
	})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	booking, passengers, err := svc.Detail(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"booking":    booking,
			"passengers": passengers,
		},
	})
}

// PUT /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	if err := svc.Cancel(middleware.GetUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
	})
}

// GET /api/bookings/pnr/:pnrNumber
func PNRStatus(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	status, err := svc.PNRStatus(c.Param("pnrNumber"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    status,
	})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}

	pdf, filename, err := svc.GenerateETicket(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
