package handlers

import (
	"net/http"

	"urbanfix/models"
	"urbanfix/services/booking"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking engine.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) QuickBookHandler(c *gin.Context) {
	userID, _ := identity(c)
	var input booking.QuickBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	b, err := h.Service.QuickBook(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": b})
}

func (h *BookingHandler) ManageHandler(c *gin.Context) {
	userID, role := identity(c)
	var input booking.ManageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	b, err := h.Service.Manage(userID, role, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": b})
}

func (h *BookingHandler) GetByIDHandler(c *gin.Context) {
	userID, role := identity(c)
	b, err := h.Service.GetForParticipant(userID, role, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": b})
}

// MyBookingsHandler returns the caller's bookings: the provider view when
// requested with ?as=provider, the customer view otherwise.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	userID, _ := identity(c)
	var (
		bookings []models.Booking
		err      error
	)
	if c.Query("as") == "provider" {
		bookings, err = h.Service.ListForProvider(userID)
	} else {
		bookings, err = h.Service.ListForCustomer(userID)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(bookings), "data": bookings})
}
