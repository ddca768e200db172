package handlers

import (
	"net/http"

	"urbanfix/services/message"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes the booking-anchored messaging relay.
type MessageHandler struct {
	Service message.MessageService
}

func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

func (h *MessageHandler) PostHandler(c *gin.Context) {
	userID, _ := identity(c)
	var input struct {
		BookingID string `json:"bookingId"`
		Text      string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	msg, err := h.Service.Post(userID, input.BookingID, input.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": msg})
}

func (h *MessageHandler) ListHandler(c *gin.Context) {
	userID, _ := identity(c)
	messages, err := h.Service.List(userID, c.Query("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": messages})
}

func (h *MessageHandler) ContactHandler(c *gin.Context) {
	userID, _ := identity(c)
	var input struct {
		ProviderID string `json:"providerId"`
		Text       string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	result, err := h.Service.Contact(userID, input.ProviderID, input.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": result})
}
