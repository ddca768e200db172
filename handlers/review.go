package handlers

import (
	"net/http"
	"strconv"

	"urbanfix/services/review"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and listing.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

func (h *ReviewHandler) SubmitHandler(c *gin.Context) {
	userID, _ := identity(c)
	var input review.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	r, err := h.Service.Submit(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": r})
}

func (h *ReviewHandler) ListHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	reviews, err := h.Service.ListForProvider(providerID, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": reviews})
}
