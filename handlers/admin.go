package handlers

import (
	"net/http"

	"urbanfix/services/admin"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes platform aggregates to admin accounts.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Service.GetStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": stats})
}
