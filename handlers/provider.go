package handlers

import (
	"net/http"
	"strconv"

	"urbanfix/models"
	"urbanfix/services/provider"
	"urbanfix/services/storage"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
)

const defaultSearchRadiusMeters = 10000

// ProviderHandler exposes the provider directory.
type ProviderHandler struct {
	Service provider.ProviderService
	Storage storage.StorageService
}

func NewProviderHandler(svc provider.ProviderService, store storage.StorageService) *ProviderHandler {
	return &ProviderHandler{Service: svc, Storage: store}
}

// SearchHandler handles GET /api/providers. Raw lat/lng query values are
// normalized into one canonical GeoJSON point here; the service and
// repository below only ever see that point.
func (h *ProviderHandler) SearchHandler(c *gin.Context) {
	category := c.Query("category")
	city := c.Query("city")
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	radius := float64(defaultSearchRadiusMeters)
	if raw := c.Query("radius"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	var point *models.GeoPoint
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr == nil && lngErr == nil {
		p := models.NewGeoPoint(lat, lng)
		point = &p
	}

	providers, err := h.Service.Search(provider.SearchFilters{
		Category:     category,
		MinRating:    minRating,
		City:         city,
		Point:        point,
		RadiusMeters: radius,
		Limit:        limit,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	searchParams := gin.H{
		"category":  category,
		"minRating": minRating,
		"city":      city,
		"radius":    radius / 1000, // echoed back in km
	}
	if point != nil {
		searchParams["coordinates"] = gin.H{"lat": lat, "lng": lng}
	} else {
		searchParams["coordinates"] = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"count":        len(providers),
		"data":         providers,
		"searchParams": searchParams,
	})
}

func (h *ProviderHandler) GetByIDHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": p})
}

func (h *ProviderHandler) RegisterHandler(c *gin.Context) {
	userID, _ := identity(c)
	var input provider.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	p, err := h.Service.Register(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": p})
}

// UploadPhotoHandler accepts a multipart photo, pushes it to object storage
// and appends the returned URL to the caller's provider profile.
func (h *ProviderHandler) UploadPhotoHandler(c *gin.Context) {
	userID, _ := identity(c)

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}
	tmpPath := "/tmp/" + file.Filename
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.RespondError(c, err)
		return
	}

	url, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "provider-photos")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	p, err := h.Service.AddPhoto(userID, url)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": gin.H{"url": url, "provider": p}})
}
