package routes

import (
	"net/http"
	"time"

	userRepo "urbanfix/database/repository/user"
	"urbanfix/handlers"
	"urbanfix/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle carries the assembled handlers plus the dependencies the
// auth middleware needs.
type HandlerBundle struct {
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client

	UserHandler     *handlers.UserHandler
	ProviderHandler *handlers.ProviderHandler
	BookingHandler  *handlers.BookingHandler
	ReviewHandler   *handlers.ReviewHandler
	MessageHandler  *handlers.MessageHandler
	AdminHandler    *handlers.AdminHandler
}

func (hb *HandlerBundle) auth() gin.HandlerFunc {
	return middleware.AuthMiddleware(hb.UserRepo, hb.AuthCache)
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.UserHandler.RegisterHandler)
		api.POST("/login", hb.UserHandler.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(hb.auth())
		api.GET("/me", hb.UserHandler.MeHandler)
	}
}

// RegisterProviderRoutes registers the provider directory endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public directory endpoints.
		api.GET("", hb.ProviderHandler.SearchHandler)
		api.GET("/id/:id", hb.ProviderHandler.GetByIDHandler)

		// Profile management requires authentication.
		protected := api.Group("")
		protected.Use(hb.auth())
		protected.POST("/register", hb.ProviderHandler.RegisterHandler)
		protected.POST("/photos", hb.ProviderHandler.UploadPhotoHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(hb.auth())
		api.POST("/quick", hb.BookingHandler.QuickBookHandler)
		api.POST("/manage", hb.BookingHandler.ManageHandler)
		api.GET("/my", hb.BookingHandler.MyBookingsHandler)
		api.GET("/id/:id", hb.BookingHandler.GetByIDHandler)
	}
}

// RegisterReviewRoutes registers review submission and listing.
func RegisterReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		// Approved reviews are public.
		api.GET("", hb.ReviewHandler.ListHandler)

		protected := api.Group("")
		protected.Use(hb.auth())
		protected.POST("", hb.ReviewHandler.SubmitHandler)
	}
}

// RegisterMessageRoutes registers the booking-anchored messaging relay.
func RegisterMessageRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(hb.auth())
		api.POST("", hb.MessageHandler.PostHandler)
		api.GET("", hb.MessageHandler.ListHandler)
		api.POST("/contact", hb.MessageHandler.ContactHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(hb.auth(), middleware.RequireAdmin())
		api.GET("/stats", hb.AdminHandler.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Urbanfix"})
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

	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
