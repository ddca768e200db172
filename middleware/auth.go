package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "urbanfix/database/repository/user"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token into a verified identity and sets
// "userID" and "role" in the gin context. Token hashes are validated against
// the Redis auth cache first, falling back to the user record on a miss.
func AuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		if authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			cancel()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
					return
				}
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				cancel()
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			}
			if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: validate against the stored token hash.
		usr, err := users.GetByIDWithProjection(userID, bson.M{"id": 1, "tokenHash": 1, "role": 1})
		if err != nil || usr == nil || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
			cancel()
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireAdmin gates a route group to accounts carrying the admin role claim.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
