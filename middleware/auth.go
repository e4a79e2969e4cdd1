package middleware

import (
	"net/http"
	"strings"

	userRepo "fittribe/database/repository/user"
	"fittribe/models"
	"fittribe/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token, checks it against the stored
// token hash and sets userID and role in the request context.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Compute the token hash and look the account up by it, so revoked
		// tokens stop working immediately.
		computedHash := utils.HashToken(tokenString)
		account, err := repo.GetByTokenHash(computedHash)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
			return
		}

		c.Set("userID", account.ID)
		c.Set("role", account.Role)
		c.Next()
	}
}

// AdminOnlyMiddleware allows only accounts with the admin role through. It
// must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
