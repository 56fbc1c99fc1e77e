package middleware

import (
	"net/http"

	"music_recs/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware guards write endpoints. It runs after JWTMiddleware, so
// user_id is already in the context.
func AdminMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		user, err := userRepo.FindUserByID(userID)
		if err != nil || user.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
