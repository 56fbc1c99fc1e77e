package handlers

import (
	"net/http"

	"music_recs/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListUsers returns a paginated user listing for admins.
func (h *UserHandler) ListUsers(c *gin.Context) {
	offset := parseIntQuery(c, "offset", 0, 0)
	limit := parseIntQuery(c, "limit", 100, 500)

	users, err := h.userRepo.ListUsers(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch users",
			"error":   err.Error(),
		})
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"users": users,
			"count": len(users),
		},
	})
}
