package handlers

import (
	"net/http"

	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikedPostHandler exposes the read-only surface of the user-likes-post
// ledger. The mutations live on the post routes (like/unlike).
type LikedPostHandler struct {
	likedPostRepository repositories.LikedPostRepository
}

// NewLikedPostHandler creates a new LikedPostHandler
func NewLikedPostHandler(likedPostRepo repositories.LikedPostRepository) *LikedPostHandler {
	return &LikedPostHandler{likedPostRepository: likedPostRepo}
}

// RegisterLikedPostRoutes registers liked-post routes
func (h *LikedPostHandler) RegisterLikedPostRoutes(g *echo.Group) {
	g.GET("/liked-posts", h.GetLikedPosts)
	g.GET("/liked-posts/my-likes", h.GetMyLikes)
}

// GetLikedPosts retrieves every row of the ledger
func (h *LikedPostHandler) GetLikedPosts(c echo.Context) error {
	likes, err := h.likedPostRepository.GetLikedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, likes)
}

// GetMyLikes retrieves the posts liked by the caller
func (h *LikedPostHandler) GetMyLikes(c echo.Context) error {
	likes, err := h.likedPostRepository.GetLikedPostsByUser(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, likes)
}
