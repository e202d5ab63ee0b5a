package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikedUserHandler handles HTTP requests for the user-likes-user ledger
type LikedUserHandler struct {
	likedUserRepository repositories.LikedUserRepository
	userRepository      repositories.UserRepository
}

// NewLikedUserHandler creates a new LikedUserHandler
func NewLikedUserHandler(likedUserRepo repositories.LikedUserRepository, userRepo repositories.UserRepository) *LikedUserHandler {
	return &LikedUserHandler{
		likedUserRepository: likedUserRepo,
		userRepository:      userRepo,
	}
}

// RegisterLikedUserRoutes registers liked-user routes
func (h *LikedUserHandler) RegisterLikedUserRoutes(g *echo.Group) {
	g.GET("/liked-users", h.GetLikedUsers)
	g.POST("/liked-users", h.CreateLikedUser)
	g.DELETE("/liked-users", h.DeleteLikedUser)
	g.GET("/liked-users/count-likes", h.CountLikes)
	g.GET("/liked-users/count-liked-by", h.CountLikedBy)
}

// GetLikedUsers retrieves every row of the ledger
func (h *LikedUserHandler) GetLikedUsers(c echo.Context) error {
	likes, err := h.likedUserRepository.GetLikedUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, likes)
}

// CreateLikedUser records that one user likes another. If the pair already
// exists this is a no-op success returning the existing association.
func (h *LikedUserHandler) CreateLikedUser(c echo.Context) error {
	var req models.CreateLikedUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	for _, id := range []uint{req.Liker, req.LikedUser} {
		if _, err := h.userRepository.GetUserByID(id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "User not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
	}

	like := &models.LikedUser{
		LikerID:     req.Liker,
		LikedUserID: req.LikedUser,
	}
	created, err := h.likedUserRepository.CreateLikedUser(like)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like user")
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"detail": "You already like this user."})
	}
	return c.JSON(http.StatusCreated, like)
}

// DeleteLikedUser removes a user like identified by the request body.
// Missing fields are a 400; a missing user or relationship is a 404.
func (h *LikedUserHandler) DeleteLikedUser(c echo.Context) error {
	var req models.DeleteLikedUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Both liker and liked_user are required")
	}

	for _, id := range []uint{req.Liker, req.LikedUser} {
		if _, err := h.userRepository.GetUserByID(id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "User not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
	}

	if err := h.likedUserRepository.DeleteLikedUser(req.Liker, req.LikedUser); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Like relationship not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete like")
	}
	return c.NoContent(http.StatusNoContent)
}

// CountLikes retrieves how many users the given user likes
func (h *LikedUserHandler) CountLikes(c echo.Context) error {
	userID, err := h.userIDQueryParam(c)
	if err != nil {
		return err
	}
	count, err := h.likedUserRepository.GetLikesCount(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": userID, "likes_count": count})
}

// CountLikedBy retrieves how many users like the given user
func (h *LikedUserHandler) CountLikedBy(c echo.Context) error {
	userID, err := h.userIDQueryParam(c)
	if err != nil {
		return err
	}
	count, err := h.likedUserRepository.GetLikedByCount(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": userID, "liked_by_count": count})
}

// userIDQueryParam parses the mandatory user_id query parameter and checks
// the user exists. Missing or non-integer values are a 400.
func (h *LikedUserHandler) userIDQueryParam(c echo.Context) (uint, error) {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "user_id query parameter is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "user_id must be an integer")
	}
	if _, err := h.userRepository.GetUserByID(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return uint(id), nil
}
