package handlers

import (
	"errors"
	"net/http"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowedUserHandler handles HTTP requests for the user-follows-user ledger
type FollowedUserHandler struct {
	followedUserRepository repositories.FollowedUserRepository
	userRepository         repositories.UserRepository
}

// NewFollowedUserHandler creates a new FollowedUserHandler
func NewFollowedUserHandler(followedUserRepo repositories.FollowedUserRepository, userRepo repositories.UserRepository) *FollowedUserHandler {
	return &FollowedUserHandler{
		followedUserRepository: followedUserRepo,
		userRepository:         userRepo,
	}
}

// RegisterFollowedUserRoutes registers followed-user routes
func (h *FollowedUserHandler) RegisterFollowedUserRoutes(g *echo.Group) {
	g.GET("/followed-users", h.GetFollowedUsers)
	g.POST("/followed-users", h.CreateFollowedUser)
	g.DELETE("/followed-users/:id", h.DeleteFollowedUser)
	g.GET("/followed-users/my-followed-users", h.GetMyFollowedUsers)
}

// GetFollowedUsers retrieves every row of the ledger
func (h *FollowedUserHandler) GetFollowedUsers(c echo.Context) error {
	follows, err := h.followedUserRepository.GetFollowedUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, follows)
}

// CreateFollowedUser records that the caller follows the target user.
// Following twice is a no-op success.
func (h *FollowedUserHandler) CreateFollowedUser(c echo.Context) error {
	var req models.CreateFollowedUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.FollowedUser); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	follow := &models.FollowedUser{
		FollowerID:     getUserIDFromContext(c),
		FollowedUserID: req.FollowedUser,
	}
	created, err := h.followedUserRepository.CreateFollowedUser(follow)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to follow user")
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"detail": "You already follow this user."})
	}
	return c.JSON(http.StatusCreated, follow)
}

// DeleteFollowedUser removes the caller's follow of the target user
func (h *FollowedUserHandler) DeleteFollowedUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if err := h.followedUserRepository.DeleteFollowedUser(getUserIDFromContext(c), targetID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Follow relationship not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to unfollow user")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMyFollowedUsers retrieves the users followed by the caller
func (h *FollowedUserHandler) GetMyFollowedUsers(c echo.Context) error {
	follows, err := h.followedUserRepository.GetFollowedUsersByUser(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	out := make([]echo.Map, 0, len(follows))
	for _, f := range follows {
		out = append(out, echo.Map{
			"id":            f.ID,
			"follower":      f.FollowerID,
			"followed_user": models.UserRef{ID: f.Followed.ID, Username: f.Followed.Username},
		})
	}
	return c.JSON(http.StatusOK, out)
}
