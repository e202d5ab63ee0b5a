package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowedHashtagHandler handles HTTP requests for the user-follows-hashtag ledger
type FollowedHashtagHandler struct {
	followedHashtagRepository repositories.FollowedHashtagRepository
	hashtagRepository         repositories.HashtagRepository
	userRepository            repositories.UserRepository
}

// NewFollowedHashtagHandler creates a new FollowedHashtagHandler
func NewFollowedHashtagHandler(
	followedHashtagRepo repositories.FollowedHashtagRepository,
	hashtagRepo repositories.HashtagRepository,
	userRepo repositories.UserRepository,
) *FollowedHashtagHandler {
	return &FollowedHashtagHandler{
		followedHashtagRepository: followedHashtagRepo,
		hashtagRepository:         hashtagRepo,
		userRepository:            userRepo,
	}
}

// RegisterFollowedHashtagRoutes registers followed-hashtag routes
func (h *FollowedHashtagHandler) RegisterFollowedHashtagRoutes(g *echo.Group) {
	g.GET("/followed-hashtags", h.GetFollowedHashtags)
	g.POST("/followed-hashtags", h.CreateFollowedHashtag)
	g.DELETE("/followed-hashtags/:hashtag_id", h.DeleteFollowedHashtag)
	g.GET("/followed-hashtags/my-followed", h.GetMyFollowed)
	g.GET("/followed-hashtags/followed-count", h.GetFollowedCount)
}

// GetFollowedHashtags retrieves every row of the ledger
func (h *FollowedHashtagHandler) GetFollowedHashtags(c echo.Context) error {
	follows, err := h.followedHashtagRepository.GetFollowedHashtags()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, follows)
}

// CreateFollowedHashtag records that the caller follows a hashtag. Following
// a hashtag twice is a no-op success.
func (h *FollowedHashtagHandler) CreateFollowedHashtag(c echo.Context) error {
	var req models.CreateFollowedHashtagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.hashtagRepository.GetHashtagByID(req.Hashtag); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Hashtag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	follow := &models.FollowedHashtag{
		UserID:    getUserIDFromContext(c),
		HashtagID: req.Hashtag,
	}
	created, err := h.followedHashtagRepository.CreateFollowedHashtag(follow)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to follow hashtag")
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"detail": "You already follow this hashtag."})
	}
	return c.JSON(http.StatusCreated, follow)
}

// DeleteFollowedHashtag removes the caller's follow of the given hashtag
func (h *FollowedHashtagHandler) DeleteFollowedHashtag(c echo.Context) error {
	hashtagID, err := parseIDParam(c, "hashtag_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag ID")
	}
	if err := h.followedHashtagRepository.DeleteFollowedHashtag(getUserIDFromContext(c), hashtagID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Follow relationship not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to unfollow hashtag")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMyFollowed retrieves the hashtags followed by the caller
func (h *FollowedHashtagHandler) GetMyFollowed(c echo.Context) error {
	follows, err := h.followedHashtagRepository.GetFollowedHashtagsByUser(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	out := make([]echo.Map, 0, len(follows))
	for _, f := range follows {
		out = append(out, echo.Map{
			"id":      f.ID,
			"user":    f.UserID,
			"hashtag": models.HashtagRef{ID: f.Hashtag.ID, Name: f.Hashtag.Name},
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetFollowedCount retrieves how many hashtags a user follows
func (h *FollowedHashtagHandler) GetFollowedCount(c echo.Context) error {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id query parameter is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id must be an integer")
	}
	if _, err := h.userRepository.GetUserByID(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	count, err := h.followedHashtagRepository.GetFollowedCount(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":                        uint(id),
		"amount_of_followed_hashtags": count,
	})
}
