package handlers

import (
	"errors"
	"net/http"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// HashtagHandler handles HTTP requests related to hashtags
type HashtagHandler struct {
	hashtagRepository repositories.HashtagRepository
}

// NewHashtagHandler creates a new HashtagHandler
func NewHashtagHandler(hashtagRepo repositories.HashtagRepository) *HashtagHandler {
	return &HashtagHandler{hashtagRepository: hashtagRepo}
}

// RegisterHashtagRoutes registers hashtag-related routes
func (h *HashtagHandler) RegisterHashtagRoutes(g *echo.Group) {
	g.GET("/hashtags", h.GetHashtags)
	g.POST("/hashtags", h.CreateHashtag)
	g.GET("/hashtags/search", h.SearchHashtags)
	g.GET("/hashtags/:id", h.GetHashtag)
	g.PUT("/hashtags/:id", h.UpdateHashtag)
	g.DELETE("/hashtags/:id", h.DeleteHashtag)
}

// GetHashtags retrieves all hashtags
func (h *HashtagHandler) GetHashtags(c echo.Context) error {
	tags, err := h.hashtagRepository.GetHashtags()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, tags)
}

// CreateHashtag creates a hashtag, resolving by name first: creating a name
// that already exists returns the existing row instead of a duplicate.
func (h *HashtagHandler) CreateHashtag(c echo.Context) error {
	var req models.CreateHashtagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, created, err := h.hashtagRepository.FindOrCreateByName(req.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create hashtag")
	}
	if !created {
		return c.JSON(http.StatusOK, tag)
	}
	return c.JSON(http.StatusCreated, tag)
}

// SearchHashtags retrieves hashtags whose name contains the query,
// case-insensitively
func (h *HashtagHandler) SearchHashtags(c echo.Context) error {
	tags, err := h.hashtagRepository.SearchHashtags(c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, tags)
}

// GetHashtag retrieves a hashtag by ID
func (h *HashtagHandler) GetHashtag(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag ID")
	}
	tag, err := h.hashtagRepository.GetHashtagByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Hashtag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, tag)
}

// UpdateHashtag renames a hashtag
func (h *HashtagHandler) UpdateHashtag(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag ID")
	}

	var req models.UpdateHashtagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.hashtagRepository.GetHashtagByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Hashtag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if existing, err := h.hashtagRepository.GetHashtagByName(req.Name); err == nil && existing.ID != tag.ID {
		return echo.NewHTTPError(http.StatusConflict, "Hashtag with this name already exists")
	}

	tag.Name = req.Name
	if err := h.hashtagRepository.UpdateHashtag(tag); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update hashtag")
	}
	return c.JSON(http.StatusOK, tag)
}

// DeleteHashtag deletes a hashtag by ID
func (h *HashtagHandler) DeleteHashtag(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag ID")
	}
	if err := h.hashtagRepository.DeleteHashtag(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Hashtag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete hashtag")
	}
	return c.NoContent(http.StatusNoContent)
}
