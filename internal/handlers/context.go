package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/hive-social/hive-backend/internal/models"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// getUserIDFromContext extracts the authenticated user's id placed in the
// context by the JWT middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
