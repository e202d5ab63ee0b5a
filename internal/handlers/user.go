package handlers

import (
	"errors"
	"net/http"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users. Besides the read-only
// CRUD surface it assembles the profile read model: every counter and list on
// a user representation is computed from the ledgers at request time.
type UserHandler struct {
	userRepository            repositories.UserRepository
	postRepository            repositories.PostRepository
	likedUserRepository       repositories.LikedUserRepository
	followedHashtagRepository repositories.FollowedHashtagRepository
	likedPostRepository       repositories.LikedPostRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	likedUserRepo repositories.LikedUserRepository,
	followedHashtagRepo repositories.FollowedHashtagRepository,
	likedPostRepo repositories.LikedPostRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:            userRepo,
		postRepository:            postRepo,
		likedUserRepository:       likedUserRepo,
		followedHashtagRepository: followedHashtagRepo,
		likedPostRepository:       likedPostRepo,
	}
}

// RegisterUserRoutes registers user-related routes. Users are read-only
// except for the caller's own profile.
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
	g.GET("/users/me", h.GetMe)
	g.PUT("/users/me", h.UpdateMe)
	g.DELETE("/users/me", h.DeleteMe)
	g.GET("/users/:id", h.GetUser)
}

// GetUsers retrieves all users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser retrieves a user's profile with its derived counters
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.respondWithProfile(c, id)
}

// GetMe retrieves the authenticated caller's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	return h.respondWithProfile(c, getUserIDFromContext(c))
}

// UpdateMe updates the authenticated caller's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user")
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteMe deletes the authenticated caller. Every relationship row the user
// appears in and all content the user authored cascade away with the delete.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	if err := h.userRepository.DeleteUser(getUserIDFromContext(c)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) respondWithProfile(c echo.Context, id uint) error {
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	profile, err := h.buildUserProfile(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, profile)
}

// buildUserProfile composes the user read model from live ledger queries
func (h *UserHandler) buildUserProfile(user *models.User) (*models.UserProfile, error) {
	likesCount, err := h.likedUserRepository.GetLikesCount(user.ID)
	if err != nil {
		return nil, err
	}
	likedIDs, err := h.likedUserRepository.GetLikedUserIDs(user.ID)
	if err != nil {
		return nil, err
	}
	likedByCount, err := h.likedUserRepository.GetLikedByCount(user.ID)
	if err != nil {
		return nil, err
	}
	followedCount, err := h.followedHashtagRepository.GetFollowedCount(user.ID)
	if err != nil {
		return nil, err
	}
	follows, err := h.followedHashtagRepository.GetFollowedHashtagsByUser(user.ID)
	if err != nil {
		return nil, err
	}
	followedHashtags := make([]models.HashtagRef, 0, len(follows))
	for _, f := range follows {
		followedHashtags = append(followedHashtags, models.HashtagRef{ID: f.Hashtag.ID, Name: f.Hashtag.Name})
	}
	postsCount, err := h.postRepository.GetPostsCountByUser(user.ID)
	if err != nil {
		return nil, err
	}
	likedPostsCount, err := h.likedPostRepository.GetLikedPostsCountByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if likedIDs == nil {
		likedIDs = []uint{}
	}
	return &models.UserProfile{
		ID:                       user.ID,
		Email:                    user.Email,
		Username:                 user.Username,
		Bio:                      user.Bio,
		Registered:               user.Registered,
		AmountOfLikedUsers:       likesCount,
		LikedUserIDs:             likedIDs,
		AmountOfMeLikedUsers:     likedByCount,
		AmountOfFollowedHashtags: followedCount,
		FollowedHashtags:         followedHashtags,
		PostsCount:               postsCount,
		LikedPostsCount:          likedPostsCount,
	}, nil
}
