package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts and the feed
type PostHandler struct {
	postRepository      repositories.PostRepository
	likedPostRepository repositories.LikedPostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, likedPostRepo repositories.LikedPostRepository) *PostHandler {
	return &PostHandler{
		postRepository:      postRepo,
		likedPostRepository: likedPostRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/filter-by-hashtags", h.FilterByHashtags)
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.LikePost)
	g.POST("/posts/:id/unlike", h.UnlikePost)
	g.GET("/posts/:id/likes/count", h.GetLikesCountForPost)
}

// GetPosts lists posts newest first, optionally filtered by a single hashtag
// id or by author id
func (h *PostHandler) GetPosts(c echo.Context) error {
	var filter repositories.PostFilter

	if raw := c.QueryParam("hashtag"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag ID")
		}
		filter.HashtagIDs = []uint{uint(id)}
	}
	if raw := c.QueryParam("author"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid author ID")
		}
		filter.AuthorID = uint(id)
	}

	posts, err := h.postRepository.GetPosts(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// FilterByHashtags lists posts matching any of the given hashtag ids. Each
// qualifying post appears exactly once however many of the ids it matches.
func (h *PostHandler) FilterByHashtags(c echo.Context) error {
	raw := c.QueryParams()["hashtags"]
	if len(raw) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one hashtag ID is required")
	}
	ids := make([]uint, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag ID: "+s)
		}
		ids = append(ids, uint(id))
	}

	posts, err := h.postRepository.GetPosts(repositories.PostFilter{HashtagIDs: ids})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// CreatePost creates a new post. The author is always the authenticated
// caller regardless of the payload.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		Text:   req.Text,
		UserID: getUserIDFromContext(c),
	}
	if err := h.postRepository.CreatePost(post, req.Hashtags, req.References); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Referenced user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	created, err := h.postRepository.GetPostByID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusCreated, toPostDetailResponse(created))
}

// GetPost retrieves a post with nested hashtags, author and reference
// summaries and its comments newest first
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, toPostDetailResponse(post))
}

// UpdatePost updates an existing post. Hashtag and reference sets are
// replaced only when the field is present in the payload.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if post.UserID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	if err := h.postRepository.UpdatePost(post, req.Text, req.Hashtags, req.References); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Referenced user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update post")
	}

	updated, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, toPostDetailResponse(updated))
}

// DeletePost deletes a post together with its comments and likes
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if post.UserID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}
	if err := h.postRepository.DeletePost(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}
	return c.NoContent(http.StatusNoContent)
}

// LikePost records that the caller likes the post. Liking a post twice is a
// no-op success, not an error.
func (h *PostHandler) LikePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if _, err := h.postRepository.GetPostByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	like := &models.LikedPost{
		UserID: getUserIDFromContext(c),
		PostID: id,
	}
	created, err := h.likedPostRepository.CreateLikedPost(like)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like post")
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"detail": "You already like this post."})
	}
	return c.JSON(http.StatusCreated, echo.Map{"detail": "Post liked successfully."})
}

// UnlikePost removes the caller's like from the post
func (h *PostHandler) UnlikePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if _, err := h.postRepository.GetPostByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if err := h.likedPostRepository.DeleteLikedPost(getUserIDFromContext(c), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "You haven't liked this post")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to unlike post")
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Post unliked successfully."})
}

// GetLikesCountForPost retrieves the number of likes on a post
func (h *PostHandler) GetLikesCountForPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if _, err := h.postRepository.GetPostByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	count, err := h.likedPostRepository.GetLikesCountByPost(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, echo.Map{"post": id, "likes_count": count})
}

func toPostResponse(post *models.Post) models.PostResponse {
	hashtags := make([]models.HashtagRef, 0, len(post.Hashtags))
	for _, t := range post.Hashtags {
		hashtags = append(hashtags, models.HashtagRef{ID: t.ID, Name: t.Name})
	}
	references := make([]models.UserRef, 0, len(post.References))
	for _, u := range post.References {
		references = append(references, models.UserRef{ID: u.ID, Username: u.Username})
	}
	return models.PostResponse{
		ID:         post.ID,
		Text:       post.Text,
		Time:       post.Time,
		User:       models.UserRef{ID: post.User.ID, Username: post.User.Username},
		Hashtags:   hashtags,
		References: references,
	}
}

func toPostResponses(posts []models.Post) []models.PostResponse {
	out := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out
}

func toPostDetailResponse(post *models.Post) models.PostDetailResponse {
	comments := make([]models.CommentResponse, 0, len(post.Comments))
	for _, cm := range post.Comments {
		comments = append(comments, models.CommentResponse{
			ID:       cm.ID,
			PostID:   cm.PostID,
			UserID:   cm.UserID,
			UserName: cm.User.Username,
			Text:     cm.Text,
			Time:     cm.Time,
		})
	}
	return models.PostDetailResponse{
		PostResponse:  toPostResponse(post),
		Comments:      comments,
		CommentsCount: len(comments),
	}
}
