package handlers

import (
	"net/http"
	"testing"
)

func TestCountLikesRequiresUserID(t *testing.T) {
	h := NewLikedUserHandler(nil, nil)

	c, _ := newJSONContext(http.MethodGet, "/liked-users/count-likes", "")
	assertHTTPError(t, h.CountLikes(c), http.StatusBadRequest)
}

func TestCountLikesRejectsNonIntegerUserID(t *testing.T) {
	h := NewLikedUserHandler(nil, nil)

	c, _ := newJSONContext(http.MethodGet, "/liked-users/count-likes?user_id=abc", "")
	assertHTTPError(t, h.CountLikes(c), http.StatusBadRequest)
}

func TestCountLikedByRejectsUnknownUser(t *testing.T) {
	h := NewLikedUserHandler(nil, newFakeUserRepo())

	c, _ := newJSONContext(http.MethodGet, "/liked-users/count-liked-by?user_id=42", "")
	assertHTTPError(t, h.CountLikedBy(c), http.StatusNotFound)
}

func TestCreateLikedUserRequiresBothSides(t *testing.T) {
	h := NewLikedUserHandler(nil, nil)

	c, _ := newJSONContext(http.MethodPost, "/liked-users", `{"liker":1}`)
	assertHTTPError(t, h.CreateLikedUser(c), http.StatusBadRequest)
}

func TestDeleteLikedUserRequiresBothSides(t *testing.T) {
	h := NewLikedUserHandler(nil, nil)

	c, _ := newJSONContext(http.MethodDelete, "/liked-users", `{}`)
	assertHTTPError(t, h.DeleteLikedUser(c), http.StatusBadRequest)
}
