package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for handler tests
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	user.Registered = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepo) GetUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateUser(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) DeleteUser(id uint) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Username: username, Email: email, Password: string(hash)}
	require.NoError(t, repo.CreateUser(user))
	return user
}

func TestRegisterSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	h := NewAuthHandler(newFakeUserRepo())

	c, rec := newJSONContext(http.MethodPost, "/register",
		`{"email":"alice@example.com","username":"alice","password":"longenough","bio":"hi"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "longenough", "password must never be serialized")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	h := NewAuthHandler(newFakeUserRepo())

	c, _ := newJSONContext(http.MethodPost, "/register",
		`{"email":"alice@example.com","username":"alice","password":"short"}`)
	assertHTTPError(t, h.Register(c), http.StatusBadRequest)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, _ := newJSONContext(http.MethodPost, "/register",
		`{"email":"alice@example.com","username":"alice2","password":"longenough"}`)
	assertHTTPError(t, h.Register(c), http.StatusConflict)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, _ := newJSONContext(http.MethodPost, "/register",
		`{"email":"other@example.com","username":"alice","password":"longenough"}`)
	assertHTTPError(t, h.Register(c), http.StatusConflict)
}

func TestTokenIssuesPair(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, rec := newJSONContext(http.MethodPost, "/api/token",
		`{"username":"alice","password":"longenough"}`)
	require.NoError(t, h.Token(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access)
	require.NotEmpty(t, resp.Refresh)

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(resp.Access, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, alice.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Empty(t, claims.TokenType)

	refreshClaims := &models.JwtCustomClaims{}
	_, err = jwt.ParseWithClaims(resp.Refresh, refreshClaims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestTokenAcceptsEmailAsLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, rec := newJSONContext(http.MethodPost, "/api/token",
		`{"username":"alice@example.com","password":"longenough"}`)
	require.NoError(t, h.Token(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access"`)
}

func TestTokenRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, _ := newJSONContext(http.MethodPost, "/api/token",
		`{"username":"alice","password":"wrongpassword"}`)
	assertHTTPError(t, h.Token(c), http.StatusUnauthorized)
}

func TestTokenRejectsUnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	h := NewAuthHandler(newFakeUserRepo())

	c, _ := newJSONContext(http.MethodPost, "/api/token",
		`{"username":"ghost","password":"whatever1"}`)
	assertHTTPError(t, h.Token(c), http.StatusUnauthorized)
}

func TestTokenRefreshExchangesRefreshForAccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, rec := newJSONContext(http.MethodPost, "/api/token",
		`{"username":"alice","password":"longenough"}`)
	require.NoError(t, h.Token(c))
	var pair struct {
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))

	c, rec = newJSONContext(http.MethodPost, "/api/token/refresh",
		`{"refresh":"`+pair.Refresh+`"}`)
	require.NoError(t, h.TokenRefresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access"`)
}

func TestTokenRefreshRejectsAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "longenough")
	h := NewAuthHandler(repo)

	c, rec := newJSONContext(http.MethodPost, "/api/token",
		`{"username":"alice","password":"longenough"}`)
	require.NoError(t, h.Token(c))
	var pair struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))

	// An access token lacks the refresh claim and must not be exchangeable
	c, _ = newJSONContext(http.MethodPost, "/api/token/refresh",
		`{"refresh":"`+pair.Access+`"}`)
	assertHTTPError(t, h.TokenRefresh(c), http.StatusUnauthorized)
}
