package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/middleware"
	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

func TestAuthLoginAdmin(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewAuthHandler(f.auth, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "admin@saraswaticlasses.com",
		Password: "admin123",
	})

	h.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestAuthLoginRejected(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewAuthHandler(f.auth, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "nope",
	})

	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthSessionEmpty(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewAuthHandler(f.auth, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/auth/session", nil)
	c.Request = req

	h.Session(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Data)
}

func TestJWTMiddlewareGuardsRoutes(t *testing.T) {
	f := newHandlerFixture(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping",
		middleware.JWT(f.auth),
		middleware.RequireRoles(models.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	// No token.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid admin token.
	login := loginAs(t, f, "admin@saraswaticlasses.com", "admin123")
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRBACRejectsWrongRole(t *testing.T) {
	f := newHandlerFixture(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/student/ping",
		middleware.JWT(f.auth),
		middleware.RequireRoles(models.RoleStudent),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	login := loginAs(t, f, "admin@saraswaticlasses.com", "admin123")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/student/ping", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func loginAs(t *testing.T, f *handlerFixture, email, password string) *models.LoginResponse {
	t.Helper()
	login, err := f.auth.Login(context.Background(), models.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	return login
}
