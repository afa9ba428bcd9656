package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwsolucoes/carteira-api/internal/middleware"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/bwsolucoes/carteira-api/internal/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svcs := services.NewServices(repository.NewMemoryRepositories())
	h := NewHandlers(svcs)

	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("carteira_session", store))

	v1 := router.Group("/api/v1")
	v1.GET("/health", h.Health.Index)
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)
	v1.POST("/auth/logout", h.Auth.Logout)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth())
	protected.GET("/clients", h.Client.Index)
	protected.POST("/clients", h.Client.Create)

	return router
}

func postJSON(router *gin.Engine, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carteira-api")
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterOpensSession(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/v1/auth/register", RegisterRequest{
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "secret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// The session cookie authenticates subsequent requests
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/v1/auth/register", RegisterRequest{
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "secret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/v1/auth/login", LoginRequest{Username: "alice", Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
}

func TestCreateClientValidationStatus(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/v1/auth/register", RegisterRequest{
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "secret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()

	w = postJSON(router, "/api/v1/clients", map[string]string{
		"company_name": "Acme",
	}, cookies)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Nome da Empresa, Contratante e E-mail são obrigatórios.")
}
