package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sesotho-storefront/internal/middleware"
	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/utils"
)

func newAdminRouter(t *testing.T, password string) chi.Router {
	t.Helper()

	passwordHash := ""
	if password != "" {
		hash, err := utils.HashPassword(password)
		require.NoError(t, err)
		passwordHash = hash
	}

	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := NewAdminHandler(testCatalog(), nil, store, passwordHash)

	r := chi.NewRouter()
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuthMiddleware(store))
			r.Put("/products/{id}", handler.UpdateProduct)
		})
	})
	return r
}

func TestAdminHandler_Login_Success(t *testing.T) {
	router := newAdminRouter(t, "correct horse battery staple")

	rec, cookies := doRequest(t, router, http.MethodPost, "/admin/login",
		LoginRequest{Password: "correct horse battery staple"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, cookies)

	// The authenticated session opens the guarded routes
	rec, _ = doRequest(t, router, http.MethodPut, "/admin/products/missing",
		models.ProductUpdateRequest{Name: "Renamed"}, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler_Login_WrongPassword(t *testing.T) {
	router := newAdminRouter(t, "correct horse battery staple")

	rec, _ := doRequest(t, router, http.MethodPost, "/admin/login",
		LoginRequest{Password: "guess"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_Login_NotConfigured(t *testing.T) {
	router := newAdminRouter(t, "")

	rec, _ := doRequest(t, router, http.MethodPost, "/admin/login",
		LoginRequest{Password: "anything"}, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAuthMiddleware_BlocksAnonymous(t *testing.T) {
	router := newAdminRouter(t, "correct horse battery staple")

	rec, _ := doRequest(t, router, http.MethodPut, "/admin/products/p1",
		models.ProductUpdateRequest{Name: "Renamed"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_Logout_RevokesSession(t *testing.T) {
	router := newAdminRouter(t, "correct horse battery staple")

	rec, cookies := doRequest(t, router, http.MethodPost, "/admin/login",
		LoginRequest{Password: "correct horse battery staple"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, cookies = doRequest(t, router, http.MethodPost, "/admin/logout", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodPut, "/admin/products/p1",
		models.ProductUpdateRequest{Name: "Renamed"}, cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
