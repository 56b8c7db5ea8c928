package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub_admin/internal/auth"
	"jobhub_admin/internal/config"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/upstream"
	"jobhub_admin/internal/validator"
)

func setupUserRouter(t *testing.T, platformURL string) *gin.Engine {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.UI.PageSize = 20
	cfg.UI.SnackbarTTL = 5
	config.AppConfig = cfg

	gin.SetMode(gin.TestMode)
	router := gin.New()

	client := upstream.NewClientWithHTTP(platformURL, nil)
	svc := services.NewUserService(upstream.NewUsersClient(client))
	handler := NewUserHandler(NewBaseHandler(validator.New()), svc)

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func fakeUsersPlatform(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/admin-users/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []models.AdminUser{
				{ID: "u1", Email: "alice@corp.kz", IsActive: true, IsVerified: true},
			},
			"count": 1,
		})
	})
	mux.HandleFunc("/api/v1/users/admin-users/stats/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.UserStats{Total: 1})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// TestUserRoutes_RequireAuth - без токена 401, с не-админским токеном 403
func TestUserRoutes_RequireAuth(t *testing.T) {
	platform := fakeUsersPlatform(t)
	router := setupUserRouter(t, platform.URL)

	rec := doRequest(router, http.MethodGet, "/api/v1/admin/users", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	seekerToken, err := auth.GenerateToken("user-7", models.UserRoleJobSeeker)
	require.NoError(t, err)
	rec = doRequest(router, http.MethodGet, "/api/v1/admin/users", seekerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestUserRoutes_ListOK - админ получает страницу с badge и метаданными
func TestUserRoutes_ListOK(t *testing.T) {
	platform := fakeUsersPlatform(t)
	router := setupUserRouter(t, platform.URL)

	adminToken, err := auth.GenerateToken("admin-1", models.UserRoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, http.MethodGet, "/api/v1/admin/users?search=alice&status=active", adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Results []struct {
			ID    string `json:"id"`
			Badge struct {
				Label string `json:"label"`
			} `json:"badge"`
		} `json:"results"`
		Meta struct {
			Count      int `json:"count"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "u1", resp.Results[0].ID)
	assert.Equal(t, "Active", resp.Results[0].Badge.Label)
	assert.Equal(t, 1, resp.Meta.Count)
	assert.Equal(t, 1, resp.Meta.TotalPages)
}

// TestUserRoutes_AllFacetsAccepted - значение "all" валидно для КАЖДОГО
// фасета, включая enum-правила, и означает "без ограничения"
func TestUserRoutes_AllFacetsAccepted(t *testing.T) {
	platform := fakeUsersPlatform(t)
	router := setupUserRouter(t, platform.URL)

	adminToken, err := auth.GenerateToken("admin-1", models.UserRoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, http.MethodGet, "/api/v1/admin/users?role=all&status=all&verified=all", adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Results []json.RawMessage `json:"results"`
		Meta    struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Страница приходит целиком, фасеты со значением "all" ничего не режут
	assert.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.Meta.Count)
}

// TestUserRoutes_InvalidFacetRejected - неизвестное значение фасета
// отбрасывается валидатором до похода на платформу
func TestUserRoutes_InvalidFacetRejected(t *testing.T) {
	platform := fakeUsersPlatform(t)
	router := setupUserRouter(t, platform.URL)

	adminToken, err := auth.GenerateToken("admin-1", models.UserRoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, http.MethodGet, "/api/v1/admin/users?status=banana", adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHandleServiceError_SupersededIsNot500 - вытесненный fetch
// (context.Canceled из контроллера) не репортится как ошибка сервера
func TestHandleServiceError_SupersededIsNot500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?page=2", nil)

	base := NewBaseHandler(validator.New())
	base.HandleServiceError(c, context.Canceled)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST_SUPERSEDED")
}

// TestUserRoutes_DeleteRequiresConfirm - деструктивное действие без
// confirm=true отклоняется
func TestUserRoutes_DeleteRequiresConfirm(t *testing.T) {
	platform := fakeUsersPlatform(t)
	router := setupUserRouter(t, platform.URL)

	adminToken, err := auth.GenerateToken("admin-1", models.UserRoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, http.MethodDelete, "/api/v1/admin/users/u1", adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirm")
}
