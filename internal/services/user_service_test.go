package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/config"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services/dto"
	"jobhub_admin/internal/snackbar"
	"jobhub_admin/internal/upstream"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.UI.PageSize = 20
	cfg.UI.SnackbarTTL = 5
	config.AppConfig = cfg
}

// fakePlatform эмулирует платформенный API пользователей
type fakePlatform struct {
	users      []models.AdminUser
	statsFail  bool
	listCalls  int
	statsCalls int
}

func (f *fakePlatform) handler() http.Handler {
	mux := http.NewServeMux()

	// go1.21's ServeMux has no method patterns or wildcards, so the
	// routes are dispatched manually off the subtree handler.
	mux.HandleFunc("/api/v1/users/admin-users/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/v1/users/admin-users/")
		switch {
		case rest == "" && r.Method == http.MethodGet:
			f.listCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": f.users,
				"count":   len(f.users),
			})

		case rest == "stats/" && r.Method == http.MethodGet:
			f.statsCalls++
			if f.statsFail {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error": "stats exploded"}`)
				return
			}
			json.NewEncoder(w).Encode(models.UserStats{Total: len(f.users), Active: 2})

		case strings.HasSuffix(rest, "/toggle-active/") && r.Method == http.MethodPost:
			id := strings.TrimSuffix(rest, "/toggle-active/")
			for i := range f.users {
				if f.users[i].ID == id {
					f.users[i].IsActive = !f.users[i].IsActive
					json.NewEncoder(w).Encode(f.users[i])
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error": "User not found"}`)

		case strings.HasSuffix(rest, "/") && r.Method == http.MethodDelete:
			id := strings.TrimSuffix(rest, "/")
			for i := range f.users {
				if f.users[i].ID == id {
					f.users = append(f.users[:i], f.users[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error": "User not found"}`)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return mux
}

func newUserFixture(t *testing.T, platform *fakePlatform) (*UserService, *httptest.Server) {
	t.Helper()
	setTestConfig(t)

	srv := httptest.NewServer(platform.handler())
	t.Cleanup(srv.Close)

	client := upstream.NewClientWithHTTP(srv.URL, nil)
	return NewUserService(upstream.NewUsersClient(client)), srv
}

func seedUsers() []models.AdminUser {
	return []models.AdminUser{
		{ID: "u1", Email: "alice@corp.kz", FirstName: "Alice", Role: models.UserRoleAdmin, IsActive: true, IsVerified: true},
		{ID: "u2", Email: "bob@corp.kz", FirstName: "Bob", Role: models.UserRoleJobSeeker, IsActive: true, IsVerified: false},
		{ID: "u3", Email: "carol@mail.ru", FirstName: "Carol", Role: models.UserRoleJobSeeker, IsActive: false, IsVerified: true},
	}
}

// TestUserService_List - список + stats + badge у каждой строки
func TestUserService_List(t *testing.T) {
	platform := &fakePlatform{users: seedUsers()}
	svc, _ := newUserFixture(t, platform)

	resp, err := svc.List(context.Background(), "admin-1", "tok", dto.UserListQuery{})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 3)
	assert.Equal(t, 3, resp.Meta.Count)
	assert.Equal(t, 1, resp.Meta.TotalPages)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 3, resp.Stats.Total)

	// Badge выводится из состояния записи
	assert.Equal(t, "Active", resp.Results[0].Badge.Label)
	assert.Equal(t, "Unverified", resp.Results[1].Badge.Label)
	assert.Equal(t, "Inactive", resp.Results[2].Badge.Label)
}

// TestUserService_List_FilterAndFacets - фильтрация делается локально,
// без повторного похода на платформу
func TestUserService_List_FilterAndFacets(t *testing.T) {
	platform := &fakePlatform{users: seedUsers()}
	svc, _ := newUserFixture(t, platform)

	resp, err := svc.List(context.Background(), "admin-1", "tok", dto.UserListQuery{
		Search: "corp.kz",
		Role:   "job_seeker",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "u2", resp.Results[0].ID)
	// Count остается платформенным, фильтр его не трогает
	assert.Equal(t, 3, resp.Meta.Count)
}

// TestUserService_List_StatsFailureTolerated - упавший /stats/ не валит страницу
func TestUserService_List_StatsFailureTolerated(t *testing.T) {
	platform := &fakePlatform{users: seedUsers(), statsFail: true}
	svc, _ := newUserFixture(t, platform)

	resp, err := svc.List(context.Background(), "admin-1", "tok", dto.UserListQuery{})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 3)
	assert.Nil(t, resp.Stats)
}

// TestUserService_ToggleActive - мутация примиряет локальную копию
// и публикует snackbar
func TestUserService_ToggleActive(t *testing.T) {
	platform := &fakePlatform{users: seedUsers()}
	svc, _ := newUserFixture(t, platform)

	_, err := svc.List(context.Background(), "admin-1", "tok", dto.UserListQuery{})
	require.NoError(t, err)

	listCallsBefore := platform.listCalls
	row, err := svc.ToggleActive(context.Background(), "admin-1", "tok", "u1")
	require.NoError(t, err)
	assert.False(t, row.IsActive)
	assert.Equal(t, "Inactive", row.Badge.Label)

	// Мутация примиряет локальную копию, re-fetch списка не делается
	assert.Equal(t, listCallsBefore, platform.listCalls)

	resp, err := svc.List(context.Background(), "admin-1", "tok", dto.UserListQuery{Status: "inactive"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)

	notices := svc.Notices("admin-1")
	require.NotEmpty(t, notices)
	assert.Equal(t, snackbar.LevelSuccess, notices[0].Level)
	assert.Equal(t, "User deactivated", notices[0].Message)
}

// TestUserService_ToggleActive_NotFound - ошибка платформы дает
// error-snackbar и не трогает список
func TestUserService_ToggleActive_NotFound(t *testing.T) {
	platform := &fakePlatform{users: seedUsers()}
	svc, _ := newUserFixture(t, platform)

	_, err := svc.ToggleActive(context.Background(), "admin-1", "tok", "missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	notices := svc.Notices("admin-1")
	require.NotEmpty(t, notices)
	assert.Equal(t, snackbar.LevelError, notices[0].Level)
}

// TestUserService_Delete - удаление требует подтверждения, после
// успеха запись уходит из локальной копии и count уменьшается
func TestUserService_Delete(t *testing.T) {
	platform := &fakePlatform{users: seedUsers()}
	svc, _ := newUserFixture(t, platform)

	_, err := svc.List(context.Background(), "admin-1", "tok", dto.UserListQuery{})
	require.NoError(t, err)

	// Без подтверждения - отказ, платформа не трогается
	err = svc.Delete(context.Background(), "admin-1", "tok", "u2", false)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Len(t, platform.users, 3)

	err = svc.Delete(context.Background(), "admin-1", "tok", "u2", true)
	require.NoError(t, err)
	assert.Len(t, platform.users, 2)

	notices := svc.Notices("admin-1")
	require.NotEmpty(t, notices)
	assert.Equal(t, "User deleted", notices[0].Message)
}

// TestUserService_SessionsIsolated - у разных админов свое состояние страницы
func TestUserService_SessionsIsolated(t *testing.T) {
	platform := &fakePlatform{users: seedUsers()}
	svc, _ := newUserFixture(t, platform)

	_, err := svc.ToggleActive(context.Background(), "admin-1", "tok", "u1")
	require.NoError(t, err)

	assert.NotEmpty(t, svc.Notices("admin-1"))
	assert.Empty(t, svc.Notices("admin-2"))
}
