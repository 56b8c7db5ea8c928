package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/models"
)

// TestClient_ErrorKindByStatus - Kind ошибки выводится из HTTP-статуса платформы
func TestClient_ErrorKindByStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		kind   apperrors.ErrorKind
	}{
		{http.StatusBadRequest, apperrors.KindValidation},
		{http.StatusUnprocessableEntity, apperrors.KindValidation},
		{http.StatusUnauthorized, apperrors.KindAuth},
		{http.StatusForbidden, apperrors.KindForbidden},
		{http.StatusNotFound, apperrors.KindNotFound},
		{http.StatusConflict, apperrors.KindConflict},
		{http.StatusInternalServerError, apperrors.KindServer},
		{http.StatusBadGateway, apperrors.KindServer},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"error": "upstream said no"}`))
		}))

		client := NewClientWithHTTP(srv.URL, nil)
		err := client.get(context.Background(), "tok", "/api/v1/users/admin-users/", nil, &struct{}{})
		srv.Close()

		require.Error(t, err, "status %d", tc.status)
		assert.Equal(t, tc.kind, apperrors.KindOf(err), "status %d", tc.status)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, "upstream said no", appErr.Message)
	}
}

// TestClient_BearerForwarded - токен уходит платформе как есть
func TestClient_BearerForwarded(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, nil)
	err := client.get(context.Background(), "raw-admin-token", "/api/v1/ai/admin-metrics/", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer raw-admin-token", gotAuth)
}

// TestClient_ListEnvelope - конверт {results, count} и query-параметры пагинации
func TestClient_ListEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{"results": [{"id": "u1", "email": "a@b.kz"}], "count": 95}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, nil)
	users := NewUsersClient(client)

	page, err := users.List(context.Background(), "tok", ListParams{Page: 3, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, 95, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "u1", page.Results[0].ID)
}

// TestClient_CanceledContextPassesThrough - отмена контекста не маскируется
// под сетевую ошибку
func TestClient_CanceledContextPassesThrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewClientWithHTTP(srv.URL, nil)
	err := client.get(ctx, "tok", "/slow/", nil, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotEqual(t, apperrors.KindNetwork, apperrors.KindOf(err))
}

// TestClient_TransportErrorIsNetworkKind - недоступная платформа дает KindNetwork
func TestClient_TransportErrorIsNetworkKind(t *testing.T) {
	t.Parallel()

	// Сервер сразу закрыт: соединение откажет
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClientWithHTTP(srv.URL, nil)
	err := client.get(context.Background(), "tok", "/unreachable/", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNetwork, apperrors.KindOf(err))
}

// TestClient_MalformedJSON - битый JSON от платформы репортится как KindServer
func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, nil)
	var out models.AdminUser
	err := client.get(context.Background(), "tok", "/broken/", nil, &out)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindServer, apperrors.KindOf(err))
}
