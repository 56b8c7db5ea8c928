package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/services/dto"
	"jobhub_admin/internal/snackbar"
)

// listMeta собирает пагинационные метаданные из контроллера списка
func listMeta[T any](c *listview.Controller[T]) dto.ListMeta {
	return dto.ListMeta{
		Count:      c.Count(),
		Page:       c.CurrentPage(),
		PageSize:   c.PageSize(),
		TotalPages: c.TotalPages(),
	}
}

// listSession - состояние одной страницы дашборда для одного админа:
// контроллер списка + лента snackbar-уведомлений. Каждая страница
// владеет своим деревом состояния, между собой они не пересекаются.
type listSession[T any] struct {
	List *listview.Controller[T]
	Feed *snackbar.Feed

	// Токен обновляется на каждом запросе: fetch-замыкание контроллера
	// читает актуальное значение, а не то, с которым сессия создана
	token atomic.Value
}

func (s *listSession[T]) SetToken(token string) {
	s.token.Store(token)
}

func (s *listSession[T]) Token() string {
	v, _ := s.token.Load().(string)
	return v
}

// tokenFetch - FetchFunc платформы, которой нужен bearer-токен
type tokenFetch[T any] func(ctx context.Context, token string, page, pageSize int) (listview.Page[T], error)

func newListSession[T any](pageSize int, snackTTL time.Duration, idOf func(T) string, fetch tokenFetch[T]) *listSession[T] {
	s := &listSession[T]{
		Feed: snackbar.NewFeed(snackTTL),
	}
	s.List = listview.NewController(pageSize, idOf, func(ctx context.Context, page, size int) (listview.Page[T], error) {
		return fetch(ctx, s.Token(), page, size)
	})
	return s
}

// sessionStore - сессии страницы по id админа. Копии одноразовые:
// потеря сессии при рестарте шлюза означает лишь повторный fetch.
type sessionStore[T any] struct {
	mu         sync.Mutex
	sessions   map[string]*listSession[T]
	newSession func() *listSession[T]
}

func newSessionStore[T any](newSession func() *listSession[T]) *sessionStore[T] {
	return &sessionStore[T]{
		sessions:   make(map[string]*listSession[T]),
		newSession: newSession,
	}
}

func (st *sessionStore[T]) get(adminID string) *listSession[T] {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[adminID]; ok {
		return s
	}
	s := st.newSession()
	st.sessions[adminID] = s
	return s
}
