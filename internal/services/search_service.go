package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"jobhub_admin/internal/config"
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services/dto"
	"jobhub_admin/internal/upstream"
)

// ============ СЕРВИС СТРАНИЦЫ ПОИСКОВОЙ АНАЛИТИКИ ============

// SearchService - read-only аналитика: список запросов + сводка.
// Мутаций нет, поэтому и ленты уведомлений у страницы нет.
type SearchService struct {
	search *upstream.SearchClient
	store  *sessionStore[models.SearchQuery]
}

func NewSearchService(search *upstream.SearchClient) *SearchService {
	cfg := config.GetConfig()
	return &SearchService{
		search: search,
		store: newSessionStore(func() *listSession[models.SearchQuery] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(q models.SearchQuery) string { return q.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.SearchQuery], error) {
					return search.Queries(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
	}
}

func (s *SearchService) List(ctx context.Context, adminID, token string, q dto.SearchQueryListQuery) (dto.SearchQueryListResponse, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.SearchStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.search.Stats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "search stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.SearchQueryListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), nil)
	return dto.SearchQueryListResponse{
		Results: visible,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}
