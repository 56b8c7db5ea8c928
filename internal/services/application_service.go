package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"jobhub_admin/internal/config"
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services/dto"
	"jobhub_admin/internal/snackbar"
	"jobhub_admin/internal/upstream"
)

// ============ СЕРВИС СТРАНИЦЫ ОТКЛИКОВ ============

var applicationFacets = map[string]listview.FacetFunc[models.Application]{
	"status": func(a models.Application) string { return string(a.Status) },
}

type ApplicationService struct {
	applications *upstream.ApplicationsClient
	store        *sessionStore[models.Application]
}

func NewApplicationService(applications *upstream.ApplicationsClient) *ApplicationService {
	cfg := config.GetConfig()
	return &ApplicationService{
		applications: applications,
		store: newSessionStore(func() *listSession[models.Application] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(a models.Application) string { return a.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.Application], error) {
					return applications.List(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
	}
}

func (s *ApplicationService) List(ctx context.Context, adminID, token string, q dto.ApplicationListQuery) (dto.ApplicationListResponse, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.ApplicationStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.applications.Stats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "application stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.ApplicationListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), applicationFacets)
	rows := make([]dto.ApplicationRow, 0, len(visible))
	for _, a := range visible {
		rows = append(rows, dto.ApplicationRow{Application: a, Badge: models.ApplicationBadge(a)})
	}

	return dto.ApplicationListResponse{
		Results: rows,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}

// UpdateStatus двигает отклик по воронке ревью. Заметки работодателя
// опциональны и уходят вместе со статусом.
func (s *ApplicationService) UpdateStatus(ctx context.Context, adminID, token, id string, status models.ApplicationStatus, notes string) (dto.ApplicationRow, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	updated, err := s.applications.UpdateStatus(ctx, token, id, status, notes)
	if err != nil {
		sess.Feed.Error("Failed to update application status")
		return dto.ApplicationRow{}, err
	}

	sess.List.Replace(updated)
	sess.Feed.Success("Application moved to " + string(updated.Status))
	return dto.ApplicationRow{Application: updated, Badge: models.ApplicationBadge(updated)}, nil
}

func (s *ApplicationService) Notices(adminID string) []snackbar.Notice {
	return s.store.get(adminID).Feed.Active()
}
