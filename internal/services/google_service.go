package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/config"
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services/dto"
	"jobhub_admin/internal/snackbar"
	"jobhub_admin/internal/upstream"
)

// ============ СЕРВИС СТРАНИЦЫ GOOGLE-ИНТЕГРАЦИИ ============

var integrationFacets = map[string]listview.FacetFunc[models.GoogleIntegration]{
	"status": func(g models.GoogleIntegration) string { return string(g.Status) },
}

var responseFacets = map[string]listview.FacetFunc[models.EmailResponse]{
	"response_type": func(r models.EmailResponse) string { return string(r.ResponseType) },
}

// GoogleService обслуживает три списка одной страницы: интеграции,
// отправленные письма и входящие ответы. У каждого списка свое
// состояние, но лента уведомлений общая - страница-то одна.
type GoogleService struct {
	google *upstream.GoogleClient

	integrations *sessionStore[models.GoogleIntegration]
	emails       *sessionStore[models.EmailSentRecord]
	responses    *sessionStore[models.EmailResponse]
}

func NewGoogleService(google *upstream.GoogleClient) *GoogleService {
	cfg := config.GetConfig()
	return &GoogleService{
		google: google,
		integrations: newSessionStore(func() *listSession[models.GoogleIntegration] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(g models.GoogleIntegration) string { return g.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.GoogleIntegration], error) {
					return google.Integrations(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
		emails: newSessionStore(func() *listSession[models.EmailSentRecord] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(e models.EmailSentRecord) string { return e.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.EmailSentRecord], error) {
					return google.Emails(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
		responses: newSessionStore(func() *listSession[models.EmailResponse] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(r models.EmailResponse) string { return r.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.EmailResponse], error) {
					return google.EmailResponses(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
	}
}

func (s *GoogleService) ListIntegrations(ctx context.Context, adminID, token string, q dto.IntegrationListQuery) (dto.IntegrationListResponse, error) {
	sess := s.integrations.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.GoogleDashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.google.DashboardStats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "google dashboard stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.IntegrationListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), integrationFacets)
	rows := make([]dto.IntegrationRow, 0, len(visible))
	for _, integ := range visible {
		rows = append(rows, dto.IntegrationRow{GoogleIntegration: integ, Badge: models.IntegrationBadge(integ)})
	}

	return dto.IntegrationListResponse{
		Results: rows,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}

func (s *GoogleService) ListEmails(ctx context.Context, adminID, token string, q dto.EmailListQuery) (dto.EmailListResponse, error) {
	sess := s.emails.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}
	if _, _, err := sess.List.Load(ctx, page); err != nil {
		return dto.EmailListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), nil)
	return dto.EmailListResponse{
		Results: visible,
		Meta:    listMeta(sess.List),
	}, nil
}

func (s *GoogleService) ListResponses(ctx context.Context, adminID, token string, q dto.ResponseListQuery) (dto.EmailResponseListResponse, error) {
	sess := s.responses.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}
	if _, _, err := sess.List.Load(ctx, page); err != nil {
		return dto.EmailResponseListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), responseFacets)
	return dto.EmailResponseListResponse{
		Results: visible,
		Meta:    listMeta(sess.List),
	}, nil
}

// AuthorizeURL проксирует OAuth URL платформы, шлюз токены не хранит
func (s *GoogleService) AuthorizeURL(ctx context.Context, token string) (dto.AuthorizeResponse, error) {
	url, err := s.google.AuthorizeURL(ctx, token)
	if err != nil {
		return dto.AuthorizeResponse{}, err
	}
	return dto.AuthorizeResponse{AuthorizationURL: url}, nil
}

// Disconnect отзывает интеграцию. Деструктивно - требует подтверждения.
func (s *GoogleService) Disconnect(ctx context.Context, adminID, token string, confirmed bool) (dto.IntegrationRow, error) {
	if !confirmed {
		return dto.IntegrationRow{}, apperrors.ErrConfirmationRequired
	}

	sess := s.integrations.get(adminID)
	sess.SetToken(token)

	updated, err := s.google.Disconnect(ctx, token)
	if err != nil {
		sess.Feed.Error("Failed to disconnect Google account")
		return dto.IntegrationRow{}, err
	}

	sess.List.Replace(updated)
	sess.Feed.Success("Google account disconnected")
	return dto.IntegrationRow{GoogleIntegration: updated, Badge: models.IntegrationBadge(updated)}, nil
}

func (s *GoogleService) UpdateAutoApply(ctx context.Context, adminID, token string, req dto.UpdateAutoApplyRequest) (dto.IntegrationRow, error) {
	sess := s.integrations.get(adminID)
	sess.SetToken(token)

	updated, err := s.google.UpdateAutoApplySettings(ctx, token, req.Enabled, req.Filters())
	if err != nil {
		sess.Feed.Error("Failed to update auto-apply settings")
		return dto.IntegrationRow{}, err
	}

	sess.List.Replace(updated)
	if updated.AutoApplyEnabled {
		sess.Feed.Success("Auto-apply enabled")
	} else {
		sess.Feed.Success("Auto-apply disabled")
	}
	return dto.IntegrationRow{GoogleIntegration: updated, Badge: models.IntegrationBadge(updated)}, nil
}

// TriggerAutoApply запускает batch-прогон на платформе
func (s *GoogleService) TriggerAutoApply(ctx context.Context, adminID, token string) (dto.SessionRow, error) {
	sess := s.integrations.get(adminID)
	sess.SetToken(token)

	session, err := s.google.TriggerAutoApply(ctx, token)
	if err != nil {
		sess.Feed.Error("Failed to start auto-apply run")
		return dto.SessionRow{}, err
	}

	sess.Feed.Success("Auto-apply run started")
	return dto.SessionRow{AutoApplySession: session, Badge: models.SessionBadge(session)}, nil
}

// CheckResponses - ручной опрос входящих с той же страницы
func (s *GoogleService) CheckResponses(ctx context.Context, adminID, token string) (dto.CheckResponsesResponse, error) {
	sess := s.integrations.get(adminID)
	sess.SetToken(token)

	n, err := s.google.CheckResponses(ctx, token)
	if err != nil {
		sess.Feed.Error("Failed to check for new responses")
		return dto.CheckResponsesResponse{}, err
	}

	if n > 0 {
		sess.Feed.Success("New responses received")
	} else {
		sess.Feed.Push(snackbar.LevelInfo, "No new responses")
	}
	return dto.CheckResponsesResponse{NewResponses: n}, nil
}

func (s *GoogleService) Notices(adminID string) []snackbar.Notice {
	return s.integrations.get(adminID).Feed.Active()
}
