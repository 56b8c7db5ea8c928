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

// ============ СЕРВИС СТРАНИЦЫ УВЕДОМЛЕНИЙ ============

var notificationFacets = map[string]listview.FacetFunc[models.Notification]{
	"priority": func(n models.Notification) string { return string(n.Priority) },
	"read": func(n models.Notification) string {
		if n.IsRead {
			return "read"
		}
		return "unread"
	},
}

type NotificationService struct {
	notifications *upstream.NotificationsClient
	store         *sessionStore[models.Notification]
}

func NewNotificationService(notifications *upstream.NotificationsClient) *NotificationService {
	cfg := config.GetConfig()
	return &NotificationService{
		notifications: notifications,
		store: newSessionStore(func() *listSession[models.Notification] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(n models.Notification) string { return n.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.Notification], error) {
					return notifications.List(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
	}
}

func (s *NotificationService) List(ctx context.Context, adminID, token string, q dto.NotificationListQuery) (dto.NotificationListResponse, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.NotificationStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.notifications.Stats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "notification stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.NotificationListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), notificationFacets)
	rows := make([]dto.NotificationRow, 0, len(visible))
	for _, n := range visible {
		rows = append(rows, dto.NotificationRow{Notification: n, Badge: models.PriorityBadge(n.Priority)})
	}

	return dto.NotificationListResponse{
		Results: rows,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}

// Templates - справочник шаблонов, без пагинации
func (s *NotificationService) Templates(ctx context.Context, token string) (dto.TemplateListResponse, error) {
	templates, err := s.notifications.Templates(ctx, token)
	if err != nil {
		return dto.TemplateListResponse{}, err
	}
	return dto.TemplateListResponse{Results: templates, Count: len(templates)}, nil
}

func (s *NotificationService) Delete(ctx context.Context, adminID, token, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	sess := s.store.get(adminID)
	sess.SetToken(token)

	if err := s.notifications.Delete(ctx, token, id); err != nil {
		sess.Feed.Error("Failed to delete notification")
		return err
	}

	sess.List.Remove(id)
	sess.Feed.Success("Notification deleted")
	return nil
}

func (s *NotificationService) Notices(adminID string) []snackbar.Notice {
	return s.store.get(adminID).Feed.Active()
}
