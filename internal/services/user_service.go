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

// ============ СЕРВИС СТРАНИЦЫ ПОЛЬЗОВАТЕЛЕЙ ============

// Фасеты страницы пользователей. Значение "all" снимает ограничение
// еще на уровне listview.Apply.
var userFacets = map[string]listview.FacetFunc[models.AdminUser]{
	"role": func(u models.AdminUser) string { return string(u.Role) },
	"status": func(u models.AdminUser) string {
		if u.IsActive {
			return "active"
		}
		return "inactive"
	},
	"verified": func(u models.AdminUser) string {
		if u.IsVerified {
			return "verified"
		}
		return "unverified"
	},
}

type UserService struct {
	users *upstream.UsersClient
	store *sessionStore[models.AdminUser]
}

func NewUserService(users *upstream.UsersClient) *UserService {
	cfg := config.GetConfig()
	return &UserService{
		users: users,
		store: newSessionStore(func() *listSession[models.AdminUser] {
			s := newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(u models.AdminUser) string { return u.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.AdminUser], error) {
					return users.List(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
			return s
		}),
	}
}

// List загружает страницу списка и stats параллельно. Упавший /stats/
// не валит страницу: карточки просто не рисуются.
func (s *UserService) List(ctx context.Context, adminID, token string, q dto.UserListQuery) (dto.UserListResponse, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.UserStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.users.Stats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "user stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.UserListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), userFacets)
	rows := make([]dto.UserRow, 0, len(visible))
	for _, u := range visible {
		rows = append(rows, dto.UserRow{AdminUser: u, Badge: models.UserBadge(u)})
	}

	return dto.UserListResponse{
		Results: rows,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}

func (s *UserService) Get(ctx context.Context, token, id string) (dto.UserRow, error) {
	user, err := s.users.Get(ctx, token, id)
	if err != nil {
		return dto.UserRow{}, err
	}
	return dto.UserRow{AdminUser: user, Badge: models.UserBadge(user)}, nil
}

// ToggleActive переключает is_active на платформе и примиряет локальную
// копию списка с подтвержденной записью. Полный re-fetch не нужен.
func (s *UserService) ToggleActive(ctx context.Context, adminID, token, id string) (dto.UserRow, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	updated, err := s.users.ToggleActive(ctx, token, id)
	if err != nil {
		sess.Feed.Error("Failed to update user status")
		return dto.UserRow{}, err
	}

	sess.List.Replace(updated)
	if updated.IsActive {
		sess.Feed.Success("User activated")
	} else {
		sess.Feed.Success("User deactivated")
	}
	return dto.UserRow{AdminUser: updated, Badge: models.UserBadge(updated)}, nil
}

func (s *UserService) ToggleVerified(ctx context.Context, adminID, token, id string) (dto.UserRow, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	updated, err := s.users.ToggleVerified(ctx, token, id)
	if err != nil {
		sess.Feed.Error("Failed to update user verification")
		return dto.UserRow{}, err
	}

	sess.List.Replace(updated)
	if updated.IsVerified {
		sess.Feed.Success("User verified")
	} else {
		sess.Feed.Success("User verification removed")
	}
	return dto.UserRow{AdminUser: updated, Badge: models.UserBadge(updated)}, nil
}

// Delete удаляет пользователя. Деструктивное действие требует
// явного подтверждения от вызывающего.
func (s *UserService) Delete(ctx context.Context, adminID, token, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	sess := s.store.get(adminID)
	sess.SetToken(token)

	if err := s.users.Delete(ctx, token, id); err != nil {
		sess.Feed.Error("Failed to delete user")
		return err
	}

	sess.List.Remove(id)
	sess.Feed.Success("User deleted")
	return nil
}

// Notices возвращает живые snackbar-уведомления страницы
func (s *UserService) Notices(adminID string) []snackbar.Notice {
	return s.store.get(adminID).Feed.Active()
}
