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

// ============ СЕРВИС СТРАНИЦЫ КОМПАНИЙ ============

var companyFacets = map[string]listview.FacetFunc[models.Company]{
	"verified": func(c models.Company) string {
		if c.IsVerified {
			return "verified"
		}
		return "unverified"
	},
	"status": func(c models.Company) string {
		if c.IsActive {
			return "active"
		}
		return "inactive"
	},
}

// CompanyService - read-only страница: платформа не дает админских
// мутаций по компаниям, поэтому здесь только список и stats
type CompanyService struct {
	companies *upstream.CompaniesClient
	store     *sessionStore[models.Company]
}

func NewCompanyService(companies *upstream.CompaniesClient) *CompanyService {
	cfg := config.GetConfig()
	return &CompanyService{
		companies: companies,
		store: newSessionStore(func() *listSession[models.Company] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				func(c models.Company) string { return c.ID },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.Company], error) {
					return companies.List(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
	}
}

func (s *CompanyService) List(ctx context.Context, adminID, token string, q dto.CompanyListQuery) (dto.CompanyListResponse, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.CompanyStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.companies.Stats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "company stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.CompanyListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), companyFacets)
	rows := make([]dto.CompanyRow, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, dto.CompanyRow{Company: c, Badge: models.CompanyBadge(c)})
	}

	return dto.CompanyListResponse{
		Results: rows,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}

func (s *CompanyService) Notices(adminID string) []snackbar.Notice {
	return s.store.get(adminID).Feed.Active()
}
