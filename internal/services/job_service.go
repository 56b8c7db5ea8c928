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

// ============ СЕРВИС СТРАНИЦЫ ВАКАНСИЙ ============

var jobFacets = map[string]listview.FacetFunc[models.Job]{
	"status":   func(j models.Job) string { return string(j.Status) },
	"job_type": func(j models.Job) string { return string(j.JobType) },
	"remote":   func(j models.Job) string { return string(j.RemoteOption) },
}

type JobService struct {
	jobs  *upstream.JobsClient
	store *sessionStore[models.Job]
}

func NewJobService(jobs *upstream.JobsClient) *JobService {
	cfg := config.GetConfig()
	return &JobService{
		jobs: jobs,
		store: newSessionStore(func() *listSession[models.Job] {
			return newListSession(cfg.UI.PageSize, cfg.SnackbarTTL(),
				// Вакансии адресуются slug-ом, он и служит ключом примирения
				func(j models.Job) string { return j.Slug },
				func(ctx context.Context, token string, page, pageSize int) (listview.Page[models.Job], error) {
					return jobs.List(ctx, token, upstream.ListParams{Page: page, PageSize: pageSize})
				})
		}),
	}
}

func (s *JobService) List(ctx context.Context, adminID, token string, q dto.JobListQuery) (dto.JobListResponse, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	page := q.Page
	if page < 1 {
		page = 1
	}

	var stats *models.JobStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _, err := sess.List.Load(gctx, page)
		return err
	})
	g.Go(func() error {
		st, err := s.jobs.Stats(gctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "job stats unavailable", "error", err)
			return nil
		}
		stats = &st
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.JobListResponse{}, err
	}

	visible := listview.Apply(sess.List.Items(), q.Criteria(), jobFacets)
	rows := make([]dto.JobRow, 0, len(visible))
	for _, j := range visible {
		rows = append(rows, dto.JobRow{Job: j, Badge: models.JobBadge(j)})
	}

	return dto.JobListResponse{
		Results: rows,
		Meta:    listMeta(sess.List),
		Stats:   stats,
	}, nil
}

// UpdateStatus переводит вакансию в новый статус и примиряет локальную
// копию с записью, которую подтвердила платформа
func (s *JobService) UpdateStatus(ctx context.Context, adminID, token, slug string, status models.JobStatus) (dto.JobRow, error) {
	sess := s.store.get(adminID)
	sess.SetToken(token)

	updated, err := s.jobs.UpdateStatus(ctx, token, slug, status)
	if err != nil {
		sess.Feed.Error("Failed to update job status")
		return dto.JobRow{}, err
	}

	sess.List.Replace(updated)
	sess.Feed.Success("Job status updated to " + string(updated.Status))
	return dto.JobRow{Job: updated, Badge: models.JobBadge(updated)}, nil
}

func (s *JobService) Notices(adminID string) []snackbar.Notice {
	return s.store.get(adminID).Feed.Active()
}
