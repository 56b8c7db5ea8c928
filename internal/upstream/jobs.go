package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const jobsBase = "/api/v1/jobs/admin-jobs/"

// JobsClient - ресурс /jobs/admin-jobs/
type JobsClient struct {
	c *Client
}

func NewJobsClient(c *Client) *JobsClient {
	return &JobsClient{c: c}
}

func (j *JobsClient) List(ctx context.Context, token string, params ListParams) (listview.Page[models.Job], error) {
	return getList[models.Job](ctx, j.c, token, jobsBase, params)
}

func (j *JobsClient) Stats(ctx context.Context, token string) (models.JobStats, error) {
	var stats models.JobStats
	err := j.c.get(ctx, token, jobsBase+"stats/", nil, &stats)
	return stats, err
}

// UpdateStatus переводит вакансию в новый статус. Вакансии адресуются
// slug-ом, не id - так исторически устроен платформенный API.
func (j *JobsClient) UpdateStatus(ctx context.Context, token, slug string, status models.JobStatus) (models.Job, error) {
	var job models.Job
	body := map[string]string{"status": string(status)}
	err := j.c.post(ctx, token, jobsBase+slug+"/update_status/", body, &job)
	return job, err
}
