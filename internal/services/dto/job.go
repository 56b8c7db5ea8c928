package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

type JobListQuery struct {
	Page    int    `form:"page" validate:"omitempty,min=1"`
	Search  string `form:"search"`
	Status  string `form:"status" validate:"omitempty,is-job-status"`
	JobType string `form:"job_type"`
	Remote  string `form:"remote"`
}

func (q JobListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"status":   q.Status,
			"job_type": q.JobType,
			"remote":   q.Remote,
		},
	}
}

// UpdateJobStatusRequest - смена статуса вакансии. "all" - значение
// фасета, не статус, поэтому для мутации оно запрещено явно.
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,ne=all,is-job-status"`
}

type JobRow struct {
	models.Job
	Badge models.Badge `json:"badge"`
}

type JobListResponse struct {
	Results []JobRow         `json:"results"`
	Meta    ListMeta         `json:"meta"`
	Stats   *models.JobStats `json:"stats,omitempty"`
}
