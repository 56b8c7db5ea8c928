package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

type IntegrationListQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,oneof=all connected disconnected expired revoked error"`
}

func (q IntegrationListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"status": q.Status,
		},
	}
}

type EmailListQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Search string `form:"search"`
}

func (q EmailListQuery) Criteria() listview.Criteria {
	return listview.Criteria{Search: q.Search}
}

type ResponseListQuery struct {
	Page         int    `form:"page" validate:"omitempty,min=1"`
	Search       string `form:"search"`
	ResponseType string `form:"response_type" validate:"omitempty,oneof=all interview_invite rejection request_info offer other"`
}

func (q ResponseListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"response_type": q.ResponseType,
		},
	}
}

// UpdateAutoApplyRequest - настройки автоотклика. Критерии фильтра
// свободнотекстовые, их интерпретирует платформа.
type UpdateAutoApplyRequest struct {
	Enabled         bool   `json:"enabled"`
	Keywords        string `json:"keywords"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	MinSalary       *int   `json:"min_salary" validate:"omitempty,min=0"`
}

func (r UpdateAutoApplyRequest) Filters() models.AutoApplyFilters {
	return models.AutoApplyFilters{
		Keywords:        r.Keywords,
		Location:        r.Location,
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		MinSalary:       r.MinSalary,
	}
}

type IntegrationRow struct {
	models.GoogleIntegration
	Badge models.Badge `json:"badge"`
}

type IntegrationListResponse struct {
	Results []IntegrationRow             `json:"results"`
	Meta    ListMeta                     `json:"meta"`
	Stats   *models.GoogleDashboardStats `json:"stats,omitempty"`
}

type AuthorizeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

type CheckResponsesResponse struct {
	NewResponses int `json:"new_responses"`
}

type SessionRow struct {
	models.AutoApplySession
	Badge models.Badge `json:"badge"`
}

type EmailListResponse struct {
	Results []models.EmailSentRecord `json:"results"`
	Meta    ListMeta                 `json:"meta"`
}

type EmailResponseListResponse struct {
	Results []models.EmailResponse `json:"results"`
	Meta    ListMeta               `json:"meta"`
}
