package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

type ApplicationListQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,is-app-status"`
}

func (q ApplicationListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"status": q.Status,
		},
	}
}

// UpdateApplicationStatusRequest - движение отклика по воронке ревью.
// "all" - значение фасета, не статус, поэтому для мутации запрещено.
type UpdateApplicationStatusRequest struct {
	Status        string `json:"status" binding:"required" validate:"required,ne=all,is-app-status"`
	EmployerNotes string `json:"employer_notes"`
}

type ApplicationRow struct {
	models.Application
	Badge models.Badge `json:"badge"`
}

type ApplicationListResponse struct {
	Results []ApplicationRow         `json:"results"`
	Meta    ListMeta                 `json:"meta"`
	Stats   *models.ApplicationStats `json:"stats,omitempty"`
}
