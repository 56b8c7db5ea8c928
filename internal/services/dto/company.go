package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

type CompanyListQuery struct {
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Search   string `form:"search"`
	Verified string `form:"verified" validate:"omitempty,oneof=all verified unverified"`
	Status   string `form:"status" validate:"omitempty,oneof=all active inactive"`
}

func (q CompanyListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"verified": q.Verified,
			"status":   q.Status,
		},
	}
}

type CompanyRow struct {
	models.Company
	Badge models.Badge `json:"badge"`
}

type CompanyListResponse struct {
	Results []CompanyRow         `json:"results"`
	Meta    ListMeta             `json:"meta"`
	Stats   *models.CompanyStats `json:"stats,omitempty"`
}
