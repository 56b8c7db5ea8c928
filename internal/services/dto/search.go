package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

type SearchQueryListQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Search string `form:"search"`
}

func (q SearchQueryListQuery) Criteria() listview.Criteria {
	return listview.Criteria{Search: q.Search}
}

type SearchQueryListResponse struct {
	Results []models.SearchQuery `json:"results"`
	Meta    ListMeta             `json:"meta"`
	Stats   *models.SearchStats  `json:"stats,omitempty"`
}
