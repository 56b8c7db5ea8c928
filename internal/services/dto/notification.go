package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

type NotificationListQuery struct {
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Search   string `form:"search"`
	Priority string `form:"priority" validate:"omitempty,is-priority"`
	Read     string `form:"read" validate:"omitempty,oneof=all read unread"`
}

func (q NotificationListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"priority": q.Priority,
			"read":     q.Read,
		},
	}
}

type NotificationRow struct {
	models.Notification
	Badge models.Badge `json:"badge"`
}

type NotificationListResponse struct {
	Results []NotificationRow         `json:"results"`
	Meta    ListMeta                  `json:"meta"`
	Stats   *models.NotificationStats `json:"stats,omitempty"`
}

type TemplateListResponse struct {
	Results []models.NotificationTemplate `json:"results"`
	Count   int                           `json:"count"`
}
