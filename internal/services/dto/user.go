package dto

import (
	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

// UserListQuery - параметры страницы пользователей: пагинация,
// free-text поиск и фасеты. Значение "all" снимает ограничение.
type UserListQuery struct {
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Search   string `form:"search"`
	Role     string `form:"role" validate:"omitempty,is-user-role"`
	Status   string `form:"status" validate:"omitempty,oneof=all active inactive"`
	Verified string `form:"verified" validate:"omitempty,oneof=all verified unverified"`
}

func (q UserListQuery) Criteria() listview.Criteria {
	return listview.Criteria{
		Search: q.Search,
		Facets: map[string]string{
			"role":     q.Role,
			"status":   q.Status,
			"verified": q.Verified,
		},
	}
}

// UserRow - запись таблицы: сущность + выведенный badge,
// тот же badge используется и в detail-модалке
type UserRow struct {
	models.AdminUser
	Badge models.Badge `json:"badge"`
}

type UserListResponse struct {
	Results []UserRow `json:"results"`
	Meta    ListMeta  `json:"meta"`
	// Stats опциональны: упавший /stats/ не валит страницу,
	// карточки просто не рисуются
	Stats *models.UserStats `json:"stats,omitempty"`
}
