package dto

import "jobhub_admin/internal/snackbar"

// ListMeta - пагинационные метаданные списочного ответа.
// TotalPages = ceil(count / page_size), платформа отдает count.
type ListMeta struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NoticesResponse - активные snackbar-уведомления страницы
type NoticesResponse struct {
	Notices []snackbar.Notice `json:"notices"`
}

// MessageResponse - простой ответ-подтверждение
type MessageResponse struct {
	Message string `json:"message"`
}
