package models

import "time"

// AutoApplyFilters - критерии автоотклика, настраиваются пользователем.
// Free-text поля, платформа интерпретирует их при отборе вакансий.
type AutoApplyFilters struct {
	Keywords        string `json:"keywords"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	MinSalary       *int   `json:"min_salary"`
}

// GoogleIntegration - зеркало ресурса /google/integration/.
// Одна запись на пользователя; OAuth-токены живут на платформе,
// шлюз видит только статус подключения.
type GoogleIntegration struct {
	ID               string            `json:"id"`
	UserEmail        string            `json:"user_email"`
	ConnectedEmail   string            `json:"connected_email"`
	Status           IntegrationStatus `json:"status"`
	AutoApplyEnabled bool              `json:"auto_apply_enabled"`
	Filters          *AutoApplyFilters `json:"auto_apply_filters"`
	ErrorCount       int               `json:"error_count"`
	LastError        string            `json:"last_error"`
	ConnectedAt      *time.Time        `json:"connected_at"`
	LastSyncAt       *time.Time        `json:"last_sync_at"`
}

func (g GoogleIntegration) SearchFields() []string {
	fields := []string{g.UserEmail, g.ConnectedEmail}
	if g.Filters != nil {
		fields = append(fields, g.Filters.Keywords, g.Filters.Location)
	}
	return fields
}

// EmailSentRecord - append-only лог исходящих писем автоотклика
type EmailSentRecord struct {
	ID          string    `json:"id"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	SentAt      time.Time `json:"sent_at"`
}

func (e EmailSentRecord) SearchFields() []string {
	return []string{e.JobTitle, e.CompanyName, e.Recipient, e.Subject}
}

// EmailResponse - входящий ответ, классифицированный платформой
type EmailResponse struct {
	ID           string       `json:"id"`
	Sender       string       `json:"sender"`
	Subject      string       `json:"subject"`
	ResponseType ResponseType `json:"response_type"`
	JobTitle     string       `json:"job_title"`
	ReceivedAt   time.Time    `json:"received_at"`
}

func (e EmailResponse) SearchFields() []string {
	return []string{e.Sender, e.Subject, e.JobTitle}
}

// AutoApplySession - batch-прогон автоотклика
type AutoApplySession struct {
	ID           string        `json:"id"`
	Status       SessionStatus `json:"status"`
	EmailsSent   int           `json:"emails_sent"`
	EmailsFailed int           `json:"emails_failed"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   *time.Time    `json:"finished_at"`
}

// GoogleDashboardStats - зеркало /google/dashboard/stats/.
// Единственный источник истины для карточек дашборда: клиентский
// fallback-пересчет из списка намеренно не воспроизводится.
type GoogleDashboardStats struct {
	ConnectedIntegrations int `json:"connected_integrations"`
	AutoApplyEnabled      int `json:"auto_apply_enabled"`
	EmailsSentToday       int `json:"emails_sent_today"`
	ResponsesReceived     int `json:"responses_received"`
	InterviewInvites      int `json:"interview_invites"`
	ActiveSessions        int `json:"active_sessions"`
}
