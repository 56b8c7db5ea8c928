package models

import "strings"

// Badge - отображаемый статус сущности: текст + цветовой токен.
// Чистая функция от состояния, одна и та же для таблицы и detail-модалки,
// чтобы они не расходились.
type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

const (
	ToneSuccess = "success"
	ToneWarning = "warning"
	ToneDanger  = "danger"
	ToneInfo    = "info"
	ToneNeutral = "neutral"
)

// UserBadge: неактивность важнее неверифицированности
func UserBadge(u AdminUser) Badge {
	if !u.IsActive {
		return Badge{Label: "Inactive", Tone: ToneDanger}
	}
	if !u.IsVerified {
		return Badge{Label: "Unverified", Tone: ToneWarning}
	}
	return Badge{Label: "Active", Tone: ToneSuccess}
}

// JobBadge: не-активный статус показывается как есть,
// featured имеет приоритет только среди активных
func JobBadge(j Job) Badge {
	if j.Status != JobStatusActive {
		return Badge{Label: titleCase(string(j.Status)), Tone: jobTone(j.Status)}
	}
	if j.IsFeatured {
		return Badge{Label: "Featured", Tone: ToneInfo}
	}
	return Badge{Label: "Active", Tone: ToneSuccess}
}

func jobTone(s JobStatus) string {
	switch s {
	case JobStatusDraft:
		return ToneNeutral
	case JobStatusPaused:
		return ToneWarning
	case JobStatusClosed:
		return ToneDanger
	case JobStatusFilled:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

func ApplicationBadge(a Application) Badge {
	switch a.Status {
	case ApplicationStatusHired, ApplicationStatusOffered:
		return Badge{Label: titleCase(string(a.Status)), Tone: ToneSuccess}
	case ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return Badge{Label: titleCase(string(a.Status)), Tone: ToneDanger}
	case ApplicationStatusPending:
		return Badge{Label: "Pending", Tone: ToneWarning}
	default:
		return Badge{Label: titleCase(string(a.Status)), Tone: ToneInfo}
	}
}

// CompanyBadge: как у пользователей, неактивность важнее верификации
func CompanyBadge(c Company) Badge {
	if !c.IsActive {
		return Badge{Label: "Inactive", Tone: ToneDanger}
	}
	if !c.IsVerified {
		return Badge{Label: "Unverified", Tone: ToneWarning}
	}
	return Badge{Label: "Verified", Tone: ToneSuccess}
}

func IntegrationBadge(g GoogleIntegration) Badge {
	switch g.Status {
	case IntegrationStatusConnected:
		if g.AutoApplyEnabled {
			return Badge{Label: "Auto-apply on", Tone: ToneSuccess}
		}
		return Badge{Label: "Connected", Tone: ToneSuccess}
	case IntegrationStatusExpired:
		return Badge{Label: "Expired", Tone: ToneWarning}
	case IntegrationStatusRevoked:
		return Badge{Label: "Revoked", Tone: ToneDanger}
	case IntegrationStatusError:
		return Badge{Label: "Error", Tone: ToneDanger}
	default:
		return Badge{Label: "Disconnected", Tone: ToneNeutral}
	}
}

func SessionBadge(s AutoApplySession) Badge {
	switch s.Status {
	case SessionStatusRunning:
		return Badge{Label: "Running", Tone: ToneInfo}
	case SessionStatusCompleted:
		return Badge{Label: "Completed", Tone: ToneSuccess}
	case SessionStatusFailed:
		return Badge{Label: "Failed", Tone: ToneDanger}
	default:
		return Badge{Label: "Cancelled", Tone: ToneNeutral}
	}
}

func PriorityBadge(p NotificationPriority) Badge {
	switch p {
	case NotificationPriorityUrgent:
		return Badge{Label: "Urgent", Tone: ToneDanger}
	case NotificationPriorityHigh:
		return Badge{Label: "High", Tone: ToneWarning}
	case NotificationPriorityMedium:
		return Badge{Label: "Medium", Tone: ToneInfo}
	default:
		return Badge{Label: "Low", Tone: ToneNeutral}
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
