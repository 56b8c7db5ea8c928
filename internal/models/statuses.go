package models

type UserRole string
type JobStatus string
type JobType string
type ExperienceLevel string
type RemoteOption string
type ApplicationStatus string
type IntegrationStatus string
type ResponseType string
type SessionStatus string
type NotificationPriority string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
	JobStatusFilled JobStatus = "filled"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"

	IntegrationStatusConnected    IntegrationStatus = "connected"
	IntegrationStatusDisconnected IntegrationStatus = "disconnected"
	IntegrationStatusExpired      IntegrationStatus = "expired"
	IntegrationStatusRevoked      IntegrationStatus = "revoked"
	IntegrationStatusError        IntegrationStatus = "error"

	ResponseTypeInterviewInvite ResponseType = "interview_invite"
	ResponseTypeRejection       ResponseType = "rejection"
	ResponseTypeRequestInfo     ResponseType = "request_info"
	ResponseTypeOffer           ResponseType = "offer"
	ResponseTypeOther           ResponseType = "other"

	SessionStatusRunning   SessionStatus = "running"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusFailed    SessionStatus = "failed"
	SessionStatusCancelled SessionStatus = "cancelled"

	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityUrgent NotificationPriority = "urgent"
)

// ValidUserRoles используется кастомными правилами валидации
var ValidUserRoles = []UserRole{UserRoleJobSeeker, UserRoleEmployer, UserRoleAdmin}

var ValidJobStatuses = []JobStatus{JobStatusDraft, JobStatusActive, JobStatusPaused, JobStatusClosed, JobStatusFilled}

var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusShortlisted,
	ApplicationStatusInterviewed, ApplicationStatusOffered, ApplicationStatusHired,
	ApplicationStatusRejected, ApplicationStatusWithdrawn,
}

var ValidNotificationPriorities = []NotificationPriority{
	NotificationPriorityLow, NotificationPriorityMedium,
	NotificationPriorityHigh, NotificationPriorityUrgent,
}
