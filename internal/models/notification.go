package models

import "time"

// Notification - зеркало ресурса /notifications/admin-notifications/
type Notification struct {
	ID             string               `json:"id"`
	RecipientEmail string               `json:"recipient_email"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Priority       NotificationPriority `json:"priority"`
	DeliveryMethod string               `json:"delivery_method"`
	IsRead         bool                 `json:"is_read"`
	IsSent         bool                 `json:"is_sent"`
	IsDismissed    bool                 `json:"is_dismissed"`
	CreatedAt      time.Time            `json:"created_at"`
	ReadAt         *time.Time           `json:"read_at"`
}

func (n Notification) SearchFields() []string {
	return []string{n.RecipientEmail, n.Title, n.Message}
}

// NotificationTemplate - зеркало /notifications/templates/
type NotificationTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NotificationStats - зеркало /notifications/admin-notifications/stats/
type NotificationStats struct {
	Total     int `json:"total"`
	Unread    int `json:"unread"`
	Sent      int `json:"sent"`
	Dismissed int `json:"dismissed"`
	Urgent    int `json:"urgent"`
}
