package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const notificationsBase = "/api/v1/notifications/admin-notifications/"

// NotificationsClient - ресурс /notifications/admin-notifications/
type NotificationsClient struct {
	c *Client
}

func NewNotificationsClient(c *Client) *NotificationsClient {
	return &NotificationsClient{c: c}
}

func (n *NotificationsClient) List(ctx context.Context, token string, params ListParams) (listview.Page[models.Notification], error) {
	return getList[models.Notification](ctx, n.c, token, notificationsBase, params)
}

func (n *NotificationsClient) Stats(ctx context.Context, token string) (models.NotificationStats, error) {
	var stats models.NotificationStats
	err := n.c.get(ctx, token, notificationsBase+"stats/", nil, &stats)
	return stats, err
}

func (n *NotificationsClient) Templates(ctx context.Context, token string) ([]models.NotificationTemplate, error) {
	var templates []models.NotificationTemplate
	err := n.c.get(ctx, token, "/api/v1/notifications/templates/", nil, &templates)
	return templates, err
}

func (n *NotificationsClient) Delete(ctx context.Context, token, id string) error {
	return n.c.delete(ctx, token, notificationsBase+id+"/")
}
