package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const applicationsBase = "/api/v1/applications/admin-applications/"

// ApplicationsClient - ресурс /applications/admin-applications/
type ApplicationsClient struct {
	c *Client
}

func NewApplicationsClient(c *Client) *ApplicationsClient {
	return &ApplicationsClient{c: c}
}

func (a *ApplicationsClient) List(ctx context.Context, token string, params ListParams) (listview.Page[models.Application], error) {
	return getList[models.Application](ctx, a.c, token, applicationsBase, params)
}

func (a *ApplicationsClient) Stats(ctx context.Context, token string) (models.ApplicationStats, error) {
	var stats models.ApplicationStats
	err := a.c.get(ctx, token, applicationsBase+"stats/", nil, &stats)
	return stats, err
}

// UpdateStatus двигает отклик по воронке ревью, заметки опциональны
func (a *ApplicationsClient) UpdateStatus(ctx context.Context, token, id string, status models.ApplicationStatus, notes string) (models.Application, error) {
	var app models.Application
	body := map[string]string{"status": string(status)}
	if notes != "" {
		body["employer_notes"] = notes
	}
	err := a.c.post(ctx, token, applicationsBase+id+"/update_status/", body, &app)
	return app, err
}
