package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const googleBase = "/api/v1/google/"

// GoogleClient - семейство эндпоинтов Google-интеграции.
// OAuth, отправка писем и классификация ответов живут на платформе;
// шлюз только дергает существующие операции.
type GoogleClient struct {
	c *Client
}

func NewGoogleClient(c *Client) *GoogleClient {
	return &GoogleClient{c: c}
}

// Integrations - список интеграций (админский обзор)
func (g *GoogleClient) Integrations(ctx context.Context, token string, params ListParams) (listview.Page[models.GoogleIntegration], error) {
	return getList[models.GoogleIntegration](ctx, g.c, token, googleBase+"integration/", params)
}

// AuthorizeURL возвращает OAuth URL, на который UI отправит пользователя
func (g *GoogleClient) AuthorizeURL(ctx context.Context, token string) (string, error) {
	var resp struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	err := g.c.get(ctx, token, googleBase+"oauth/authorize/", nil, &resp)
	return resp.AuthorizationURL, err
}

func (g *GoogleClient) Disconnect(ctx context.Context, token string) (models.GoogleIntegration, error) {
	var integration models.GoogleIntegration
	err := g.c.post(ctx, token, googleBase+"integration/disconnect/", nil, &integration)
	return integration, err
}

func (g *GoogleClient) UpdateAutoApplySettings(ctx context.Context, token string, enabled bool, filters models.AutoApplyFilters) (models.GoogleIntegration, error) {
	var integration models.GoogleIntegration
	body := map[string]interface{}{
		"auto_apply_enabled": enabled,
		"auto_apply_filters": filters,
	}
	err := g.c.patch(ctx, token, googleBase+"integration/update_auto_apply_settings/", body, &integration)
	return integration, err
}

// TriggerAutoApply запускает batch-прогон автоотклика
func (g *GoogleClient) TriggerAutoApply(ctx context.Context, token string) (models.AutoApplySession, error) {
	var session models.AutoApplySession
	err := g.c.post(ctx, token, googleBase+"integration/trigger_auto_apply/", nil, &session)
	return session, err
}

// CheckResponses просит платформу опросить входящие и вернуть
// число новых классифицированных ответов
func (g *GoogleClient) CheckResponses(ctx context.Context, token string) (int, error) {
	var resp struct {
		NewResponses int `json:"new_responses"`
	}
	err := g.c.post(ctx, token, googleBase+"integration/check_responses/", nil, &resp)
	return resp.NewResponses, err
}

func (g *GoogleClient) DashboardStats(ctx context.Context, token string) (models.GoogleDashboardStats, error) {
	var stats models.GoogleDashboardStats
	err := g.c.get(ctx, token, googleBase+"dashboard/stats/", nil, &stats)
	return stats, err
}

func (g *GoogleClient) Emails(ctx context.Context, token string, params ListParams) (listview.Page[models.EmailSentRecord], error) {
	return getList[models.EmailSentRecord](ctx, g.c, token, googleBase+"emails/", params)
}

func (g *GoogleClient) EmailResponses(ctx context.Context, token string, params ListParams) (listview.Page[models.EmailResponse], error) {
	return getList[models.EmailResponse](ctx, g.c, token, googleBase+"emails/responses/", params)
}
