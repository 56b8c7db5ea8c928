package upstream

import (
	"context"

	"jobhub_admin/internal/models"
)

const aiBase = "/api/v1/ai/"

// AIClient - дашборд AI-подсистемы. Только потребление: сами
// рекомендации и переобучение живут на платформе.
type AIClient struct {
	c *Client
}

func NewAIClient(c *Client) *AIClient {
	return &AIClient{c: c}
}

func (a *AIClient) Metrics(ctx context.Context, token string) (models.AIMetrics, error) {
	var metrics models.AIMetrics
	err := a.c.get(ctx, token, aiBase+"admin-metrics/", nil, &metrics)
	return metrics, err
}

func (a *AIClient) Settings(ctx context.Context, token string) (models.AISettings, error) {
	var settings models.AISettings
	err := a.c.get(ctx, token, aiBase+"admin-settings/", nil, &settings)
	return settings, err
}

func (a *AIClient) UpdateSettings(ctx context.Context, token string, settings models.AISettings) (models.AISettings, error) {
	var updated models.AISettings
	err := a.c.patch(ctx, token, aiBase+"admin-settings/", settings, &updated)
	return updated, err
}

func (a *AIClient) RetrainModels(ctx context.Context, token string) (models.RetrainResult, error) {
	var result models.RetrainResult
	err := a.c.post(ctx, token, aiBase+"admin-actions/retrain-models/", nil, &result)
	return result, err
}
