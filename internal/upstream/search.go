package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const searchBase = "/api/v1/search/"

// SearchClient - аналитика поисковых запросов
type SearchClient struct {
	c *Client
}

func NewSearchClient(c *Client) *SearchClient {
	return &SearchClient{c: c}
}

func (s *SearchClient) Queries(ctx context.Context, token string, params ListParams) (listview.Page[models.SearchQuery], error) {
	return getList[models.SearchQuery](ctx, s.c, token, searchBase+"admin-queries/", params)
}

func (s *SearchClient) Stats(ctx context.Context, token string) (models.SearchStats, error) {
	var stats models.SearchStats
	err := s.c.get(ctx, token, searchBase+"admin-stats/", nil, &stats)
	return stats, err
}
