package upstream

import (
	"context"

	"jobhub_admin/internal/listview"
	"jobhub_admin/internal/models"
)

const companiesBase = "/api/v1/companies/admin-companies/"

// CompaniesClient - ресурс /companies/admin-companies/
type CompaniesClient struct {
	c *Client
}

func NewCompaniesClient(c *Client) *CompaniesClient {
	return &CompaniesClient{c: c}
}

func (cc *CompaniesClient) List(ctx context.Context, token string, params ListParams) (listview.Page[models.Company], error) {
	return getList[models.Company](ctx, cc.c, token, companiesBase, params)
}

func (cc *CompaniesClient) Stats(ctx context.Context, token string) (models.CompanyStats, error) {
	var stats models.CompanyStats
	err := cc.c.get(ctx, token, companiesBase+"stats/", nil, &stats)
	return stats, err
}
