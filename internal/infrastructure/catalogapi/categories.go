package catalogapi

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

func (c *Client) ListCategories(ctx context.Context, creds ports.Credentials, opts ports.ListOptions) ([]domain.Category, error) {
	var out categoriesResponse
	resp, err := c.listRequest(ctx, creds, opts).
		SetResult(&out).
		Get("/categories")
	if err := c.check("list categories", resp, err); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, creds ports.Credentials, cat domain.Category, opts ports.WriteOptions) (*domain.Category, error) {
	cat.ID = ""
	var out domain.Category
	resp, err := c.writeRequest(ctx, creds, opts).
		SetBody(cat).
		SetResult(&out).
		Post("/categories")
	if err := c.check("create category", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, creds ports.Credentials, id string, cat domain.Category, opts ports.WriteOptions) (*domain.Category, error) {
	cat.ID = ""
	var out domain.Category
	resp, err := c.writeRequest(ctx, creds, opts).
		SetPathParam("id", id).
		SetBody(cat).
		SetResult(&out).
		Put("/categories/{id}")
	if err := c.check("update category", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, creds ports.Credentials, id string) error {
	resp, err := c.request(ctx, creds).
		SetPathParam("id", id).
		Delete("/categories/{id}")
	return c.check("delete category", resp, err)
}
