package catalogapi

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

func (c *Client) ListProducts(ctx context.Context, creds ports.Credentials, opts ports.ListOptions) ([]domain.Product, error) {
	var out productsResponse
	resp, err := c.listRequest(ctx, creds, opts).
		SetResult(&out).
		Get("/products")
	if err := c.check("list products", resp, err); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, creds ports.Credentials, p domain.Product, opts ports.WriteOptions) (*domain.Product, error) {
	p.ID = ""
	var out domain.Product
	resp, err := c.writeRequest(ctx, creds, opts).
		SetBody(p).
		SetResult(&out).
		Post("/products")
	if err := c.check("create product", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, creds ports.Credentials, id string, p domain.Product, opts ports.WriteOptions) (*domain.Product, error) {
	p.ID = ""
	var out domain.Product
	resp, err := c.writeRequest(ctx, creds, opts).
		SetPathParam("id", id).
		SetBody(p).
		SetResult(&out).
		Put("/products/{id}")
	if err := c.check("update product", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, creds ports.Credentials, id string) error {
	resp, err := c.request(ctx, creds).
		SetPathParam("id", id).
		Delete("/products/{id}")
	return c.check("delete product", resp, err)
}
