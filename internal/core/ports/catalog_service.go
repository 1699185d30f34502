package ports

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
	"github.com/shopdesk/store-admin/internal/core/listing"
)

// ProductService backs the product list and editor.
type ProductService interface {
	List(ctx context.Context) listing.State[domain.Product]
	Create(ctx context.Context, f form.ProductForm, idempotencyKey string) (*domain.Product, error)
	Update(ctx context.Context, id string, f form.ProductForm, idempotencyKey string) (*domain.Product, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// CategoryService backs the category list and editor.
type CategoryService interface {
	List(ctx context.Context) listing.State[domain.Category]
	Create(ctx context.Context, f form.CategoryForm, idempotencyKey string) (*domain.Category, error)
	Update(ctx context.Context, id string, f form.CategoryForm, idempotencyKey string) (*domain.Category, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// SettingsService backs the global exchange-rate editor.
type SettingsService interface {
	Rates() domain.Rates
	UpdateRates(ctx context.Context, raw map[string]string) (domain.Rates, error)
}
