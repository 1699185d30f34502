package ports

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

// Credentials is the request context threaded through every authenticated
// catalog call. The zero value sends no Authorization header.
type Credentials struct {
	Token string
}

// ListOptions tunes collection reads.
type ListOptions struct {
	// Fresh bypasses intermediary caches.
	Fresh bool
}

// WriteOptions tunes create/update calls.
type WriteOptions struct {
	IdempotencyKey string
}

// AuthAPI is the authentication part of the remote catalog API.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (token string, user *domain.User, err error)
	Me(ctx context.Context, creds Credentials) (*domain.User, error)
}

// ProductAPI is the product collection of the remote catalog API.
type ProductAPI interface {
	ListProducts(ctx context.Context, creds Credentials, opts ListOptions) ([]domain.Product, error)
	CreateProduct(ctx context.Context, creds Credentials, p domain.Product, opts WriteOptions) (*domain.Product, error)
	UpdateProduct(ctx context.Context, creds Credentials, id string, p domain.Product, opts WriteOptions) (*domain.Product, error)
	DeleteProduct(ctx context.Context, creds Credentials, id string) error
}

// CategoryAPI is the category collection of the remote catalog API.
type CategoryAPI interface {
	ListCategories(ctx context.Context, creds Credentials, opts ListOptions) ([]domain.Category, error)
	CreateCategory(ctx context.Context, creds Credentials, c domain.Category, opts WriteOptions) (*domain.Category, error)
	UpdateCategory(ctx context.Context, creds Credentials, id string, c domain.Category, opts WriteOptions) (*domain.Category, error)
	DeleteCategory(ctx context.Context, creds Credentials, id string) error
}

// SettingsAPI holds store-wide settings of the remote catalog API.
type SettingsAPI interface {
	UpdateExchangeRates(ctx context.Context, creds Credentials, rates domain.Rates) error
}
