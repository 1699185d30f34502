package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
	"github.com/shopdesk/store-admin/internal/core/listing"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// ProductService implements the product list and editor use cases.
type ProductService struct {
	catalogBase
	api ports.ProductAPI
}

func NewProductService(
	api ports.ProductAPI,
	session ports.CredentialsProvider,
	guard ports.SubmissionGuard,
	audit ports.AuditSink,
	log zerolog.Logger,
) *ProductService {
	return &ProductService{
		catalogBase: catalogBase{
			resource: "product",
			session:  session,
			guard:    guard,
			audit:    audit,
			log:      log,
			now:      time.Now,
		},
		api: api,
	}
}

// List always reads a fresh collection. A failed read is reported as an
// error state, never as an empty catalog.
func (s *ProductService) List(ctx context.Context) listing.State[domain.Product] {
	creds, err := s.session.Credentials()
	if err != nil {
		return listing.Failed[domain.Product](err, s.now())
	}

	products, err := s.api.ListProducts(ctx, creds, ports.ListOptions{Fresh: true})
	if err != nil {
		s.handleAuth(ctx, err)
		s.log.Error().Err(err).Msg("failed to fetch products")
		s.record("list", "", "", err)
		return listing.Failed[domain.Product](err, s.now())
	}
	return listing.Loaded(products, s.now())
}

func (s *ProductService) Create(ctx context.Context, f form.ProductForm, idempotencyKey string) (*domain.Product, error) {
	return s.save(ctx, "", f, idempotencyKey)
}

func (s *ProductService) Update(ctx context.Context, id string, f form.ProductForm, idempotencyKey string) (*domain.Product, error) {
	return s.save(ctx, id, f, idempotencyKey)
}

func (s *ProductService) save(ctx context.Context, id string, f form.ProductForm, idempotencyKey string) (*domain.Product, error) {
	creds, err := s.session.Credentials()
	if err != nil {
		return nil, err
	}

	product, err := f.Build()
	if err != nil {
		return nil, err
	}

	if err := s.acquire(ctx, idempotencyKey); err != nil {
		return nil, err
	}

	opts := ports.WriteOptions{IdempotencyKey: idempotencyKey}
	action := "create"
	var saved *domain.Product
	if id == "" {
		saved, err = s.api.CreateProduct(ctx, creds, product, opts)
	} else {
		action = "update"
		saved, err = s.api.UpdateProduct(ctx, creds, id, product, opts)
	}
	if err != nil {
		s.release(ctx, idempotencyKey)
		s.handleAuth(ctx, err)
		s.log.Warn().Err(err).Str("action", action).Str("id", id).Msg("product write failed")
		s.record(action, id, "", err)
		return nil, writeError(err, "Failed to save product")
	}

	s.log.Info().Str("action", action).Str("id", saved.ID).Str("name", saved.Name).Msg("product saved")
	s.record(action, saved.ID, saved.Name, nil)
	return saved, nil
}

// Delete removes a product once the operator confirmed it.
func (s *ProductService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete product %s: %w", id, domain.ErrConfirmationRequired)
	}
	creds, err := s.session.Credentials()
	if err != nil {
		return err
	}

	if err := s.api.DeleteProduct(ctx, creds, id); err != nil {
		s.handleAuth(ctx, err)
		s.log.Warn().Err(err).Str("id", id).Msg("product delete failed")
		s.record("delete", id, "", err)
		return fmt.Errorf("delete product %s: %w: %w", id, domain.ErrDeleteFailed, err)
	}

	s.log.Info().Str("id", id).Msg("product deleted")
	s.record("delete", id, "", nil)
	return nil
}
