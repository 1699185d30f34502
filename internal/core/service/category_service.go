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

// CategoryService implements the category list and editor use cases.
type CategoryService struct {
	catalogBase
	api ports.CategoryAPI
}

func NewCategoryService(
	api ports.CategoryAPI,
	session ports.CredentialsProvider,
	guard ports.SubmissionGuard,
	audit ports.AuditSink,
	log zerolog.Logger,
) *CategoryService {
	return &CategoryService{
		catalogBase: catalogBase{
			resource: "category",
			session:  session,
			guard:    guard,
			audit:    audit,
			log:      log,
			now:      time.Now,
		},
		api: api,
	}
}

// List reads a fresh category collection.
func (s *CategoryService) List(ctx context.Context) listing.State[domain.Category] {
	creds, err := s.session.Credentials()
	if err != nil {
		return listing.Failed[domain.Category](err, s.now())
	}

	categories, err := s.api.ListCategories(ctx, creds, ports.ListOptions{Fresh: true})
	if err != nil {
		s.handleAuth(ctx, err)
		s.log.Error().Err(err).Msg("failed to fetch categories")
		s.record("list", "", "", err)
		return listing.Failed[domain.Category](err, s.now())
	}
	return listing.Loaded(categories, s.now())
}

func (s *CategoryService) Create(ctx context.Context, f form.CategoryForm, idempotencyKey string) (*domain.Category, error) {
	return s.save(ctx, "", f, idempotencyKey)
}

func (s *CategoryService) Update(ctx context.Context, id string, f form.CategoryForm, idempotencyKey string) (*domain.Category, error) {
	return s.save(ctx, id, f, idempotencyKey)
}

func (s *CategoryService) save(ctx context.Context, id string, f form.CategoryForm, idempotencyKey string) (*domain.Category, error) {
	creds, err := s.session.Credentials()
	if err != nil {
		return nil, err
	}

	category, err := f.Build()
	if err != nil {
		return nil, err
	}

	if err := s.acquire(ctx, idempotencyKey); err != nil {
		return nil, err
	}

	opts := ports.WriteOptions{IdempotencyKey: idempotencyKey}
	action := "create"
	var saved *domain.Category
	if id == "" {
		saved, err = s.api.CreateCategory(ctx, creds, category, opts)
	} else {
		action = "update"
		saved, err = s.api.UpdateCategory(ctx, creds, id, category, opts)
	}
	if err != nil {
		s.release(ctx, idempotencyKey)
		s.handleAuth(ctx, err)
		s.log.Warn().Err(err).Str("action", action).Str("id", id).Msg("category write failed")
		s.record(action, id, "", err)
		return nil, writeError(err, "Failed to save category")
	}

	s.log.Info().Str("action", action).Str("id", saved.ID).Str("name", saved.Name).Msg("category saved")
	s.record(action, saved.ID, saved.Name, nil)
	return saved, nil
}

// Delete removes a category once the operator confirmed it.
func (s *CategoryService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete category %s: %w", id, domain.ErrConfirmationRequired)
	}
	creds, err := s.session.Credentials()
	if err != nil {
		return err
	}

	if err := s.api.DeleteCategory(ctx, creds, id); err != nil {
		s.handleAuth(ctx, err)
		s.log.Warn().Err(err).Str("id", id).Msg("category delete failed")
		s.record("delete", id, "", err)
		return fmt.Errorf("delete category %s: %w: %w", id, domain.ErrDeleteFailed, err)
	}

	s.log.Info().Str("id", id).Msg("category deleted")
	s.record("delete", id, "", nil)
	return nil
}
