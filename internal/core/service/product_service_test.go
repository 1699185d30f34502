package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
	"github.com/shopdesk/store-admin/internal/core/listing"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub product API
// ---------------------------------------------------------------------------

type stubProductAPI struct {
	listFn   func(ctx context.Context, creds ports.Credentials, opts ports.ListOptions) ([]domain.Product, error)
	createFn func(ctx context.Context, creds ports.Credentials, p domain.Product, opts ports.WriteOptions) (*domain.Product, error)
	updateFn func(ctx context.Context, creds ports.Credentials, id string, p domain.Product, opts ports.WriteOptions) (*domain.Product, error)
	deleteFn func(ctx context.Context, creds ports.Credentials, id string) error

	creates int
}

func (s *stubProductAPI) ListProducts(ctx context.Context, creds ports.Credentials, opts ports.ListOptions) ([]domain.Product, error) {
	return s.listFn(ctx, creds, opts)
}

func (s *stubProductAPI) CreateProduct(ctx context.Context, creds ports.Credentials, p domain.Product, opts ports.WriteOptions) (*domain.Product, error) {
	s.creates++
	return s.createFn(ctx, creds, p, opts)
}

func (s *stubProductAPI) UpdateProduct(ctx context.Context, creds ports.Credentials, id string, p domain.Product, opts ports.WriteOptions) (*domain.Product, error) {
	return s.updateFn(ctx, creds, id, p, opts)
}

func (s *stubProductAPI) DeleteProduct(ctx context.Context, creds ports.Credentials, id string) error {
	return s.deleteFn(ctx, creds, id)
}

func newProductSvc(api *stubProductAPI, creds *stubCredentials, guard *stubGuard, audit *stubAudit) *ProductService {
	return NewProductService(api, creds, guard, audit, zerolog.Nop())
}

func loggedIn() *stubCredentials {
	return &stubCredentials{creds: ports.Credentials{Token: "tok-1"}}
}

func validProductForm() form.ProductForm {
	return form.ProductForm{
		Name:          "Mug",
		Category:      "kitchen",
		BasePrice:     "100",
		ExchangeRates: map[string]string{"USD": "1", "INR": "82.5"},
		Images:        []string{" https://cdn.example.com/a.png ", "https://cdn.example.com/a.png"},
		InStock:       true,
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestProductService_ListFresh(t *testing.T) {
	api := &stubProductAPI{
		listFn: func(_ context.Context, creds ports.Credentials, opts ports.ListOptions) ([]domain.Product, error) {
			if creds.Token != "tok-1" {
				t.Fatalf("missing token")
			}
			if !opts.Fresh {
				t.Fatalf("list must bypass caches")
			}
			return []domain.Product{{ID: "p1", Name: "Mug"}}, nil
		},
	}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), &stubAudit{})

	state := svc.List(context.Background())
	if state.Status != listing.StatusLoaded || len(state.Items) != 1 {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.LastFetchedAt.IsZero() {
		t.Fatalf("expected fetch time")
	}
}

func TestProductService_ListFailureIsErrorState(t *testing.T) {
	api := &stubProductAPI{
		listFn: func(context.Context, ports.Credentials, ports.ListOptions) ([]domain.Product, error) {
			return nil, errors.New("boom")
		},
	}
	audit := &stubAudit{}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), audit)

	state := svc.List(context.Background())
	if state.Status != listing.StatusError || state.Err == nil {
		t.Fatalf("expected error state, got %+v", state)
	}
	if len(state.Items) != 0 {
		t.Fatalf("error state must carry no items")
	}
	if len(audit.records) != 1 || audit.records[0].Outcome != domain.OutcomeFailure {
		t.Fatalf("expected failure audit record, got %+v", audit.records)
	}
}

func TestProductService_ListUnauthorizedLogsOut(t *testing.T) {
	api := &stubProductAPI{
		listFn: func(context.Context, ports.Credentials, ports.ListOptions) ([]domain.Product, error) {
			return nil, &domain.APIError{Status: http.StatusUnauthorized, Message: "expired"}
		},
	}
	creds := loggedIn()
	svc := newProductSvc(api, creds, newStubGuard(), &stubAudit{})

	svc.List(context.Background())
	if !creds.loggedOut {
		t.Fatalf("a 401 must collapse the session")
	}
}

func TestProductService_ListWithoutSession(t *testing.T) {
	api := &stubProductAPI{
		listFn: func(context.Context, ports.Credentials, ports.ListOptions) ([]domain.Product, error) {
			t.Fatalf("no request expected without a session")
			return nil, nil
		},
	}
	svc := newProductSvc(api, &stubCredentials{err: domain.ErrNotLoggedIn}, newStubGuard(), &stubAudit{})

	state := svc.List(context.Background())
	if !errors.Is(state.Err, domain.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", state.Err)
	}
}

// ---------------------------------------------------------------------------
// Create / Update
// ---------------------------------------------------------------------------

func TestProductService_CreateSubmitsNormalizedRecord(t *testing.T) {
	api := &stubProductAPI{
		createFn: func(_ context.Context, _ ports.Credentials, p domain.Product, opts ports.WriteOptions) (*domain.Product, error) {
			if opts.IdempotencyKey != "k1" {
				t.Fatalf("expected idempotency key, got %q", opts.IdempotencyKey)
			}
			if !p.BasePrice.Equal(decimal.NewFromInt(100)) {
				t.Fatalf("unexpected price %s", p.BasePrice)
			}
			if len(p.Images) != 1 || p.Image != "https://cdn.example.com/a.png" {
				t.Fatalf("images not normalized: %+v / %q", p.Images, p.Image)
			}
			p.ID = "p1"
			return &p, nil
		},
	}
	audit := &stubAudit{}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), audit)

	saved, err := svc.Create(context.Background(), validProductForm(), "k1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if saved.ID != "p1" {
		t.Fatalf("unexpected product %+v", saved)
	}
	if len(audit.records) != 1 || audit.records[0].Action != "create" || audit.records[0].Outcome != domain.OutcomeSuccess {
		t.Fatalf("unexpected audit %+v", audit.records)
	}
}

func TestProductService_CreateInvalidNumberMakesNoCall(t *testing.T) {
	api := &stubProductAPI{
		createFn: func(context.Context, ports.Credentials, domain.Product, ports.WriteOptions) (*domain.Product, error) {
			t.Fatalf("invalid form must not be submitted")
			return nil, nil
		},
	}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), &stubAudit{})

	f := validProductForm()
	f.BasePrice = "abc"
	_, err := svc.Create(context.Background(), f, "")

	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["basePrice"]; !ok {
		t.Fatalf("expected basePrice field error, got %+v", verr.Fields)
	}
}

func TestProductService_DuplicateSubmissionRejected(t *testing.T) {
	release := make(chan struct{})
	api := &stubProductAPI{
		createFn: func(_ context.Context, _ ports.Credentials, p domain.Product, _ ports.WriteOptions) (*domain.Product, error) {
			<-release
			p.ID = "p1"
			return &p, nil
		},
	}
	guard := newStubGuard()
	svc := newProductSvc(api, loggedIn(), guard, &stubAudit{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Create(context.Background(), validProductForm(), "k1")
		done <- err
	}()

	// Wait until the first submission holds the key.
	for {
		guard.mu.Lock()
		held := guard.held["product:k1"]
		guard.mu.Unlock()
		if held {
			break
		}
	}

	_, err := svc.Create(context.Background(), validProductForm(), "k1")
	if !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestProductService_FailedWriteReleasesKeyAndKeepsServerMessage(t *testing.T) {
	calls := 0
	api := &stubProductAPI{
		createFn: func(_ context.Context, _ ports.Credentials, p domain.Product, _ ports.WriteOptions) (*domain.Product, error) {
			calls++
			if calls == 1 {
				return nil, &domain.APIError{Status: http.StatusBadRequest, Message: "Name already taken"}
			}
			p.ID = "p1"
			return &p, nil
		},
	}
	guard := newStubGuard()
	svc := newProductSvc(api, loggedIn(), guard, &stubAudit{})

	_, err := svc.Create(context.Background(), validProductForm(), "k1")
	if domain.PublicMessage(err, "") != "Name already taken" {
		t.Fatalf("expected server message, got %v", err)
	}
	if len(guard.released) != 1 {
		t.Fatalf("failed write must release its key")
	}

	if _, err := svc.Create(context.Background(), validProductForm(), "k1"); err != nil {
		t.Fatalf("retry after failure should succeed: %v", err)
	}
}

func TestProductService_FailedWriteGenericMessage(t *testing.T) {
	api := &stubProductAPI{
		updateFn: func(context.Context, ports.Credentials, string, domain.Product, ports.WriteOptions) (*domain.Product, error) {
			return nil, &domain.APIError{Status: http.StatusInternalServerError}
		},
	}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), &stubAudit{})

	_, err := svc.Update(context.Background(), "p1", validProductForm(), "")
	if domain.PublicMessage(err, "") != "Failed to save product" {
		t.Fatalf("expected generic message, got %v", err)
	}
}

func TestProductService_GuardOutageDoesNotBlockWrites(t *testing.T) {
	api := &stubProductAPI{
		createFn: func(_ context.Context, _ ports.Credentials, p domain.Product, _ ports.WriteOptions) (*domain.Product, error) {
			p.ID = "p1"
			return &p, nil
		},
	}
	guard := newStubGuard()
	guard.err = errors.New("redis down")
	svc := newProductSvc(api, loggedIn(), guard, &stubAudit{})

	if _, err := svc.Create(context.Background(), validProductForm(), "k1"); err != nil {
		t.Fatalf("expected write to proceed: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestProductService_DeleteRequiresConfirmation(t *testing.T) {
	api := &stubProductAPI{
		deleteFn: func(context.Context, ports.Credentials, string) error {
			t.Fatalf("unconfirmed delete must not reach the backend")
			return nil
		},
	}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), &stubAudit{})

	if err := svc.Delete(context.Background(), "p1", false); !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
}

func TestProductService_DeleteFailure(t *testing.T) {
	api := &stubProductAPI{
		deleteFn: func(context.Context, ports.Credentials, string) error {
			return &domain.APIError{Status: http.StatusUnauthorized}
		},
	}
	creds := loggedIn()
	audit := &stubAudit{}
	svc := newProductSvc(api, creds, newStubGuard(), audit)

	err := svc.Delete(context.Background(), "p1", true)
	if !errors.Is(err, domain.ErrDeleteFailed) || !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrDeleteFailed wrapping the cause, got %v", err)
	}
	if !creds.loggedOut {
		t.Fatalf("a 401 must collapse the session")
	}
	if len(audit.records) != 1 || audit.records[0].Outcome != domain.OutcomeFailure {
		t.Fatalf("unexpected audit %+v", audit.records)
	}
}

func TestProductService_DeleteSuccess(t *testing.T) {
	var gotID string
	api := &stubProductAPI{
		deleteFn: func(_ context.Context, _ ports.Credentials, id string) error {
			gotID = id
			return nil
		},
	}
	svc := newProductSvc(api, loggedIn(), newStubGuard(), &stubAudit{})

	if err := svc.Delete(context.Background(), "p1", true); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if gotID != "p1" {
		t.Fatalf("unexpected id %q", gotID)
	}
}
