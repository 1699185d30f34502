package service

import (
	"context"
	"sync"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubAuthAPI struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
	meFn    func(ctx context.Context, creds ports.Credentials) (*domain.User, error)
	meCalls int
}

func (a *stubAuthAPI) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return a.loginFn(ctx, username, password)
}

func (a *stubAuthAPI) Me(ctx context.Context, creds ports.Credentials) (*domain.User, error) {
	a.meCalls++
	return a.meFn(ctx, creds)
}

type memTokenStore struct {
	token   string
	loadErr error
}

func (s *memTokenStore) Load(context.Context) (string, error) { return s.token, s.loadErr }
func (s *memTokenStore) Save(_ context.Context, token string) error {
	s.token = token
	return nil
}
func (s *memTokenStore) Clear(context.Context) error {
	s.token = ""
	return nil
}

type stubCredentials struct {
	creds     ports.Credentials
	err       error
	loggedOut bool
}

func (s *stubCredentials) Credentials() (ports.Credentials, error) { return s.creds, s.err }
func (s *stubCredentials) Logout(context.Context)                  { s.loggedOut = true }

type stubGuard struct {
	mu       sync.Mutex
	held     map[string]bool
	err      error
	released []string
}

func newStubGuard() *stubGuard { return &stubGuard{held: map[string]bool{}} }

func (g *stubGuard) Acquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return false, g.err
	}
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	g.released = append(g.released, key)
	return nil
}

type stubAudit struct {
	records []domain.AuditRecord
}

func (a *stubAudit) Record(rec domain.AuditRecord) { a.records = append(a.records, rec) }

// gatedTokenStore returns the token it held when Load was entered, but only
// once the test closes release.
type gatedTokenStore struct {
	mu      sync.Mutex
	token   string
	entered chan struct{}
	release chan struct{}
}

func newGatedTokenStore(token string) *gatedTokenStore {
	return &gatedTokenStore{token: token, entered: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedTokenStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	close(s.entered)
	<-s.release
	return token, nil
}

func (s *gatedTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *gatedTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *gatedTokenStore) persisted() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
