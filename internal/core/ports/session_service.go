package ports

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

// SessionService owns the operator's authentication state.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context)
	FetchCurrentUser(ctx context.Context) (*domain.User, error)
	Snapshot() domain.Session
}

// CredentialsProvider hands out the current request context and collapses the
// session when the backend rejects it.
type CredentialsProvider interface {
	Credentials() (Credentials, error)
	Logout(ctx context.Context)
}
