package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

const loginFailedMessage = "Login failed"

// SessionService holds the operator's token and profile. The token has two
// writers (login success and logout); every catalog call reads it.
type SessionService struct {
	api   ports.AuthAPI
	store ports.TokenStore
	log   zerolog.Logger
	now   func() time.Time

	mu      sync.RWMutex
	token   string
	user    *domain.User
	loading bool
}

// NewSessionService returns a session in the loading state. Call Restore once
// at startup to settle it.
func NewSessionService(api ports.AuthAPI, store ports.TokenStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		api:     api,
		store:   store,
		log:     log,
		now:     time.Now,
		loading: true,
	}
}

// Restore rehydrates the session from the persisted token, if any.
func (s *SessionService) Restore(ctx context.Context) {
	defer s.finishLoading()

	token, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read persisted token")
		return
	}
	if token == "" {
		s.log.Debug().Msg("no persisted session")
		return
	}

	s.mu.Lock()
	if s.token != "" {
		// A login settled while the store was being read.
		s.mu.Unlock()
		return
	}
	s.token = token
	s.mu.Unlock()

	if _, err := s.FetchCurrentUser(ctx); err != nil {
		s.log.Info().Msg("persisted session rejected, logged out")
	}
}

// Login exchanges credentials for a token. The returned error's public
// message is the server's message, or "Login failed".
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	token, user, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.log.Info().Err(err).Str("username", username).Msg("login failed")
		return nil, &domain.APIError{
			Status:  loginStatus(err),
			Message: domain.PublicMessage(err, loginFailedMessage),
			Cause:   err,
		}
	}
	if token == "" || user == nil {
		return nil, &domain.APIError{Status: http.StatusBadGateway, Message: loginFailedMessage}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.loading = false
	s.mu.Unlock()

	if err := s.store.Save(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist token")
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("operator logged in")
	return user, nil
}

// Logout forgets the session. It never fails and makes no network call.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	hadUser := s.user != nil
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token")
	}
	if hadUser {
		s.log.Info().Msg("operator logged out")
	}
}

// FetchCurrentUser resolves the profile behind the current token. Any failure
// logs the operator out and yields ErrNotLoggedIn.
func (s *SessionService) FetchCurrentUser(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return nil, domain.ErrNotLoggedIn
	}

	if s.expired(token) {
		s.logoutIfCurrent(ctx, token)
		return nil, fmt.Errorf("fetch current user: token expired: %w", domain.ErrNotLoggedIn)
	}

	user, err := s.api.Me(ctx, ports.Credentials{Token: token})
	if err != nil || user == nil {
		s.log.Debug().Err(err).Msg("current user check failed")
		s.logoutIfCurrent(ctx, token)
		return nil, fmt.Errorf("fetch current user: %w", domain.ErrNotLoggedIn)
	}

	s.mu.Lock()
	// A concurrent logout or re-login wins over this stale answer.
	if s.token == token {
		s.user = user
	}
	s.mu.Unlock()
	return user, nil
}

// logoutIfCurrent logs out only while token is still the session's token, so
// a rejected stale token never ends a newer login.
func (s *SessionService) logoutIfCurrent(ctx context.Context, token string) {
	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		s.log.Debug().Msg("stale token rejected, session kept")
		return
	}
	hadUser := s.user != nil
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token")
	}
	if hadUser {
		s.log.Info().Msg("operator logged out")
	}
}

// Snapshot returns a copy of the current state.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := domain.Session{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		sess.User = &u
	}
	return sess
}

// Credentials returns the request context for an authenticated catalog call.
func (s *SessionService) Credentials() (ports.Credentials, error) {
	sess := s.Snapshot()
	switch {
	case sess.Loading:
		return ports.Credentials{}, domain.ErrSessionLoading
	case !sess.LoggedIn():
		return ports.Credentials{}, domain.ErrNotLoggedIn
	}
	return ports.Credentials{Token: sess.Token}, nil
}

func (s *SessionService) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// expired reads the exp claim of a JWT-shaped token without verifying it.
// Opaque tokens are left to the backend.
func (s *SessionService) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}

func loginStatus(err error) int {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
