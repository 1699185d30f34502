package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// catalogBase carries what every collection service shares: the session it
// borrows credentials from, the duplicate-submit guard and the audit trail.
type catalogBase struct {
	resource string
	session  ports.CredentialsProvider
	guard    ports.SubmissionGuard
	audit    ports.AuditSink
	log      zerolog.Logger
	now      func() time.Time
}

// handleAuth logs the operator out when the backend rejected the token.
func (b *catalogBase) handleAuth(ctx context.Context, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		b.log.Info().Str("resource", b.resource).Msg("backend rejected token, logging out")
		b.session.Logout(ctx)
	}
}

// acquire claims an idempotency key for a write. An empty key skips the guard.
func (b *catalogBase) acquire(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	ok, err := b.guard.Acquire(ctx, b.resource+":"+key)
	if err != nil {
		// The guard is advisory; the write still goes through.
		b.log.Warn().Err(err).Str("idempotency_key", key).Msg("submission guard unavailable")
		return nil
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", b.resource, key, domain.ErrDuplicateSubmission)
	}
	return nil
}

func (b *catalogBase) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := b.guard.Release(ctx, b.resource+":"+key); err != nil {
		b.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to release submission guard")
	}
}

func (b *catalogBase) record(action, id, detail string, err error) {
	outcome := domain.OutcomeSuccess
	if err != nil {
		outcome = domain.OutcomeFailure
		if detail == "" {
			detail = err.Error()
		}
	}
	b.audit.Record(domain.AuditRecord{
		Action:     action,
		Resource:   b.resource,
		ResourceID: id,
		Outcome:    outcome,
		Detail:     detail,
		At:         b.now().UTC(),
	})
}

// writeError turns a failed create/update into the message shown in the open
// form: the server's message when it sent one, otherwise a generic one.
func writeError(err error, fallback string) error {
	status := http.StatusBadGateway
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	return &domain.APIError{Status: status, Message: domain.PublicMessage(err, fallback), Cause: err}
}
