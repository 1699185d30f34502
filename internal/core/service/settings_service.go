package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// SettingsService maintains the global exchange-rate table. The table is
// always submitted whole; there is no per-currency patch.
type SettingsService struct {
	api     ports.SettingsAPI
	session ports.CredentialsProvider
	audit   ports.AuditSink
	log     zerolog.Logger

	mu    sync.RWMutex
	rates domain.Rates
}

func NewSettingsService(api ports.SettingsAPI, session ports.CredentialsProvider, audit ports.AuditSink, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		api:     api,
		session: session,
		audit:   audit,
		log:     log,
		rates:   currency.DefaultRates(),
	}
}

// Rates returns the last table accepted by the backend, or the defaults.
func (s *SettingsService) Rates() domain.Rates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates.Clone()
}

// UpdateRates validates and submits a complete table.
func (s *SettingsService) UpdateRates(ctx context.Context, raw map[string]string) (domain.Rates, error) {
	creds, err := s.session.Credentials()
	if err != nil {
		return nil, err
	}

	rates, err := currency.ParseTable(raw)
	if err != nil {
		return nil, err
	}

	if err := s.api.UpdateExchangeRates(ctx, creds, rates); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.session.Logout(ctx)
		}
		s.log.Warn().Err(err).Msg("exchange rate update failed")
		s.audit.Record(domain.AuditRecord{
			Action: "update", Resource: "exchange_rates", Outcome: domain.OutcomeFailure,
			Detail: err.Error(), At: time.Now().UTC(),
		})
		return nil, writeError(err, "Failed to update exchange rates")
	}

	s.mu.Lock()
	s.rates = rates.Clone()
	s.mu.Unlock()

	s.log.Info().Int("currencies", len(rates)).Msg("exchange rates updated")
	s.audit.Record(domain.AuditRecord{
		Action: "update", Resource: "exchange_rates", Outcome: domain.OutcomeSuccess,
		Detail: fmt.Sprintf("%d rates", len(rates)), At: time.Now().UTC(),
	})
	return rates, nil
}
