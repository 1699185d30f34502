package catalogapi

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

type exchangeRatesRequest struct {
	Rates domain.Rates `json:"rates"`
}

// UpdateExchangeRates submits the complete table. The acknowledgement body is
// ignored.
func (c *Client) UpdateExchangeRates(ctx context.Context, creds ports.Credentials, rates domain.Rates) error {
	resp, err := c.request(ctx, creds).
		SetBody(exchangeRatesRequest{Rates: rates}).
		Post("/settings/exchange-rates")
	return c.check("update exchange rates", resp, err)
}
