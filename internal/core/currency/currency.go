// Package currency converts USD base prices into the panel's display currencies.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

var symbols = map[string]string{
	domain.CurrencyUSD: "$",
	domain.CurrencyGBP: "£",
	domain.CurrencyEUR: "€",
	domain.CurrencyINR: "₹",
	domain.CurrencyAED: "AED ",
	domain.CurrencyAUD: "A$",
	domain.CurrencyCAD: "C$",
	domain.CurrencyJPY: "¥",
	domain.CurrencyCNY: "CN¥",
	domain.CurrencySAR: "SAR ",
}

// DefaultRates returns the table used until the operator saves global rates.
func DefaultRates() domain.Rates {
	return domain.Rates{
		domain.CurrencyUSD: decimal.NewFromInt(1),
		domain.CurrencyGBP: decimal.RequireFromString("0.79"),
		domain.CurrencyEUR: decimal.RequireFromString("0.92"),
		domain.CurrencyINR: decimal.RequireFromString("83.12"),
		domain.CurrencyAED: decimal.RequireFromString("3.67"),
		domain.CurrencyAUD: decimal.RequireFromString("1.52"),
		domain.CurrencyCAD: decimal.RequireFromString("1.36"),
		domain.CurrencyJPY: decimal.RequireFromString("149.50"),
		domain.CurrencyCNY: decimal.RequireFromString("7.24"),
		domain.CurrencySAR: decimal.RequireFromString("3.75"),
	}
}

// IsSupported reports whether code is one of the table's currencies.
func IsSupported(code string) bool {
	_, ok := symbols[code]
	return ok
}

// DisplayPrice converts the product's base price using its own rate for code.
// A missing rate yields ErrRateUnavailable rather than a fallback of 1.
func DisplayPrice(p domain.Product, code string) (decimal.Decimal, error) {
	rate, ok := p.ExchangeRates[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", code, domain.ErrRateUnavailable)
	}
	return p.BasePrice.Mul(rate), nil
}

// ParseRate parses an operator-entered multiplier. Non-numeric and
// non-positive input is an error.
func ParseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, domain.ErrInvalidRate
	}
	return rate, nil
}

// Format renders amount with the currency's symbol, e.g. "$100" or "₹49417.50".
func Format(code string, amount decimal.Decimal) string {
	sym, ok := symbols[code]
	if !ok {
		sym = code + " "
	}
	if amount.Equal(amount.Truncate(0)) {
		return sym + amount.StringFixed(0)
	}
	return sym + amount.StringFixed(2)
}
