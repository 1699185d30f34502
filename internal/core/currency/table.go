package currency

import (
	"fmt"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

// FieldErrors maps a currency code to the problem with its rate.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("%d invalid exchange rate(s)", len(e))
}

// ParseTable parses a complete table of raw rates. Every supported code must be
// present and positive; unknown codes are rejected.
func ParseTable(raw map[string]string) (domain.Rates, error) {
	rates := make(domain.Rates, len(domain.CurrencyCodes))
	problems := FieldErrors{}

	for _, code := range domain.CurrencyCodes {
		v, ok := raw[code]
		if !ok {
			problems[code] = "rate is required"
			continue
		}
		rate, err := ParseRate(v)
		if err != nil {
			problems[code] = err.Error()
			continue
		}
		rates[code] = rate
	}
	for code := range raw {
		if !IsSupported(code) {
			problems[code] = "unsupported currency"
		}
	}

	if len(problems) > 0 {
		return nil, problems
	}
	return rates, nil
}

// ToStrings renders a table the way the rate editor displays it.
func ToStrings(rates domain.Rates) map[string]string {
	out := make(map[string]string, len(rates))
	for code, rate := range rates {
		out[code] = rate.String()
	}
	return out
}
