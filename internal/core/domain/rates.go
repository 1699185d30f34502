package domain

import "github.com/shopspring/decimal"

// Supported currency codes, in display order.
const (
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
	CurrencyEUR = "EUR"
	CurrencyINR = "INR"
	CurrencyAED = "AED"
	CurrencyAUD = "AUD"
	CurrencyCAD = "CAD"
	CurrencyJPY = "JPY"
	CurrencyCNY = "CNY"
	CurrencySAR = "SAR"
)

// CurrencyCodes lists every code an exchange-rate table carries.
var CurrencyCodes = []string{
	CurrencyUSD, CurrencyGBP, CurrencyEUR, CurrencyINR, CurrencyAED,
	CurrencyAUD, CurrencyCAD, CurrencyJPY, CurrencyCNY, CurrencySAR,
}

// Rates maps a currency code to its multiplier per USD.
type Rates map[string]decimal.Decimal

// Clone returns an independent copy of r.
func (r Rates) Clone() Rates {
	if r == nil {
		return nil
	}
	out := make(Rates, len(r))
	for code, rate := range r {
		out[code] = rate
	}
	return out
}
