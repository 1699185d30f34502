package domain

import "github.com/shopspring/decimal"

func init() {
	// The catalog API reads and writes prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog record as served by the remote API.
type Product struct {
	ID            string          `json:"_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	ExchangeRates Rates           `json:"exchangeRates"`
	Images        []string        `json:"images"`
	Image         string          `json:"image,omitempty"`
	InStock       bool            `json:"inStock"`
	Featured      bool            `json:"featured"`
}

// PrimaryImage returns the thumbnail image, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}
