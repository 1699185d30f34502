package handler

import (
	"strings"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
)

const (
	noImagePlaceholder = "No image"
	priceUnavailable   = "unavailable"
)

// --- Request → form ---

func toProductForm(req productRequest, global domain.Rates) form.ProductForm {
	f := form.NewProductForm(nil, global)
	f.Name = req.Name
	f.Description = req.Description
	f.Category = req.Category
	f.BasePrice = string(req.BasePrice)
	f.Featured = req.Featured
	if req.InStock != nil {
		f.InStock = *req.InStock
	}
	for code, raw := range req.ExchangeRates {
		f = f.WithRate(strings.ToUpper(code), string(raw))
	}
	return f.WithImages(req.Images)
}

// --- Domain → response ---

// toProductRow renders p for the list. code, when set, adds the converted
// display price; a product without that rate shows "unavailable".
func toProductRow(p domain.Product, code string) productRow {
	row := productRow{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Thumbnail: p.PrimaryImage(),
		BasePrice: currency.Format(domain.CurrencyUSD, p.BasePrice),
		InStock:   p.InStock,
		Featured:  p.Featured,
	}
	if row.Thumbnail == "" {
		row.Placeholder = noImagePlaceholder
	}
	if code != "" {
		row.Currency = code
		row.DisplayPrice = priceUnavailable
		if amount, err := currency.DisplayPrice(p, code); err == nil {
			row.DisplayPrice = currency.Format(code, amount)
		}
	}
	return row
}
