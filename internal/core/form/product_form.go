package form

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/imagelist"
)

// ProductForm is the raw state of the product editor. Numeric fields keep the
// operator's text until Build parses them.
type ProductForm struct {
	Name          string
	Description   string
	Category      string
	BasePrice     string
	ExchangeRates map[string]string
	Images        imagelist.List
	InStock       bool
	Featured      bool
}

// NewProductForm pre-fills the editor from p, or returns an empty form seeded
// with the global rates when p is nil. A product without rates also starts
// from the global table.
func NewProductForm(p *domain.Product, global domain.Rates) ProductForm {
	if p == nil {
		return ProductForm{
			ExchangeRates: currency.ToStrings(global),
			Images:        imagelist.List{},
			InStock:       true,
		}
	}
	rates := p.ExchangeRates
	if len(rates) == 0 {
		rates = global
	}
	return ProductForm{
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		BasePrice:     p.BasePrice.String(),
		ExchangeRates: currency.ToStrings(rates),
		Images:        imagelist.New(p.Images),
		InStock:       p.InStock,
		Featured:      p.Featured,
	}
}

// WithRate returns a copy of f with one rate changed.
func (f ProductForm) WithRate(code, raw string) ProductForm {
	rates := make(map[string]string, len(f.ExchangeRates)+1)
	for k, v := range f.ExchangeRates {
		rates[k] = v
	}
	rates[code] = raw
	f.ExchangeRates = rates
	return f
}

// WithImages returns a copy of f holding images.
func (f ProductForm) WithImages(images imagelist.List) ProductForm {
	f.Images = imagelist.New(images)
	return f
}

// Build parses the form into a product. Only the image list is normalized;
// text fields are submitted as typed.
func (f ProductForm) Build() (domain.Product, error) {
	verr := &ValidationError{}

	if f.Name == "" {
		verr.add("name", "name is required")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.BasePrice))
	switch {
	case err != nil:
		verr.add("basePrice", "base price must be a number")
	case price.IsNegative():
		verr.add("basePrice", "base price must not be negative")
	}

	rates := make(domain.Rates, len(f.ExchangeRates))
	for code, raw := range f.ExchangeRates {
		if !currency.IsSupported(code) {
			verr.add("exchangeRates."+code, "unsupported currency")
			continue
		}
		rate, err := currency.ParseRate(raw)
		if err != nil {
			verr.add("exchangeRates."+code, err.Error())
			continue
		}
		rates[code] = rate
	}

	if err := verr.orNil(); err != nil {
		return domain.Product{}, err
	}

	images, primary := imagelist.Normalize(f.Images)
	return domain.Product{
		Name:          f.Name,
		Description:   f.Description,
		Category:      f.Category,
		BasePrice:     price,
		ExchangeRates: rates,
		Images:        images,
		Image:         primary,
		InStock:       f.InStock,
		Featured:      f.Featured,
	}, nil
}
