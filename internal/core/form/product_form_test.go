package form

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/imagelist"
)

func TestNewProductForm_EmptyUsesGlobalRates(t *testing.T) {
	f := NewProductForm(nil, currency.DefaultRates())
	if len(f.ExchangeRates) != len(domain.CurrencyCodes) {
		t.Fatalf("expected %d rates, got %d", len(domain.CurrencyCodes), len(f.ExchangeRates))
	}
	if f.ExchangeRates[domain.CurrencyUSD] != "1" {
		t.Fatalf("expected USD rate 1, got %q", f.ExchangeRates[domain.CurrencyUSD])
	}
	if len(f.Images) != 0 {
		t.Fatalf("expected no images, got %v", f.Images)
	}
}

func TestNewProductForm_PrefillsExisting(t *testing.T) {
	p := &domain.Product{
		Name:          "Lamp",
		BasePrice:     decimal.RequireFromString("19.99"),
		ExchangeRates: domain.Rates{domain.CurrencyEUR: decimal.RequireFromString("0.9")},
		Images:        []string{"a", "b"},
		Featured:      true,
	}
	f := NewProductForm(p, currency.DefaultRates())
	if f.Name != "Lamp" || f.BasePrice != "19.99" || !f.Featured {
		t.Fatalf("unexpected form: %+v", f)
	}
	if len(f.ExchangeRates) != 1 || f.ExchangeRates[domain.CurrencyEUR] != "0.9" {
		t.Fatalf("product rates should override the global table: %v", f.ExchangeRates)
	}

	f.Images[0] = "changed"
	if p.Images[0] != "a" {
		t.Fatalf("form must not alias the product's images")
	}
}

func TestProductForm_Build(t *testing.T) {
	f := NewProductForm(nil, currency.DefaultRates())
	f.Name = " Desk "
	f.BasePrice = "100"
	f = f.WithImages(imagelist.List{" https://cdn/a.png", "", "https://cdn/a.png", "https://cdn/b.png"})

	p, err := f.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != " Desk " {
		t.Fatalf("text fields must not be trimmed, got %q", p.Name)
	}
	if !p.BasePrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected base price %s", p.BasePrice)
	}
	if !reflect.DeepEqual(p.Images, []string{"https://cdn/a.png", "https://cdn/b.png"}) {
		t.Fatalf("unexpected images: %v", p.Images)
	}
	if p.Image != "https://cdn/a.png" {
		t.Fatalf("unexpected primary image %q", p.Image)
	}
	if len(p.ExchangeRates) != len(domain.CurrencyCodes) {
		t.Fatalf("expected full rate table, got %v", p.ExchangeRates)
	}
}

func TestProductForm_BuildRejectsUnparsableNumbers(t *testing.T) {
	f := NewProductForm(nil, currency.DefaultRates()).WithRate(domain.CurrencyINR, "eighty")
	f.Name = "Desk"
	f.BasePrice = "cheap"

	_, err := f.Build()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["basePrice"]; !ok {
		t.Fatalf("expected basePrice error, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["exchangeRates.INR"]; !ok {
		t.Fatalf("expected INR rate error, got %v", verr.Fields)
	}
}

func TestProductForm_WithRateDoesNotMutateOriginal(t *testing.T) {
	f := NewProductForm(nil, currency.DefaultRates())
	g := f.WithRate(domain.CurrencyGBP, "0.8")
	if f.ExchangeRates[domain.CurrencyGBP] == "0.8" {
		t.Fatalf("original form was modified")
	}
	if g.ExchangeRates[domain.CurrencyGBP] != "0.8" {
		t.Fatalf("expected updated rate, got %q", g.ExchangeRates[domain.CurrencyGBP])
	}
}

func TestCategoryForm_Build(t *testing.T) {
	if _, err := (CategoryForm{}).Build(); err == nil {
		t.Fatalf("expected error for empty name")
	}
	c, err := CategoryForm{Name: "Toys", Icon: "🧸"}.Build()
	if err != nil || c.Name != "Toys" || c.Icon != "🧸" {
		t.Fatalf("unexpected result: %+v, %v", c, err)
	}
}
