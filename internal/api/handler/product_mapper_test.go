package handler

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
)

func TestTextNumber_AcceptsStringsAndNumbers(t *testing.T) {
	var req productRequest
	body := `{"basePrice":12.5,"exchangeRates":{"EUR":"0.9","INR":83}}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.BasePrice != "12.5" {
		t.Errorf("basePrice = %q", req.BasePrice)
	}
	if req.ExchangeRates["EUR"] != "0.9" || req.ExchangeRates["INR"] != "83" {
		t.Errorf("rates = %v", req.ExchangeRates)
	}

	if err := json.Unmarshal([]byte(`{"basePrice":null}`), &req); err != nil || req.BasePrice != "" {
		t.Errorf("null must clear the field, got %q, %v", req.BasePrice, err)
	}
}

func TestToProductForm_SeedsGlobalRates(t *testing.T) {
	inStock := false
	req := productRequest{
		Name:          "Mug",
		BasePrice:     "10",
		ExchangeRates: map[string]textNumber{"inr": "80"},
		Images:        []string{" a ", "a", ""},
		InStock:       &inStock,
	}

	f := toProductForm(req, currency.DefaultRates())
	if f.ExchangeRates["INR"] != "80" {
		t.Errorf("operator rate must override the global one, got %q", f.ExchangeRates["INR"])
	}
	if f.ExchangeRates["GBP"] != "0.79" {
		t.Errorf("missing rates must come from the global table, got %q", f.ExchangeRates["GBP"])
	}
	if f.InStock {
		t.Error("explicit inStock=false must be kept")
	}

	p, err := f.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Images) != 1 || p.Image != "a" {
		t.Errorf("images = %v, primary %q", p.Images, p.Image)
	}
}

func TestToProductForm_DefaultsInStock(t *testing.T) {
	f := toProductForm(productRequest{Name: "Mug", BasePrice: "1"}, nil)
	if !f.InStock {
		t.Error("new products default to in stock")
	}
}

func TestToProductRow(t *testing.T) {
	p := domain.Product{
		ID:            "p1",
		Name:          "Mug",
		BasePrice:     decimal.NewFromInt(100),
		ExchangeRates: domain.Rates{"GBP": decimal.RequireFromString("0.79")},
	}

	row := toProductRow(p, "")
	if row.Placeholder != "No image" || row.Thumbnail != "" {
		t.Errorf("expected placeholder, got %+v", row)
	}
	if row.BasePrice != "$100" || row.DisplayPrice != "" {
		t.Errorf("unexpected prices %+v", row)
	}

	if row := toProductRow(p, "GBP"); row.DisplayPrice != "£79" {
		t.Errorf("displayPrice = %q", row.DisplayPrice)
	}
	if row := toProductRow(p, "EUR"); row.DisplayPrice != "unavailable" {
		t.Errorf("displayPrice = %q", row.DisplayPrice)
	}

	p.Images = []string{"https://cdn.example.com/mug.png"}
	if row := toProductRow(p, ""); row.Thumbnail != p.Images[0] || row.Placeholder != "" {
		t.Errorf("expected thumbnail, got %+v", row)
	}
}
