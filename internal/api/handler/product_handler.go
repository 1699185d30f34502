package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/api/metrics"
	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
	"github.com/shopdesk/store-admin/internal/core/listing"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product list and editor.
type ProductHandler struct {
	products ports.ProductService
	settings ports.SettingsService
}

func NewProductHandler(products ports.ProductService, settings ports.SettingsService) *ProductHandler {
	return &ProductHandler{products: products, settings: settings}
}

// List handles GET /panel/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        currency  query     string  false  "Currency code for the display price (e.g. INR)"
// @Success      200       {object}  listResponse[productRow]
// @Failure      401       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Failure      503       {object}  errorResponse
// @Router       /panel/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	code := strings.ToUpper(strings.TrimSpace(c.QueryParam("currency")))
	if code != "" && !currency.IsSupported(code) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unsupported currency "+code)
	}

	resp, err := h.list(c, code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /panel/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string          false  "Key guarding against duplicate submission"
// @Param        body             body      productRequest  true   "Product form"
// @Success      201              {object}  productWriteResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /panel/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	saved, err := h.products.Create(ctx, toProductForm(req, h.settings.Rates()), idempotencyKey(c))
	if err != nil {
		return writeFailed("product", err)
	}
	return h.respondWrite(c, http.StatusCreated, saved)
}

// Update handles PUT /panel/products/:id. The form replaces the whole record;
// exchangeRates is required and stored as sent.
//
// @Summary      Update a product
// @Description  Replaces the product. exchangeRates must be sent in full; it is never filled from the global table.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product form"
// @Success      200   {object}  productWriteResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /panel/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ExchangeRates == nil {
		return &form.ValidationError{Fields: map[string]string{"exchangeRates": "exchangeRates is required"}}
	}

	ctx := c.Request().Context()
	saved, err := h.products.Update(ctx, c.Param("id"), toProductForm(req, nil), idempotencyKey(c))
	if err != nil {
		return writeFailed("product", err)
	}
	return h.respondWrite(c, http.StatusOK, saved)
}

// Delete handles DELETE /panel/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id       path      string  true  "Product ID"
// @Param        confirm  query     bool    true  "Must be true"
// @Success      200      {object}  productDeleteResponse
// @Failure      428      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /panel/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return deleteFailed("product", err)
	}

	list, err := h.list(c, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productDeleteResponse{List: list})
}

// respondWrite answers a successful write with the saved record and a fresh list.
func (h *ProductHandler) respondWrite(c echo.Context, status int, saved *domain.Product) error {
	list, err := h.list(c, "")
	if err != nil {
		return err
	}
	return c.JSON(status, productWriteResponse{Product: toProductRow(*saved, ""), List: list})
}

func (h *ProductHandler) list(c echo.Context, code string) (listResponse[productRow], error) {
	state := h.products.List(c.Request().Context())
	if state.Status == listing.StatusError {
		if sessionError(state.Err) {
			return listResponse[productRow]{}, state.Err
		}
		metrics.ListFetchFailuresTotal.WithLabelValues("product").Inc()
	}
	row := func(p domain.Product) productRow { return toProductRow(p, code) }
	return newListResponse(state, row, domain.PublicMessage(state.Err, "Failed to load products")), nil
}
