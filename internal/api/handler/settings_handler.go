package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/core/currency"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// SettingsHandler exposes the global exchange-rate table.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type ratesRequest struct {
	Rates map[string]textNumber `json:"rates" validate:"required" swaggertype:"object"`
}

type ratesResponse struct {
	Rates map[string]string `json:"rates"`
}

// GetRates handles GET /panel/settings/exchange-rates.
//
// @Summary      Exchange-rate table
// @Tags         settings
// @Produce      json
// @Success      200  {object}  ratesResponse
// @Router       /panel/settings/exchange-rates [get]
func (h *SettingsHandler) GetRates(c echo.Context) error {
	return c.JSON(http.StatusOK, ratesResponse{Rates: currency.ToStrings(h.settings.Rates())})
}

// UpdateRates handles PUT /panel/settings/exchange-rates. The table is
// replaced as a whole.
//
// @Summary      Replace the exchange-rate table
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      ratesRequest  true  "Complete rate table"
// @Success      200   {object}  ratesResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /panel/settings/exchange-rates [put]
func (h *SettingsHandler) UpdateRates(c echo.Context) error {
	var req ratesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	raw := make(map[string]string, len(req.Rates))
	for code, v := range req.Rates {
		raw[strings.ToUpper(code)] = string(v)
	}

	rates, err := h.settings.UpdateRates(c.Request().Context(), raw)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratesResponse{Rates: currency.ToStrings(rates)})
}
