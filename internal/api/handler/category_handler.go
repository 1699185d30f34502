package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/api/metrics"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/form"
	"github.com/shopdesk/store-admin/internal/core/listing"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// CategoryHandler handles HTTP requests for the category list and editor.
type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type categoryRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type categoryWriteResponse struct {
	Category categoryRow               `json:"category"`
	List     listResponse[categoryRow] `json:"list"`
}

type categoryDeleteResponse struct {
	List listResponse[categoryRow] `json:"list"`
}

func toCategoryForm(req categoryRequest) form.CategoryForm {
	f := form.NewCategoryForm(nil)
	f.Name = req.Name
	f.Icon = req.Icon
	f.Description = req.Description
	return f
}

func toCategoryRow(cat domain.Category) categoryRow {
	return categoryRow{ID: cat.ID, Name: cat.Name, Icon: cat.Icon, Description: cat.Description}
}

// List handles GET /panel/categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  listResponse[categoryRow]
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /panel/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	resp, err := h.list(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /panel/categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Key guarding against duplicate submission"
// @Param        body             body      categoryRequest  true   "Category form"
// @Success      201              {object}  categoryWriteResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /panel/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.categories.Create(c.Request().Context(), toCategoryForm(req), idempotencyKey(c))
	if err != nil {
		return writeFailed("category", err)
	}
	return h.respondWrite(c, http.StatusCreated, saved)
}

// Update handles PUT /panel/categories/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category form"
// @Success      200   {object}  categoryWriteResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /panel/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.categories.Update(c.Request().Context(), c.Param("id"), toCategoryForm(req), idempotencyKey(c))
	if err != nil {
		return writeFailed("category", err)
	}
	return h.respondWrite(c, http.StatusOK, saved)
}

// Delete handles DELETE /panel/categories/:id.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        id       path      string  true  "Category ID"
// @Param        confirm  query     bool    true  "Must be true"
// @Success      200      {object}  categoryDeleteResponse
// @Failure      428      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /panel/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return deleteFailed("category", err)
	}

	list, err := h.list(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryDeleteResponse{List: list})
}

func (h *CategoryHandler) respondWrite(c echo.Context, status int, saved *domain.Category) error {
	list, err := h.list(c)
	if err != nil {
		return err
	}
	return c.JSON(status, categoryWriteResponse{Category: toCategoryRow(*saved), List: list})
}

func (h *CategoryHandler) list(c echo.Context) (listResponse[categoryRow], error) {
	state := h.categories.List(c.Request().Context())
	if state.Status == listing.StatusError {
		if sessionError(state.Err) {
			return listResponse[categoryRow]{}, state.Err
		}
		metrics.ListFetchFailuresTotal.WithLabelValues("category").Inc()
	}
	return newListResponse(state, toCategoryRow, domain.PublicMessage(state.Err, "Failed to load categories")), nil
}
