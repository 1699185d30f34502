package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/api/metrics"
	"github.com/shopdesk/store-admin/internal/core/imagelist"
)

// ImageHandler applies image-list editor operations to the list posted by the
// client and returns the resulting list. It keeps no state between calls.
type ImageHandler struct {
	ingester *imagelist.Ingester
}

func NewImageHandler(ingester *imagelist.Ingester) *ImageHandler {
	return &ImageHandler{ingester: ingester}
}

type addURLRequest struct {
	Images []string `json:"images"`
	URL    string   `json:"url" validate:"required"`
}

type removeRequest struct {
	Images []string `json:"images"`
	Index  int      `json:"index"`
}

type reorderRequest struct {
	Images []string `json:"images"`
	From   int      `json:"from"`
	To     int      `json:"to"`
}

type normalizeRequest struct {
	Images []string `json:"images"`
}

type imagesResponse struct {
	Images  []string `json:"images"`
	Primary string   `json:"primary"`
}

func toImagesResponse(l imagelist.List) imagesResponse {
	out := imagesResponse{Images: []string(l)}
	if out.Images == nil {
		out.Images = []string{}
	}
	if len(l) > 0 {
		out.Primary = l[0]
	}
	return out
}

// AddURL handles POST /panel/images/add-url.
//
// @Summary      Append an image URL
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        body  body      addURLRequest  true  "Current list and URL"
// @Success      200   {object}  imagesResponse
// @Failure      422   {object}  errorResponse
// @Router       /panel/images/add-url [post]
func (h *ImageHandler) AddURL(c echo.Context) error {
	var req addURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	l, err := imagelist.New(req.Images).AddURL(req.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toImagesResponse(l))
}

// Remove handles POST /panel/images/remove. An invalid index changes nothing.
//
// @Summary      Remove an image
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        body  body      removeRequest  true  "Current list and index"
// @Success      200   {object}  imagesResponse
// @Router       /panel/images/remove [post]
func (h *ImageHandler) Remove(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, toImagesResponse(imagelist.New(req.Images).Remove(req.Index)))
}

// Reorder handles POST /panel/images/reorder.
//
// @Summary      Move an image
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        body  body      reorderRequest  true  "Current list, source and target index"
// @Success      200   {object}  imagesResponse
// @Router       /panel/images/reorder [post]
func (h *ImageHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, toImagesResponse(imagelist.New(req.Images).Reorder(req.From, req.To)))
}

// Normalize handles POST /panel/images/normalize.
//
// @Summary      Normalize an image list
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        body  body      normalizeRequest  true  "List to clean up"
// @Success      200   {object}  imagesResponse
// @Router       /panel/images/normalize [post]
func (h *ImageHandler) Normalize(c echo.Context) error {
	var req normalizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	l, _ := imagelist.Normalize(req.Images)
	return c.JSON(http.StatusOK, toImagesResponse(l))
}

// Upload handles POST /panel/images/upload. The multipart form carries the
// current list as repeated "images" values and the new files as "files".
// One non-image file rejects the whole batch.
//
// @Summary      Upload image files
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        images  formData  []string  false  "Current list"
// @Param        files   formData  file      true   "Image files"
// @Success      200     {object}  imagesResponse
// @Failure      413     {object}  errorResponse
// @Failure      415     {object}  errorResponse
// @Router       /panel/images/upload [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	uploads := toUploads(mf.File["files"])
	l, err := h.ingester.AddUploads(c.Request().Context(), imagelist.New(mf.Value["images"]), uploads)
	countIngested(len(uploads), err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toImagesResponse(l))
}

// Replace handles POST /panel/images/replace. Without a "file" part the list
// is returned unchanged.
//
// @Summary      Replace one image with a file
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        images  formData  []string  false  "Current list"
// @Param        index   formData  int       true   "Index to replace"
// @Param        file    formData  file      false  "Replacement image"
// @Success      200     {object}  imagesResponse
// @Failure      415     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /panel/images/replace [post]
func (h *ImageHandler) Replace(c echo.Context) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}
	index, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "index must be an integer")
	}

	var upload *imagelist.Upload
	if files := mf.File["file"]; len(files) > 0 {
		upload = &toUploads(files[:1])[0]
	}

	l, err := h.ingester.ReplaceUpload(c.Request().Context(), imagelist.New(mf.Value["images"]), index, upload)
	if upload != nil {
		countIngested(1, err)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toImagesResponse(l))
}

func toUploads(files []*multipart.FileHeader) []imagelist.Upload {
	uploads := make([]imagelist.Upload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, imagelist.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Open:        func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return uploads
}

func countIngested(n int, err error) {
	result := "accepted"
	if err != nil {
		result = "rejected"
	}
	metrics.ImagesIngestedTotal.WithLabelValues(result).Add(float64(n))
}
