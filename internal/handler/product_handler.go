package handler

import (
	"net/http"
	"strconv"
	"strings"

	"shopadmin/internal/storage"
	"shopadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductRequest mirrors the product form. Price travels as a string so the
// 6+2 digit rule can be checked before parsing. Slug is server-derived.
type ProductRequest struct {
	BrandID     int64   `json:"brand_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Price       string  `json:"price"`
	Quantity    int64   `json:"quantity"`
	Type        string  `json:"type"`
	IsVisible   *bool   `json:"is_visible"`
	IsFeatured  *bool   `json:"is_featured"`
	PublishedAt string  `json:"published_at"`
	CategoryIDs []int64 `json:"category_ids"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		BrandID:     r.BrandID,
		Name:        r.Name,
		Description: r.Description,
		SKU:         r.SKU,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Type:        r.Type,
		IsVisible:   r.IsVisible,
		IsFeatured:  r.IsFeatured,
		PublishedAt: r.PublishedAt,
		CategoryIDs: r.CategoryIDs,
	}
}

type ProductHandler struct {
	uc    *usecase.ProductUsecase
	store *storage.LocalStore
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, store *storage.LocalStore) *ProductHandler {
	return &ProductHandler{uc: uc, store: store}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/products")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/options", h.options)
	g.POST("/bulk-delete", h.bulkDelete)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/image", h.uploadImage)
}

func (h *ProductHandler) list(c echo.Context) error {
	page, limit, err := queryPage(c, 20)
	if err != nil {
		return writeError(c, err)
	}

	var brandID *int64
	if v := c.QueryParam("brand_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid brand_id"})
		}
		brandID = &id
	}

	// ternary visibility filter: absent means both
	var visible *bool
	if v := c.QueryParam("visible"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid visible"})
		}
		visible = &b
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Page:    page,
		Limit:   limit,
		Q:       c.QueryParam("q"),
		Sort:    c.QueryParam("sort"),
		BrandID: brandID,
		Visible: visible,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) options(c echo.Context) error {
	options, err := h.uc.Options(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, options)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Create(c.Request().Context(), actor(c), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Update(c.Request().Context(), actor(c), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *ProductHandler) bulkDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	deleted, err := h.uc.BulkDelete(c.Request().Context(), actor(c), req.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, BulkDeleteResponse{Deleted: deleted})
}

func (h *ProductHandler) uploadImage(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file required"})
	}
	if ct := fh.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"image": "must be an image"},
		})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read upload"})
	}
	defer src.Close()

	path, err := h.store.Save(fh.Filename, src)
	if err != nil {
		if err == storage.ErrBadFilename {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad filename"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot store upload"})
	}

	if err := h.uc.AttachImage(c.Request().Context(), actor(c), id, path); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"image": path})
}
