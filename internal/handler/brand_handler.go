package handler

import (
	"net/http"

	"shopadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BrandRequest mirrors the brand form: name, website url, description,
// visibility toggle, primary color. Slug is server-derived and read-only.
type BrandRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	IsVisible   *bool  `json:"is_visible"`
	PrimaryHex  string `json:"primary_hex"`
}

type BrandHandler struct {
	uc        *usecase.BrandUsecase
	productUC *usecase.ProductUsecase
}

// DI
func NewBrandHandler(uc *usecase.BrandUsecase, productUC *usecase.ProductUsecase) *BrandHandler {
	return &BrandHandler{uc: uc, productUC: productUC}
}

func (h *BrandHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/brands")
	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/bulk-delete", h.bulkDelete)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)

	// relation manager: a brand's products
	g.GET("/:id/products", h.listProducts)
	g.POST("/:id/products", h.createProduct)
}

func (h *BrandHandler) list(c echo.Context) error {
	page, limit, err := queryPage(c, 20)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListBrandsInput{
		Page:  page,
		Limit: limit,
		Q:     c.QueryParam("q"),
		Sort:  c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BrandHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	b, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) create(c echo.Context) error {
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	b, err := h.uc.Create(c.Request().Context(), actor(c), usecase.BrandInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		IsVisible:   req.IsVisible,
		PrimaryHex:  req.PrimaryHex,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BrandHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	b, err := h.uc.Update(c.Request().Context(), actor(c), id, usecase.BrandInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		IsVisible:   req.IsVisible,
		PrimaryHex:  req.PrimaryHex,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *BrandHandler) bulkDelete(c echo.Context) error {
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

func (h *BrandHandler) listProducts(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	page, limit, err := queryPage(c, 20)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Products(c.Request().Context(), id, page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// createProduct creates a product under the brand from the brand edit page;
// the path wins over any brand_id in the body.
func (h *BrandHandler) createProduct(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.BrandID = id

	p, err := h.productUC.Create(c.Request().Context(), actor(c), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}
