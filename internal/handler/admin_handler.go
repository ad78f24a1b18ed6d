package handler

import (
	"net/http"
	"strconv"

	"shopadmin/internal/admin"
	"shopadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the panel chrome: the resource registry that drives
// navigation, the global search box, and the audit trail.
type AdminHandler struct {
	searchUC *usecase.SearchUsecase
	auditUC  *usecase.AuditLogUsecase
}

// DI
func NewAdminHandler(searchUC *usecase.SearchUsecase, auditUC *usecase.AuditLogUsecase) *AdminHandler {
	return &AdminHandler{searchUC: searchUC, auditUC: auditUC}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/admin/resources", h.resources)
	e.GET("/admin/resources/:segment", h.resource)
	e.GET("/admin/search", h.search)
	e.GET("/admin/audit-logs", h.auditLogs)
}

func (h *AdminHandler) resources(c echo.Context) error {
	return c.JSON(http.StatusOK, admin.Registry())
}

func (h *AdminHandler) resource(c echo.Context) error {
	r, ok := admin.BySegment(c.Param("segment"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, r)
}

func (h *AdminHandler) search(c echo.Context) error {
	hits, err := h.searchUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"hits": hits})
}

func (h *AdminHandler) auditLogs(c echo.Context) error {
	page, limit, err := queryPage(c, 50)
	if err != nil {
		return writeError(c, err)
	}

	in := usecase.ListAuditLogsInput{
		Page:         page,
		Limit:        limit,
		ResourceType: c.QueryParam("resource_type"),
	}
	if v := c.QueryParam("resource_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid resource_id"})
		}
		in.ResourceID = &id
	}

	out, err := h.auditUC.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
