package handler

import (
	"net/http"
	"strconv"

	"shopadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field messages so the panel can show
// them inline next to the offending inputs.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		fields := make(map[string]string, len(ve.Fields))
		for _, fe := range ve.Fields {
			if _, dup := fields[fe.Field]; !dup {
				fields[fe.Field] = fe.Message
			}
		}
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// actor identifies the operator for the audit trail. The panel sets the
// header; auth itself lives in front of this service.
func actor(c echo.Context) string {
	if v := c.Request().Header.Get("X-Admin-User"); v != "" {
		return v
	}
	return "admin"
}

// queryPage parses page (default 1) and limit.
func queryPage(c echo.Context, defaultLimit int) (int, int, error) {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
		page = p
	}

	limit := defaultLimit
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = l
	}

	return page, limit, nil
}
