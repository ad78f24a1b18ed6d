package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopadmin/internal/usecase"
	"shopadmin/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteError_ValidationRendersFields(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "/admin/products")

	var fe validator.FieldErrors
	fe.Add("price", "must have at most 6 integer digits and 2 fraction digits")
	fe.Add("quantity", "must be between 0 and 100")

	err := writeError(c, usecase.NewValidationError(fe))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ValidationErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Fields["price"], "6 integer digits")
	assert.Contains(t, body.Fields["quantity"], "between 0 and 100")
}

func TestWriteError_HTTPErrorStatusPassesThrough(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/admin/brands/9")

	err := writeError(c, usecase.NewHTTPError(http.StatusNotFound, "not found"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body.Error)
}

func TestWriteError_UnknownErrorIs500(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/admin/brands")

	err := writeError(c, errors.New("pq: connection reset"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// internal details never leak to the client
	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body.Error)
}

func TestParamID(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/")
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, ok := paramID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		c.SetParamValues(bad)
		_, ok := paramID(c, "id")
		assert.False(t, ok, bad)
	}
}

func TestActor(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/admin/brands")
	assert.Equal(t, "admin", actor(c))

	c.Request().Header.Set("X-Admin-User", "jane")
	assert.Equal(t, "jane", actor(c))
}

func TestQueryPage(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/admin/brands?page=2&limit=50")
	page, limit, err := queryPage(c, 20)
	assert.NoError(t, err)
	assert.Equal(t, 2, page)
	assert.Equal(t, 50, limit)

	c, _ = newTestContext(http.MethodGet, "/admin/brands")
	page, limit, err = queryPage(c, 20)
	assert.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	c, _ = newTestContext(http.MethodGet, "/admin/brands?page=x")
	_, _, err = queryPage(c, 20)
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	from, ok := parseDay("2026-08-01", false)
	assert.True(t, ok)
	assert.Equal(t, "2026-08-01T00:00:00Z", from.UTC().Format("2006-01-02T15:04:05Z"))

	to, ok := parseDay("2026-08-01", true)
	assert.True(t, ok)
	assert.Equal(t, "2026-08-01", to.UTC().Format("2006-01-02"))
	assert.True(t, to.After(*from))

	_, ok = parseDay("01/08/2026", false)
	assert.False(t, ok)
}
