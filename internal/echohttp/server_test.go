package echohttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	t.Run("should render http errors as an error envelope", func(t *testing.T) {
		e := Server()
		e.GET("/boom", func(c echo.Context) error {
			return echo.NewHTTPError(400, "missing or empty 'report' field")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, 400, rec.Code)
		assert.JSONEq(t, `{"error": "missing or empty 'report' field"}`, rec.Body.String())
	})

	t.Run("should mask unexpected errors as a 500", func(t *testing.T) {
		e := Server()
		e.GET("/boom", func(c echo.Context) error {
			return assert.AnError
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, 500, rec.Code)
		assert.JSONEq(t, `{"error": "Internal Server Error"}`, rec.Body.String())
	})

	t.Run("should recover from panics", func(t *testing.T) {
		e := Server()
		e.GET("/panic", func(c echo.Context) error {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, 500, rec.Code)
	})
}
