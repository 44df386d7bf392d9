// Package server provides the HTTP handlers of the dictionary API.
package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/sandeshlim1992/dictionary-api/internal/dictionary"
)

// Handler serves the dictionary routes. Every route is stateless; each
// request runs one store operation and shapes the result as JSON.
type Handler struct {
	store dictionary.Store
}

// NewHandler creates a new Handler.
func NewHandler(store dictionary.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes attaches all dictionary routes to e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.GetRoot)
	e.GET("/languages", h.ListLanguages)
	e.GET("/search/:from_language/:query", h.SearchTranslation)
	e.GET("/suggest/:from_language/:query", h.Suggest)
	e.GET("/test-db", h.CheckStore)
}

// GetRoot confirms the API is running.
func (h *Handler) GetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Local Dictionary API!",
	})
}

// ListLanguages returns the available languages read from the table columns.
func (h *Handler) ListLanguages(c echo.Context) error {
	languages, err := h.store.Languages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, languages)
}

// SearchTranslation returns the first entry whose from_language column
// contains the query, or JSON null when nothing matches.
func (h *Handler) SearchTranslation(c echo.Context) error {
	entry, err := h.store.Search(c.Request().Context(), pathParam(c, "from_language"), pathParam(c, "query"))
	if err != nil {
		if errors.Is(err, dictionary.ErrUnknownLanguage) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

// Suggest returns autocomplete candidates from the from_language column.
func (h *Handler) Suggest(c echo.Context) error {
	suggestions, err := h.store.Suggest(c.Request().Context(), pathParam(c, "from_language"), pathParam(c, "query"))
	if err != nil {
		if errors.Is(err, dictionary.ErrUnknownLanguage) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, suggestions)
}

// CheckStore runs the store diagnostic. It always answers 200; failures
// are reported inside the status payload, never as HTTP errors.
func (h *Handler) CheckStore(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Diagnose(c.Request().Context()))
}

// pathParam returns the named route parameter with percent-escapes decoded.
// The router matches on the raw path, so an escaped segment arrives as-is.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return unescaped
}
