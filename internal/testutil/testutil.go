// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and repository spies.
package testutil

import (
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}
