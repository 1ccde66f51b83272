// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foodlane/server/internal/config"
	"github.com/foodlane/server/internal/models"
	"github.com/foodlane/server/internal/services/token"
	"github.com/foodlane/server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e         *echo.Echo
	foods     *testutil.FoodStoreSpy
	purchases *testutil.PurchaseStoreSpy
	gallery   *testutil.GalleryStoreSpy
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := token.New(&config.AuthConfig{
		Secret:        "test-secret",
		CookieName:    "accessToken",
		TokenLifetime: 3600,
	}, false)
	require.NoError(t, err)

	s := &testServer{
		e:         echo.New(),
		foods:     &testutil.FoodStoreSpy{},
		purchases: &testutil.PurchaseStoreSpy{},
		gallery:   &testutil.GalleryStoreSpy{},
	}
	setupRoutes(s.e, s.foods, s.purchases, s.gallery, tokens)
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func loginCookie(t *testing.T, s *testServer, email string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"email":"`+email+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "accessToken" {
			return cookie
		}
	}
	t.Fatal("login did not set the credential cookie")
	return nil
}

func TestLoginThenReadOwnRecords(t *testing.T) {
	s := newTestServer(t)
	s.foods.Foods = []models.Food{{Name: "Pizza", UserEmail: "a@b.com"}}

	cookie := loginCookie(t, s, "a@b.com")

	req := httptest.NewRequest(http.MethodGet, "/food/my/added?email=a@b.com", nil)
	req.AddCookie(cookie)
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a@b.com"}, s.foods.ByOwnerCalls)
	assert.Contains(t, rec.Body.String(), "Pizza")
}

func TestReadOtherIdentityRecords_Forbidden(t *testing.T) {
	s := newTestServer(t)

	cookie := loginCookie(t, s, "a@b.com")

	req := httptest.NewRequest(http.MethodGet, "/food/my/added?email=c@d.com", nil)
	req.AddCookie(cookie)
	rec := s.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, s.foods.ByOwnerCalls)
}

func TestProtectedRoutes_NoCookie(t *testing.T) {
	s := newTestServer(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/food/add"},
		{http.MethodGet, "/food/my/added?email=a@b.com"},
		{http.MethodPost, "/food/purchase"},
		{http.MethodGet, "/food/my/purchase?email=a@b.com"},
		{http.MethodPost, "/gallery/add"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := s.do(req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	assert.Empty(t, s.foods.AddCalls)
	assert.Empty(t, s.foods.ByOwnerCalls)
	assert.Empty(t, s.purchases.AddCalls)
	assert.Empty(t, s.purchases.ByBuyerCalls)
	assert.Empty(t, s.gallery.AddCalls)
}

func TestPublicRoutes_NoCookie(t *testing.T) {
	s := newTestServer(t)

	public := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/allfoods"},
		{http.MethodGet, "/allfood/search?name=pizza"},
		{http.MethodGet, "/gallery/allfeedback"},
	}

	for _, tt := range public {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := s.do(req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestLogout_SetsExpiredCookie(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/user/logout", nil)
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var cleared *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "accessToken" {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}
