package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/davidfer1112/portfolio/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) admin(method, path string, form url.Values, token string) *httptest.ResponseRecorder {
	h.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: adminCookie, Value: token})
	}
	w := httptest.NewRecorder()
	h.srv.Engine().ServeHTTP(w, req)
	return w
}

func TestAdminRequiresLogin(t *testing.T) {
	h := newHarness(t)

	w := h.admin(http.MethodGet, "/admin/dashboard", nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = h.admin(http.MethodGet, "/admin/api/stats", nil, "forged")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdminLogin(t *testing.T) {
	h := newHarness(t)

	w := h.admin(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = h.admin(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}}, "")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			token = c.Value
		}
	}
	require.Equal(t, h.srv.adminToken, token)

	w = h.admin(http.MethodGet, "/admin/dashboard", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dashboard")
}

func TestAdminStatsAndExport(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.stats.RecordVisit(ctx, analytics.Visit{HashedIP: "x", Path: "/", Lang: "en"}))
	require.NoError(t, h.stats.RecordClick(ctx, "github", "https://github.com/davidfer1112"))

	w := h.admin(http.MethodGet, "/admin/api/stats", nil, h.srv.adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.EqualValues(t, 1, stats.ByLanguage["en"])
	assert.EqualValues(t, 1, stats.TotalClicks)

	w = h.admin(http.MethodGet, "/admin/export/stats", nil, h.srv.adminToken)
	assert.Equal(t, "attachment; filename=admin-stats.json", w.Header().Get("Content-Disposition"))

	w = h.admin(http.MethodGet, "/admin/visitors", nil, h.srv.adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<td>x</td>")

	w = h.admin(http.MethodPost, "/admin/privacy/cleanup", nil, h.srv.adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":0`)
}

func TestPrivacyPage(t *testing.T) {
	h := newHarness(t)
	w := h.admin(http.MethodGet, "/privacy", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Do Not Track")
}
