package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/domaininfo/internal/api"
	"github.com/jroosing/domaininfo/internal/config"
	"github.com/jroosing/domaininfo/internal/lookup"
)

type stubRegistration struct{}

func (stubRegistration) Resolve(context.Context, string) (lookup.RawRegistration, error) {
	return lookup.RawRegistration{
		Registrar:   "Example Registrar, Inc.",
		Created:     lookup.DateOf(time.Date(1995, 8, 14, 4, 0, 0, 0, time.UTC)),
		Expires:     lookup.DateOf(time.Date(2026, 8, 13, 4, 0, 0, 0, time.UTC)),
		Status:      lookup.TextOf("clientTransferProhibited https://icann.org/epp"),
		Nameservers: []string{"a.iana-servers.net", "b.iana-servers.net"},
	}, nil
}

type stubRecords struct{}

func (stubRecords) Resolve(_ context.Context, _ string, recordType string) ([]string, error) {
	switch recordType {
	case "A":
		return []string{"93.184.216.34"}, nil
	default:
		return nil, lookup.ErrNoRecords
	}
}

func newTestServer(t *testing.T, apiKey string) *api.Server {
	t.Helper()
	cfg := config.Default()
	cfg.API.APIKey = apiKey

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := lookup.NewService(stubRegistration{}, stubRecords{}, logger)
	return api.New(&cfg, service, logger)
}

func doRequest(srv *api.Server, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")

	w := doRequest(srv, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealth_OpenWithAPIKeyConfigured(t *testing.T) {
	srv := newTestServer(t, "sekrit")

	w := doRequest(srv, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLookup_Success(t *testing.T) {
	srv := newTestServer(t, "")

	w := doRequest(srv, http.MethodGet, "/api/v1/lookup/example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Domain string `json:"domain"`
		Whois  struct {
			Registrar  string `json:"registrar"`
			ExpiryDate string `json:"expiry_date"`
		} `json:"whois"`
		DNS map[string]json.RawMessage `json:"dns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "example.com", body.Domain)
	assert.Equal(t, "Example Registrar, Inc.", body.Whois.Registrar)
	assert.Equal(t, "Aug 13, 2026", body.Whois.ExpiryDate)

	assert.JSONEq(t, `["93.184.216.34"]`, string(body.DNS["A"]))
	assert.JSONEq(t, `"No MX records found."`, string(body.DNS["MX"]))
}

func TestLookup_InvalidDomain(t *testing.T) {
	srv := newTestServer(t, "")

	w := doRequest(srv, http.MethodGet, "/api/v1/lookup/not_a_domain", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid domain")
}

func TestStats_RequiresAPIKey(t *testing.T) {
	srv := newTestServer(t, "sekrit")

	w := doRequest(srv, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(srv, http.MethodGet, "/api/v1/stats", map[string]string{"X-API-Key": "sekrit"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uptime")
}

func TestLookup_RequiresAPIKey(t *testing.T) {
	srv := newTestServer(t, "sekrit")

	w := doRequest(srv, http.MethodGet, "/api/v1/lookup/example.com", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
