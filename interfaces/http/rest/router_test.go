package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailingsiq-backend/application/services"
	"tailingsiq-backend/infrastructure/config"
	"tailingsiq-backend/infrastructure/memstore"
	"tailingsiq-backend/pkg/auth"
	apperrors "tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/observability"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	cfg := &config.Config{
		ServerAddress:      ":0",
		Environment:        "test",
		JWTIssuer:          "tailingsiq-backend",
		TokenTTLMinutes:    30,
		RateLimitPerMinute: 0,
		MaxUploadBytes:     32 << 20,
		EnableMetrics:      true,
		EnableCORS:         false,
	}

	facilities := memstore.NewFacilityStore()
	documents := memstore.NewDocumentStore()
	sensors := memstore.NewSensorStore(facilities.List())
	alerts := memstore.NewAlertStore(facilities.List())
	users := memstore.NewUserStore()
	tokens := auth.NewService("test-secret", cfg.JWTIssuer, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	collector := observability.NewCollector("tailingsiq")
	errorHandler := apperrors.NewErrorHandler(logger)

	router := NewRouter(
		cfg,
		services.NewAuthService(users, tokens, logger),
		services.NewFacilityService(facilities),
		services.NewDocumentService(documents, facilities, logger),
		services.NewMonitoringService(facilities, sensors, alerts, logger),
		services.NewRiskService(facilities, memstore.NewRiskStore(), logger),
		services.NewAssistantService(memstore.NewKnowledgeStore(), logger),
		tokens,
		users,
		auth.NewIPRateLimiter(1000),
		errorHandler,
		collector,
		logger,
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()

	form := url.Values{"username": {"test_user"}, "password": {"password"}}
	resp, err := http.PostForm(server.URL+"/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bearer", body.TokenType)
	return body.AccessToken
}

func authedGet(t *testing.T, server *httptest.Server, token, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest("GET", server.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestRouter_RootIsPublic(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string   `json:"message"`
		Version string   `json:"version"`
		Modules []string `json:"modules"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Welcome to TailingsIQ API", body.Message)
	assert.Equal(t, "1.0.0", body.Version)
	assert.Len(t, body.Modules, 4)
}

func TestRouter_HealthAndReady(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestRouter_APIRequiresToken(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/facilities")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestRouter_BadCredentials(t *testing.T) {
	server := newTestServer(t)

	form := url.Values{"username": {"test_user"}, "password": {"nope"}}
	resp, err := http.PostForm(server.URL+"/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_LoginAndFetchIdentity(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := authedGet(t, server, token, "/users/me")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "test_user", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestRouter_InactiveUserIdentityRejected(t *testing.T) {
	server := newTestServer(t)

	form := url.Values{"username": {"inactive_user"}, "password": {"password"}}
	resp, err := http.PostForm(server.URL+"/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	me := authedGet(t, server, body.AccessToken, "/users/me")
	defer me.Body.Close()
	assert.Equal(t, http.StatusBadRequest, me.StatusCode)

	// API routes authenticate the token only; account status is checked
	// by the identity endpoint.
	facilities := authedGet(t, server, body.AccessToken, "/api/facilities")
	defer facilities.Body.Close()
	assert.Equal(t, http.StatusOK, facilities.StatusCode)
}

func TestRouter_FacilityListing(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := authedGet(t, server, token, "/api/facilities")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var facilities []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Location string `json:"location"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&facilities))
	require.Len(t, facilities, 4)
	assert.Equal(t, "FAC001", facilities[0].ID)
	assert.Equal(t, "Northern Region", facilities[0].Location)
}

func TestRouter_DocumentListingPaginates(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := authedGet(t, server, token, "/api/documents?page_size=3&page=2")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Documents  []json.RawMessage `json:"documents"`
		TotalCount int               `json:"total_count"`
		Page       int               `json:"page"`
		PageSize   int               `json:"page_size"`
		TotalPages int               `json:"total_pages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 8, page.TotalCount)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Documents, 3)
}

func TestRouter_DocumentValidationErrors(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := authedGet(t, server, token, "/api/documents?page_size=500")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_DocumentDownloadUnimplemented(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := authedGet(t, server, token, "/api/documents/DOC001/download")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestRouter_AssistantQuery(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	req, err := http.NewRequest("POST", server.URL+"/api/query-assistant/query",
		strings.NewReader(`{"query":"tell me about gistm compliance"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Response, "Global Industry Standard")
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	server := newTestServer(t)

	// Drive one observed request so the HTTP counters have samples.
	warmup, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	warmup.Body.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tailingsiq_http_requests_total")
}
