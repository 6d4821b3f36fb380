package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/internal/usecases/authenticating"
	"github.com/maxreviewer/reviews-api/internal/usecases/reviewing"
	"github.com/maxreviewer/reviews-api/pkg/log"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
)

func init() {
	log.SetupTestLogger()
	metrics.Init()
}

func newTestServer(t *testing.T, authEnabled bool) (*Server, authenticating.Authenticator) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "0"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Auth.Enabled = authEnabled
	cfg.Auth.Secret = "segredo"

	generator := reviewing.NewGenerator(time.UTC)
	service := reviewing.NewService(generator, nil, reviewing.NewAggregator("es"), time.UTC)
	auth := authenticating.NewService(cfg)

	srv, err := New(cfg, service, auth, nil)
	require.NoError(t, err)

	return srv, auth
}

func TestServer_SummaryRequiresToken(t *testing.T) {
	srv, auth := newTestServer(t, true)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reviews/summary", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.GenerateToken(domain.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews/summary?months=6", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"source":"synthetic"`)
	assert.Contains(t, rec.Body.String(), `"months":6`)
}

func TestServer_AuthDisabled(t *testing.T) {
	srv, _ := newTestServer(t, false)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reviews/periods", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Sem banco não há agendador para disparar
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/reviews-sync/run", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _ := newTestServer(t, true)

	for _, path := range []string{"/healthcheck", "/metrics"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
