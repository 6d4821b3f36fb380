package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/internal/usecases/authenticating"
	"github.com/maxreviewer/reviews-api/internal/usecases/authenticating/mocks"
	"github.com/maxreviewer/reviews-api/pkg/apiErrors"
	"github.com/maxreviewer/reviews-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

// echoClaims responde 200 com o user_id das claims do contexto
func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if ok {
			_, _ = w.Write([]byte(claims.UserID))
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		enabled    bool
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:       "rota pública sem token",
			path:       "/healthcheck",
			enabled:    true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem header",
			path:       "/v1/reviews/summary",
			enabled:    true,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "sem prefixo Bearer",
			path:       "/v1/reviews/summary",
			header:     "Token abc",
			enabled:    true,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:    "token expirado",
			path:    "/v1/reviews/summary",
			header:  "Bearer abc",
			enabled: true,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:    "token válido",
			path:    "/v1/reviews/summary",
			header:  "Bearer abc",
			enabled: true,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserID: "u1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "u1",
		},
		{
			name:       "autenticação desligada",
			path:       "/v1/reviews/summary",
			enabled:    false,
			wantStatus: http.StatusOK,
			wantBody:   "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth, tt.enabled)(echoClaims()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "sem claims", wantStatus: http.StatusUnauthorized},
		{name: "viewer em rota de admin", claims: &domain.Claims{UserID: "u1", Role: domain.RoleViewer}, wantStatus: http.StatusForbidden},
		{name: "sem perfil conta como viewer", claims: &domain.Claims{UserID: "u1"}, wantStatus: http.StatusForbidden},
		{name: "admin", claims: &domain.Claims{UserID: "u1", Role: domain.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/reviews-sync/run", nil)
			if tt.claims != nil {
				ctrl := gomock.NewController(t)
				auth := mocks.NewMockAuthenticator(ctrl)
				auth.EXPECT().ValidateToken("t").Return(tt.claims, nil)
				req.Header.Set("Authorization", "Bearer t")

				rec := httptest.NewRecorder()
				AuthMiddleware(auth, true)(AdminOnly()(echoClaims())).ServeHTTP(rec, req)
				assert.Equal(t, tt.wantStatus, rec.Code)
				return
			}

			rec := httptest.NewRecorder()
			AdminOnly()(echoClaims()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAllRolesAcceptsViewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken("t").Return(&domain.Claims{UserID: "u1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews/periods", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()

	AuthMiddleware(auth, true)(AllRoles()(echoClaims())).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(echoClaims())

	req := httptest.NewRequest(http.MethodOptions, "/v1/reviews/summary", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/reviews/summary", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(LoggingMiddleware()(panicky)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}
