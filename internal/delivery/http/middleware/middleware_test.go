package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management/config"
	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	keys map[string]bool
	err  error
}

func (f *fakeTokens) Exists(_ context.Context, key string) (bool, error) {
	return f.keys[key], f.err
}

func okHandler(t *testing.T, check func(r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
}

func TestAuthenticate(t *testing.T) {
	svc := newJWT()
	userID := uuid.New()
	access, accessID, err := svc.GenerateAccessToken(userID, "doc@hospital.test", entity.RoleIDDoctor)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(userID, "doc@hospital.test", entity.RoleIDDoctor)
	require.NoError(t, err)

	tokens := &fakeTokens{keys: map[string]bool{jwt.TokenKey(jwt.AccessToken, userID, accessID): true}}
	m := NewAuthMiddleware(svc, tokens)

	t.Run("valid token populates context", func(t *testing.T) {
		var called bool
		h := m.Authenticate(okHandler(t, func(r *http.Request) {
			called = true
			id, ok := GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, userID, id)
			role, _ := GetRoleIDFromContext(r.Context())
			assert.Equal(t, entity.RoleIDDoctor, role)
			tokenID, _ := GetTokenIDFromContext(r.Context())
			assert.Equal(t, accessID, tokenID)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	cases := []struct {
		name   string
		header string
		tokens *fakeTokens
		want   int
	}{
		{"missing header", "", tokens, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", tokens, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", tokens, http.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + refresh, tokens, http.StatusUnauthorized},
		{"revoked", "Bearer " + access, &fakeTokens{}, http.StatusUnauthorized},
		{"store failure", "Bearer " + access, &fakeTokens{err: errors.New("down")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthMiddleware(svc, tc.tokens).Authenticate(okHandler(t, func(*http.Request) {
				t.Fatal("handler must not be reached")
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	withRole := func(role int) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), RoleIDKey, role))
	}

	tests := []struct {
		name string
		mw   func(http.Handler) http.Handler
		req  *http.Request
		want int
	}{
		{"admin allowed", RequireAdmin, withRole(entity.RoleIDAdmin), http.StatusOK},
		{"doctor forbidden on admin route", RequireAdmin, withRole(entity.RoleIDDoctor), http.StatusForbidden},
		{"doctor clinical write", RequireAdminOrDoctor, withRole(entity.RoleIDDoctor), http.StatusOK},
		{"nurse clinical write", RequireAdminOrDoctor, withRole(entity.RoleIDNurse), http.StatusForbidden},
		{"nurse pharmacy write", RequireAdminOrNurse, withRole(entity.RoleIDNurse), http.StatusOK},
		{"any staff", RequireStaff, withRole(entity.RoleIDNurse), http.StatusOK},
		{"no role in context", RequireStaff, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.mw(okHandler(t, nil)).ServeHTTP(rec, tt.req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := NewCORSMiddleware().Handle(okHandler(t, func(*http.Request) {
		t.Fatal("preflight must not reach handler")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/patients", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRateLimit(t *testing.T) {
	m := NewRateLimitMiddleware(1, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	h := m.Handle(okHandler(t, nil))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"), "limits are per IP")

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1003"))
}

func TestRateLimit_SweepsIdleClientsPeriodically(t *testing.T) {
	m := NewRateLimitMiddleware(60, 5)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	m.now = func() time.Time { return now }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		m.limiter(ip)
	}

	now = start.Add(5 * time.Minute)
	m.limiter("10.0.0.4")
	assert.Len(t, m.limiters, 4, "no sweep before the interval elapses")

	now = start.Add(11 * time.Minute)
	m.limiter("10.0.0.4")
	assert.Len(t, m.limiters, 1)
	assert.Contains(t, m.limiters, "10.0.0.4")
	assert.Equal(t, now.Add(m.idleTTL), m.nextSweep)
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsMiddleware(reg)

	r := mux.NewRouter()
	r.Use(m.Handle)
	r.HandleFunc("/patients/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/patients/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/patients/{id}", "404")))
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	h := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/staff", nil))

	assert.Contains(t, buf.String(), `"status":409`)
	assert.Contains(t, buf.String(), `"path":"/api/v1/staff"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
