package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Port: "0", Env: "test", LogLevel: "error", StorageDriver: config.StorageDriverMemory},
		Redis: config.RedisConfig{
			Enabled:  false,
			StatsTTL: time.Minute,
		},
		JWT:       config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 600, Burst: 50},
		Pharmacy:  config.PharmacyConfig{LowStockThreshold: 10},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
	} `json:"meta"`
}

type apiClient struct {
	t       *testing.T
	handler http.Handler
}

func newClient(t *testing.T) *apiClient {
	t.Helper()
	app, err := NewWithConfig(testConfig())
	require.NoError(t, err)
	app.Log.SetOutput(io.Discard)
	assert.Nil(t, app.DB)
	assert.Nil(t, app.Scheduler)
	return &apiClient{t: t, handler: app.Server.Handler}
}

func (c *apiClient) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

// login registers an account with role and returns its access token.
func (c *apiClient) login(email, role string) string {
	c.t.Helper()

	rec, _ := c.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"full_name": "Test " + role,
		"email":     email,
		"password":  "secret123",
		"role":      role,
	})
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := c.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(c.t, tokens.AccessToken)
	return tokens.AccessToken
}

func (c *apiClient) createID(path, token string, body interface{}) string {
	c.t.Helper()

	rec, env := c.do(http.MethodPost, path, token, body)
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestApp_PublicRoutes(t *testing.T) {
	c := newClient(t)

	rec, _ := c.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec, _ = c.do(http.MethodGet, "/api/v1/patients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = c.do(http.MethodOptions, "/api/v1/patients", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestApp_PatientLifecycle(t *testing.T) {
	c := newClient(t)
	admin := c.login("admin@hospital.test", "admin")

	for _, name := range []string{"Alice Smith", "Bob Jones", "Alice Brown"} {
		c.createID("/api/v1/patients", admin, map[string]string{
			"name":          name,
			"gender":        "Female",
			"date_of_birth": "1990-01-01",
		})
	}

	rec, env := c.do(http.MethodGet, "/api/v1/patients?search=alice&limit=1", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, env.Meta)
	assert.EqualValues(t, 2, env.Meta.Total)
	assert.Equal(t, 1, env.Meta.Limit)

	rec, _ = c.do(http.MethodGet, "/api/v1/patients/not-a-uuid", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = c.do(http.MethodGet, "/api/v1/dashboard/statistics", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		TotalPatients int `json:"total_patients"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 3, stats.TotalPatients)
}

func TestApp_RoleGates(t *testing.T) {
	c := newClient(t)
	admin := c.login("admin@hospital.test", "admin")
	doctor := c.login("doctor@hospital.test", "doctor")
	nurse := c.login("nurse@hospital.test", "nurse")

	patient := map[string]string{"name": "Carol White", "gender": "Female", "date_of_birth": "1985-03-02"}
	rec, _ := c.do(http.MethodPost, "/api/v1/patients", nurse, patient)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	patientID := c.createID("/api/v1/patients", doctor, patient)

	doctorID := c.createID("/api/v1/doctors", admin, map[string]string{
		"name":           "Dr. House",
		"specialization": "Diagnostics",
	})

	appointmentID := c.createID("/api/v1/appointments", doctor, map[string]string{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"date":       "2030-01-15",
		"time":       "09:30",
		"type":       "Consultation",
	})

	rec, _ = c.do(http.MethodPatch, "/api/v1/appointments/"+appointmentID+"/status", nurse, map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	medicine := map[string]interface{}{
		"name":        "Paracetamol",
		"category":    "Analgesic",
		"price":       "2.50",
		"stock":       5,
		"expiry_date": "2030-12-31",
	}
	rec, _ = c.do(http.MethodPost, "/api/v1/pharmacy/medicines", doctor, medicine)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	c.createID("/api/v1/pharmacy/medicines", nurse, medicine)

	rec, env := c.do(http.MethodGet, "/api/v1/pharmacy/medicines/low-stock", doctor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var low []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &low))
	assert.Len(t, low, 1)

	rec, _ = c.do(http.MethodGet, "/api/v1/audit-logs", doctor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = c.do(http.MethodGet, "/api/v1/audit-logs?entity=patient", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta)
	assert.EqualValues(t, 1, env.Meta.Total)
}

func TestApp_LogoutRevokesToken(t *testing.T) {
	c := newClient(t)
	token := c.login("admin@hospital.test", "admin")

	rec, _ := c.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = c.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = c.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApp_Metrics(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodGet, "/api/v1/health", "", nil)

	rec, _ := c.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNewLogger_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, "info", newLogger("loud").GetLevel().String())
	assert.Equal(t, "debug", newLogger("debug").GetLevel().String())
}
