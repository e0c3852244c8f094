package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/config"
	"github.com/xbl/lead-tracker/internal/http/handler"
	"github.com/xbl/lead-tracker/internal/http/middleware"
	"github.com/xbl/lead-tracker/internal/http/router"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/service"
	"github.com/xbl/lead-tracker/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) http.Handler {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	cfg := &config.Config{
		App:      config.AppConfig{Name: "test", Environment: "development"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite},
		Server:   config.ServerConfig{RequestTimeout: 5, EnableSwagger: true},
		CORS:     config.CORSConfig{AllowedMethods: []string{"GET", "POST"}},
		Security: config.SecurityConfig{ContentTypeNosniff: true, FrameOptions: "DENY"},
		RateLimit: config.RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 1000,
			WhitelistPaths:    []string{"/health"},
		},
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	offerNumberRepo := repository.NewOfferNumberRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	offerNumberService := service.NewOfferNumberService(offerNumberRepo, logger)
	leadService := service.NewLeadService(leadRepo, customerRepo, offerNumberRepo, offerNumberService, db, logger)

	rt := router.NewRouter(
		cfg,
		logger,
		db,
		middleware.NewRateLimiter(&cfg.RateLimit, logger),
		handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo, logger), logger),
		handler.NewCustomerHandler(service.NewCustomerService(customerRepo, logger), logger),
		handler.NewOfferNumberHandler(offerNumberService, logger),
		handler.NewLeadHandler(leadService, service.NewLeadExportService(leadService, logger), logger),
		handler.NewDashboardHandler(service.NewDashboardService(leadRepo, customerRepo, employeeRepo, logger), logger),
	)
	return rt.Setup()
}

func TestRouter_Health(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/health", "/health/db", "/health/ready"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, config.DriverSQLite, body["driver"])
}

func TestRouter_APIRoutes(t *testing.T) {
	h := newTestHandler(t)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}
	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	require.Equal(t, http.StatusCreated, post("/api/v1/customers", `{"name":"Acme"}`).Code)
	require.Equal(t, http.StatusCreated, post("/api/v1/employees", `{"name":"Sam"}`).Code)

	w := post("/api/v1/leads", `{
		"customerName": "Acme",
		"projectCategory": "PSE",
		"assignedSalesPerson": "Sam",
		"offerCreated": "2024-03-05",
		"leadThrough": "Trade fair",
		"followUpBy": "Sam"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	assert.Equal(t, http.StatusOK, get(location).Code)
	assert.Equal(t, http.StatusOK, get("/api/v1/leads").Code)
	assert.Equal(t, http.StatusOK, get("/api/v1/leads/follow-ups").Code)
	assert.Equal(t, http.StatusOK, get("/api/v1/project-categories").Code)
	assert.Equal(t, http.StatusOK, get("/api/v1/offer-numbers/next?customer=Acme&category=PSE").Code)
	assert.Equal(t, http.StatusOK, get("/api/v1/dashboard/summary").Code)
	assert.Equal(t, http.StatusNotFound, get("/api/v1/unknown").Code)
}

func TestRouter_Swagger(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/offer-numbers/next")
}
