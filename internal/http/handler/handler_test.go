package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/http/handler"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/service"
	"github.com/xbl/lead-tracker/internal/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testAPI mounts every handler on a chi mux backed by a fresh database
type testAPI struct {
	db  *gorm.DB
	mux *chi.Mux
}

func newTestAPI(t *testing.T) *testAPI {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	employeeRepo := repository.NewEmployeeRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	offerNumberRepo := repository.NewOfferNumberRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	offerNumberService := service.NewOfferNumberService(offerNumberRepo, logger)
	leadService := service.NewLeadService(leadRepo, customerRepo, offerNumberRepo, offerNumberService, db, logger)

	employeeHandler := handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo, logger), logger)
	customerHandler := handler.NewCustomerHandler(service.NewCustomerService(customerRepo, logger), logger)
	offerNumberHandler := handler.NewOfferNumberHandler(offerNumberService, logger)
	leadHandler := handler.NewLeadHandler(leadService, service.NewLeadExportService(leadService, logger), logger)
	dashboardHandler := handler.NewDashboardHandler(
		service.NewDashboardService(leadRepo, customerRepo, employeeRepo, logger), logger)

	r := chi.NewRouter()
	r.Get("/employees", employeeHandler.List)
	r.Post("/employees", employeeHandler.Create)
	r.Delete("/employees", employeeHandler.Delete)
	r.Get("/customers", customerHandler.List)
	r.Post("/customers", customerHandler.Create)
	r.Get("/customers/lookup", customerHandler.Lookup)
	r.Get("/customers/details", customerHandler.GetDetails)
	r.Put("/customers/details", customerHandler.UpdateDetails)
	r.Get("/project-categories", offerNumberHandler.ListProjectCategories)
	r.Get("/offer-numbers/next", offerNumberHandler.NextInitial)
	r.Get("/offer-numbers/next-revision", offerNumberHandler.NextRevision)
	r.Post("/offer-numbers/serial", offerNumberHandler.GenerateSerial)
	r.Get("/leads", leadHandler.List)
	r.Post("/leads", leadHandler.Create)
	r.Get("/leads/follow-ups", leadHandler.ListFollowUps)
	r.Get("/leads/export", leadHandler.Export)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Patch("/leads/{id}", leadHandler.Update)
	r.Get("/dashboard/summary", dashboardHandler.Summary)

	return &testAPI{db: db, mux: r}
}

func (a *testAPI) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}
