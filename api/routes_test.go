package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ratelimit "datamesh-service/api/middleware"
	"datamesh-service/service"
	"datamesh-service/testutil"
)

func newTestRouter(t *testing.T, limiter *ratelimit.RateLimiter) *chi.Mux {
	t.Helper()

	c, err := service.NewContainer(context.Background(), testutil.DefaultTestConfig(), nil, nil)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	r := chi.NewRouter()
	InitRoute(r, c, limiter)
	return r
}

func TestInitRoute_Endpoints(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		path string
		code int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{APIPrefix + "/dashboard/metrics", http.StatusOK},
		{APIPrefix + "/dashboard/trends", http.StatusOK},
		{APIPrefix + "/dashboard/overview", http.StatusOK},
		{APIPrefix + "/catalog/assets?search=customer", http.StatusOK},
		{APIPrefix + "/catalog/assets?category=bogus", http.StatusBadRequest},
		{APIPrefix + "/catalog/assets/customer-api", http.StatusOK},
		{APIPrefix + "/catalog/assets/unknown", http.StatusNotFound},
		{APIPrefix + "/lineage", http.StatusOK},
		{APIPrefix + "/lineage/nodes/warehouse", http.StatusOK},
		{APIPrefix + "/lineage/nodes/warehouse/impact", http.StatusOK},
		{APIPrefix + "/lineage/nodes/unknown", http.StatusNotFound},
		{APIPrefix + "/quality/metrics", http.StatusOK},
		{APIPrefix + "/quality/trends?days=14", http.StatusOK},
		{APIPrefix + "/quality/sources", http.StatusOK},
		{APIPrefix + "/quality/alerts", http.StatusOK},
		{APIPrefix + "/integrations/sql", http.StatusOK},
		{APIPrefix + "/integrations/workflows", http.StatusOK},
		{APIPrefix + "/integrations/workflows/jobs/job-002", http.StatusOK},
		{APIPrefix + "/integrations/lake", http.StatusOK},
		{APIPrefix + "/integrations/mlflow", http.StatusOK},
		{APIPrefix + "/integrations/catalog", http.StatusOK},
		{APIPrefix + "/integrations/catalog/tables/main.sales.customers", http.StatusOK},
		{"/does-not-exist", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestInitRoute_RateLimitOnlyOnAPI(t *testing.T) {
	limiter := ratelimit.NewRateLimiter(1, 1)
	defer limiter.Stop()
	r := newTestRouter(t, limiter)

	get := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get(APIPrefix+"/quality/metrics"))
	assert.Equal(t, http.StatusTooManyRequests, get(APIPrefix+"/quality/metrics"))
	assert.Equal(t, http.StatusOK, get("/health"))
}
