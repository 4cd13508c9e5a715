package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"material_estimator/internal/adapter/http/handlers"
	"material_estimator/internal/domain/estimation"
	"material_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(log *zap.Logger) *gin.Engine {
	engine := estimation.NewEngine(nil)
	return NewRouter(Handlers{
		Estimate: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(engine, log), log),
		Catalog:  handlers.NewCatalogHandler(usecase.NewCatalogUseCase(engine)),
	}, log)
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}

func TestEstimateRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	r := newTestRouter(zap.New(core))

	cases := []struct {
		name   string
		path   string
		body   string
		status int
		total  float64
	}{
		{"base", PathEstimate, `{"budget":1000000,"size":100,"design_style":"Modern"}`, http.StatusOK, 706530},
		{"budget exceeded", PathEstimate, `{"budget":1000,"size":100,"design_style":"Modern"}`, http.StatusBadRequest, 0},
		{"invalid style", PathEstimate, `{"budget":1000,"size":100,"design_style":"Gothic"}`, http.StatusBadRequest, 0},
		{"components", PathEstimateFromComponents,
			`{"budget":1000000,"size":100,"design_style":"Modern","components":[{"name":"wall","quantity":1,"added":3}]}`, http.StatusOK, 726330},
		{"model changes", PathEstimateFromModelChanges,
			`{"baseMaterials":{"Cement":{"quantity":300,"unit_price":259,"total_price":77700}},"modelChanges":{"Cement":{"added":2,"removed":0}},"designStyle":"Modern"}`,
			http.StatusOK, 85470},
		{"negative base line", PathEstimateFromModelChanges,
			`{"baseMaterials":{"Cement":{"quantity":-300,"unit_price":259,"total_price":77700}},"modelChanges":{"Cement":{"added":2}}}`,
			http.StatusBadRequest, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1"+tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.status != http.StatusOK {
				return
			}
			var body struct {
				EstimateID string  `json:"estimate_id"`
				TotalCost  float64 `json:"total_cost"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.TotalCost != tc.total || body.EstimateID == "" {
				t.Fatalf("expected total %v with id, got %+v", tc.total, body)
			}
		})
	}

	if logs.FilterMessage("[http][request]").Len() != len(cases) {
		t.Fatalf("expected %d request logs, got %d", len(cases), logs.FilterMessage("[http][request]").Len())
	}
}

func TestCatalogRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/styles/Rustic", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/components", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	setMiddlewares(r, zap.New(core))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if logs.FilterMessage("[http][server] recovered from panic").Len() != 1 {
		t.Fatalf("expected panic log, got %v", logs.All())
	}
}
