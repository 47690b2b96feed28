package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// =============================================================================
// Metrics Tests
// =============================================================================

func TestMetrics_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/todos/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/todos/7", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	var found bool
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		found = true
		for _, metric := range family.GetMetric() {
			if got := metric.GetCounter().GetValue(); got != 3 {
				t.Errorf("http_requests_total = %v, want 3", got)
			}
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			// Labelled by the route template, not the raw URL.
			if labels["path"] != "/todos/:id" {
				t.Errorf("path label = %v, want /todos/:id", labels["path"])
			}
			if labels["status"] != "200" {
				t.Errorf("status label = %v, want 200", labels["status"])
			}
		}
	}
	if !found {
		t.Error("http_requests_total was not registered")
	}
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	router := gin.New()
	router.Use(metrics.Handler())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == "path" && pair.GetValue() != "unmatched" {
					t.Errorf("path label = %v, want unmatched", pair.GetValue())
				}
			}
		}
	}
}
