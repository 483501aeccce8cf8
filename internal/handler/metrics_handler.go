package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ayush2328/Exam-Portal/internal/service"
)

// MetricsHandler exposes the Prometheus scrape endpoint.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Metrics handles GET /metrics.
func (h *MetricsHandler) Metrics(c *gin.Context) {
	h.metrics.HTTPHandler().ServeHTTP(c.Writer, c.Request)
}
