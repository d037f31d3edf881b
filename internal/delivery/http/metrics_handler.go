package http

import (
	"context"
	"net/http"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
)

// MetricsService define la interfaz del agregador de métricas
type MetricsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardMetrics, error)
}

// MetricsHandler atiende las peticiones del panel
type MetricsHandler struct {
	metricsService MetricsService
	logger         logger.Logger
}

// NewMetricsHandler crea el handler de métricas
func NewMetricsHandler(metricsService MetricsService, logger logger.Logger) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		logger:         logger,
	}
}

// Dashboard devuelve la instantánea de salud de la flota
// GET /api/v1/metrics/dashboard
func (h *MetricsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	m, err := h.metricsService.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard metrics", map[string]interface{}{
			"error": err.Error(),
		})
		respondDomainError(w, err, "Failed to fetch metrics")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    m,
	})
}
