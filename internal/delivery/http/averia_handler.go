package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/usecase/averia"
)

// AveriaService define la interfaz del servicio de averías
type AveriaService interface {
	List(ctx context.Context) ([]*domain.Averia, error)
	GetByID(ctx context.Context, id int64) (*domain.Averia, error)
	GetByVanID(ctx context.Context, vanID int64) ([]*domain.Averia, error)
	Create(ctx context.Context, req *averia.CreateAveriaRequest) (*domain.Averia, error)
	Update(ctx context.Context, id int64, req *averia.UpdateAveriaRequest) error
	Delete(ctx context.Context, id int64) error
}

// AveriaHandler atiende las peticiones de averías
type AveriaHandler struct {
	averiaService AveriaService
	logger        logger.Logger
}

// NewAveriaHandler crea el handler de averías
func NewAveriaHandler(averiaService AveriaService, logger logger.Logger) *AveriaHandler {
	return &AveriaHandler{
		averiaService: averiaService,
		logger:        logger,
	}
}

// List devuelve todas las averías
// GET /api/v1/averias
func (h *AveriaHandler) List(w http.ResponseWriter, r *http.Request) {
	averias, err := h.averiaService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list averias", map[string]interface{}{
			"error": err.Error(),
		})
		respondDomainError(w, err, "Failed to fetch averias")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    averias,
	})
}

// GetByID devuelve una avería
// GET /api/v1/averias/{id}
func (h *AveriaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid averia ID")
		return
	}

	a, err := h.averiaService.GetByID(r.Context(), id)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to get averia", map[string]interface{}{
				"averia_id": id,
				"error":     err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to fetch averia")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    a,
	})
}

// GetByVanID devuelve el historial de una furgoneta
// GET /api/v1/vans/{id}/averias
func (h *AveriaHandler) GetByVanID(w http.ResponseWriter, r *http.Request) {
	vanID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid van ID")
		return
	}

	averias, err := h.averiaService.GetByVanID(r.Context(), vanID)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to get van averias", map[string]interface{}{
				"van_id": vanID,
				"error":  err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to fetch averias")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    averias,
	})
}

// Create da de alta una avería; comprueba antes que la furgoneta existe
// POST /api/v1/averias
func (h *AveriaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req averia.CreateAveriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.averiaService.Create(r.Context(), &req)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to create averia", map[string]interface{}{
				"error": err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to create averia")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      a.ID,
		"data":    a,
	})
}

// Update aplica un parche parcial
// PUT /api/v1/averias/{id}
func (h *AveriaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid averia ID")
		return
	}

	var req averia.UpdateAveriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.averiaService.Update(r.Context(), id, &req); err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to update averia", map[string]interface{}{
				"averia_id": id,
				"error":     err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to update averia")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// Delete elimina una avería
// DELETE /api/v1/averias/{id}
func (h *AveriaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid averia ID")
		return
	}

	if err := h.averiaService.Delete(r.Context(), id); err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to delete averia", map[string]interface{}{
				"averia_id": id,
				"error":     err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to delete averia")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
