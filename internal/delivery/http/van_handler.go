package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/usecase/van"
)

// VanService define la interfaz del servicio de furgonetas
type VanService interface {
	List(ctx context.Context) ([]*domain.Van, error)
	GetByID(ctx context.Context, id int64) (*domain.Van, error)
	Search(ctx context.Context, query string) ([]*domain.Van, error)
	Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error)
	Create(ctx context.Context, req *van.CreateVanRequest) (*domain.Van, error)
	Update(ctx context.Context, id int64, req *van.UpdateVanRequest) error
	Delete(ctx context.Context, id int64) error
}

// VanHandler atiende las peticiones de la flota
type VanHandler struct {
	vanService VanService
	logger     logger.Logger
}

// NewVanHandler crea el handler de furgonetas
func NewVanHandler(vanService VanService, logger logger.Logger) *VanHandler {
	return &VanHandler{
		vanService: vanService,
		logger:     logger,
	}
}

// List devuelve toda la flota
// GET /api/v1/vans
func (h *VanHandler) List(w http.ResponseWriter, r *http.Request) {
	vans, err := h.vanService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list vans", map[string]interface{}{
			"error": err.Error(),
		})
		respondDomainError(w, err, "Failed to fetch vans")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vans,
	})
}

// GetByID devuelve una furgoneta
// GET /api/v1/vans/{id}
func (h *VanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid van ID")
		return
	}

	v, err := h.vanService.GetByID(r.Context(), id)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to get van", map[string]interface{}{
				"van_id": id,
				"error":  err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to fetch van")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    v,
	})
}

// Search busca por subcadena de matrícula
// GET /api/v1/vans/search?q=...
func (h *VanHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	vans, err := h.vanService.Search(r.Context(), query)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to search vans", map[string]interface{}{
				"error": err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to search vans")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vans,
	})
}

// Filter aplica predicados de igualdad combinados con AND
// POST /api/v1/vans/filter
func (h *VanHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var filter domain.VanFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vans, err := h.vanService.Filter(r.Context(), &filter)
	if err != nil {
		h.logger.Error("Failed to filter vans", map[string]interface{}{
			"error": err.Error(),
		})
		respondDomainError(w, err, "Failed to filter vans")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vans,
	})
}

// Create da de alta una furgoneta
// POST /api/v1/vans
func (h *VanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req van.CreateVanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.vanService.Create(r.Context(), &req)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to create van", map[string]interface{}{
				"error": err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to create van")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      v.ID,
		"data":    v,
	})
}

// Update aplica un parche parcial
// PUT /api/v1/vans/{id}
func (h *VanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid van ID")
		return
	}

	var req van.UpdateVanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.vanService.Update(r.Context(), id, &req); err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to update van", map[string]interface{}{
				"van_id": id,
				"error":  err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to update van")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// Delete elimina una furgoneta y su historial
// DELETE /api/v1/vans/{id}
func (h *VanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid van ID")
		return
	}

	if err := h.vanService.Delete(r.Context(), id); err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to delete van", map[string]interface{}{
				"van_id": id,
				"error":  err.Error(),
			})
		}
		respondDomainError(w, err, "Failed to delete van")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
