package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/irds/vans-api/internal/domain"
)

// respondJSON envía una respuesta JSON
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondError envía una respuesta JSON de error
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// statusForError traduce el error de dominio al código HTTP de la taxonomía:
// validación 422, not-found 404, conflicto 409, no autorizado 401,
// almacén caído 503, resto 500
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrVanNotFound),
		errors.Is(err, domain.ErrAveriaNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrVanAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidVIN),
		errors.Is(err, domain.ErrInvalidMatricula),
		errors.Is(err, domain.ErrInvalidVanData),
		errors.Is(err, domain.ErrInvalidCausa),
		errors.Is(err, domain.ErrInvalidFecha),
		errors.Is(err, domain.ErrInvalidAveriaData),
		errors.Is(err, domain.ErrInvalidSearchQuery),
		errors.Is(err, domain.ErrInvalidUserData):
		return http.StatusUnprocessableEntity

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrSessionRevoked):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError mapea el error y oculta el detalle de los 500
func respondDomainError(w http.ResponseWriter, err error, internalMessage string) {
	code := statusForError(err)
	if code == http.StatusInternalServerError || code == http.StatusServiceUnavailable {
		respondError(w, code, internalMessage)
		return
	}
	respondError(w, code, err.Error())
}

// parseIDParam extrae y valida el parámetro {id} de la ruta
func parseIDParam(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}
