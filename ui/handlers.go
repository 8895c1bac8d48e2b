package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "gomendel/internal/errors"
	"gomendel/models"
	"gomendel/ports"
)

// handlePreview runs one ad-hoc cross. The engine reports problems in the
// response's errors field, so this endpoint answers 200 even for inputs it
// cannot compute.
func (a *App) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result := a.preview.Preview(r.Context(), req)
	respondJSON(w, http.StatusOK, result)
}

// handleSimulate crosses the parents for several registry traits at once
func (a *App) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req models.SimulationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := a.simulation.Simulate(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// handleGenotypes lists the genotype space of registry traits
func (a *App) handleGenotypes(w http.ResponseWriter, r *http.Request) {
	var req models.GenotypeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := a.simulation.PossibleGenotypes(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// handleListTraits returns the catalog, narrowed by query parameters
func (a *App) handleListTraits(w http.ResponseWriter, r *http.Request) {
	filter := ports.TraitFilter{
		InheritancePattern: r.URL.Query().Get("inheritance_pattern"),
		Category:           r.URL.Query().Get("category"),
		Search:             r.URL.Query().Get("search"),
	}

	listing, err := a.catalog.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// handleGetTrait returns one catalog trait
func (a *App) handleGetTrait(w http.ResponseWriter, r *http.Request) {
	summary, err := a.catalog.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "gomendel"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid JSON body",
			Code:  apperrors.CodeValidationError,
		})
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Response encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	code := apperrors.CodeInternalError

	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
		code = appErr.Code
		switch appErr.Code {
		case apperrors.CodeValidationError:
			status = http.StatusBadRequest
		case apperrors.CodeNotFound:
			status = http.StatusNotFound
		case apperrors.CodeCatalogError:
			status = http.StatusUnprocessableEntity
		}
	}

	respondJSON(w, status, models.ErrorResponse{Error: message, Code: code})
}
