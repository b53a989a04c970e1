package public

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"breed-registry/internal/domain/animals"
	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/public/animals", func(pr chi.Router) {
		pr.Get("/breed/{breed}", breedSummaryHandler(svc))
		pr.Get("/lineage/{animalID}", lineageHandler(svc))
	})
}

// breedSummaryHandler godoc
// @Summary Resumen público de una raza
// @Description Conteos por especie (total, machos, hembras, breeders). Búsqueda case-insensitive.
// @Tags public
// @Produce json
// @Param breed path string true "Raza"
// @Success 200 {array} BreedSummaryRow
// @Failure 404 {string} string "breed not found"
// @Router /api/public/animals/breed/{breed} [get]
func breedSummaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.BreedSummary(r.Context(), chi.URLParam(r, "breed"))
		if err != nil {
			if errors.Is(err, animals.ErrNotFound) {
				http.Error(w, "breed not found", http.StatusNotFound)
				return
			}
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// lineageHandler godoc
// @Summary Genealogía pública de un animal
// @Description Recorre sire/dam hacia arriba. generation 0 es el animal consultado.
// @Tags public
// @Produce json
// @Param animalID path string true "animal_id (ej: JSM-001)"
// @Param generations query int false "Generaciones (1-10, default 3)"
// @Success 200 {array} LineageRow
// @Failure 404 {string} string "animal not found"
// @Router /api/public/animals/lineage/{animalID} [get]
func lineageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		generations := 0
		if v := r.URL.Query().Get("generations"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "generations must be a positive integer", http.StatusBadRequest)
				return
			}
			generations = n
		}

		rows, err := svc.Lineage(r.Context(), chi.URLParam(r, "animalID"), generations)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, animals.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, animals.ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		middleware.LoggerFrom(r.Context()).Error("public: request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
