package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/breeders/{breederID}/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

// createAnimalRequest es el cuerpo para registrar un animal.
type createAnimalRequest struct {
	AnimalType  AnimalType `json:"animal_type" enums:"cattle,sheep,goat,pig,horse,other"`
	Breed       string     `json:"breed"`
	Gender      Gender     `json:"gender" enums:"male,female"`
	DateOfBirth string     `json:"date_of_birth"` // YYYY-MM-DD opcional
	SireID      string     `json:"sire_id"`       // opcional, id interno
	DamID       string     `json:"dam_id"`        // opcional, id interno
}

func (r createAnimalRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AnimalType, validation.Required,
			validation.In(TypeCattle, TypeSheep, TypeGoat, TypePig, TypeHorse, TypeOther)),
		validation.Field(&r.Breed, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Gender, validation.Required, validation.In(GenderMale, GenderFemale)),
		validation.Field(&r.DateOfBirth, validation.Date("2006-01-02").Error("must be YYYY-MM-DD")),
		validation.Field(&r.SireID, is.UUID),
		validation.Field(&r.DamID, is.UUID),
	)
}

// AnimalResponse es la representación pública de un animal.
type AnimalResponse struct {
	ID          string     `json:"id"`
	AnimalID    string     `json:"animal_id"`
	BreederID   string     `json:"breeder_id"`
	AnimalType  AnimalType `json:"animal_type"`
	Breed       string     `json:"breed"`
	Gender      Gender     `json:"gender"`
	DateOfBirth *string    `json:"date_of_birth,omitempty"`
	SireID      *string    `json:"sire_id,omitempty"`
	DamID       *string    `json:"dam_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal para el breeder. El `animal_id` se asigna en el servidor como `<FARM_PREFIX>-NNN`. Sire y dam, si vienen, deben pertenecer al mismo breeder (sire macho, dam hembra).
// @Tags animals
// @Accept json
// @Produce json
// @Param breederID path string true "ID del breeder"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} AnimalResponse
// @Failure 400 {string} string "invalid json / validación / invalid sire id / invalid dam id"
// @Failure 404 {string} string "breeder not found"
// @Failure 409 {string} string "animal id already exists"
// @Router /api/breeders/{breederID}/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breederID := chi.URLParam(r, "breederID")

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var dob *time.Time
		if strings.TrimSpace(req.DateOfBirth) != "" {
			t, _ := time.Parse("2006-01-02", req.DateOfBirth) // ya validado
			dob = &t
		}

		a, err := svc.Create(r.Context(), breederID, CreateInput{
			AnimalType:  req.AnimalType,
			Breed:       req.Breed,
			Gender:      req.Gender,
			DateOfBirth: dob,
			SireID:      req.SireID,
			DamID:       req.DamID,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales de un breeder
// @Tags animals
// @Produce json
// @Param breederID path string true "ID del breeder"
// @Param skip query int false "Offset (default 0)"
// @Param limit query int false "Máximo (1-500). Por defecto 100"
// @Success 200 {array} AnimalResponse
// @Failure 404 {string} string "breeder not found"
// @Router /api/breeders/{breederID}/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByBreeder(r.Context(), chi.URLParam(r, "breederID"), ParseListFilter(r))
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]AnimalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.OwnedBy(r.Context(), chi.URLParam(r, "breederID"), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(a))
	}
}

// ParseListFilter lee skip/limit (defaults 0/100, limit máximo 500).
func ParseListFilter(r *http.Request) ListFilter {
	f := ListFilter{Skip: 0, Limit: 100}
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			f.Limit = n
		}
	}
	return f
}

func ToResponse(a Animal) AnimalResponse {
	var dob *string
	if a.DateOfBirth != nil {
		s := a.DateOfBirth.Format("2006-01-02")
		dob = &s
	}
	return AnimalResponse{
		ID:          a.ID,
		AnimalID:    a.AnimalID,
		BreederID:   a.BreederID,
		AnimalType:  a.AnimalType,
		Breed:       a.Breed,
		Gender:      a.Gender,
		DateOfBirth: dob,
		SireID:      a.SireID,
		DamID:       a.DamID,
		CreatedAt:   a.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBreederNotFound):
		http.Error(w, "breeder not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		middleware.LoggerFrom(r.Context()).Error("animals: request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
