package breeding

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"breed-registry/internal/domain/animals"
	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/breeders/{breederID}/breeding-events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc))
		er.Get("/", listEventsHandler(svc))
		er.Get("/{eventID}", getEventHandler(svc))
	})
}

// createEventRequest es el cuerpo para registrar un evento de cría.
type createEventRequest struct {
	BreedingMethod  Method `json:"breeding_method" enums:"natural,artificial_insemination,embryo_transfer,ivf"`
	DamID           string `json:"dam_id"`
	SireID          string `json:"sire_id"`      // opcional
	OffspringID     string `json:"offspring_id"` // opcional
	BreedingDate    string `json:"breeding_date"`
	ExpectedDueDate string `json:"expected_due_date"` // opcional

	SemenSource  string `json:"semen_source"`
	AITechnician string `json:"ai_technician"`
	BatchNumber  string `json:"batch_number"`
	DonorDam     string `json:"donor_dam"`
	EmbryoID     string `json:"embryo_id"`
	Notes        string `json:"notes"`
}

func (r createEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BreedingMethod, validation.Required,
			validation.In(MethodNatural, MethodArtificialInsemination, MethodEmbryoTransfer, MethodIVF)),
		validation.Field(&r.DamID, validation.Required, is.UUID),
		validation.Field(&r.SireID, is.UUID),
		validation.Field(&r.OffspringID, is.UUID),
		validation.Field(&r.BreedingDate, validation.Required, validation.Date(dateLayout).Error("must be YYYY-MM-DD")),
		validation.Field(&r.ExpectedDueDate, validation.Date(dateLayout).Error("must be YYYY-MM-DD")),
		validation.Field(&r.SemenSource, validation.Length(0, 255)),
		validation.Field(&r.AITechnician, validation.Length(0, 255)),
		validation.Field(&r.BatchNumber, validation.Length(0, 100)),
		validation.Field(&r.DonorDam, validation.Length(0, 100)),
		validation.Field(&r.EmbryoID, validation.Length(0, 100)),
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	)
}

type EventResponse struct {
	ID              string    `json:"id"`
	BreederID       string    `json:"breeder_id"`
	BreedingMethod  Method    `json:"breeding_method"`
	DamID           string    `json:"dam_id"`
	SireID          *string   `json:"sire_id,omitempty"`
	OffspringID     *string   `json:"offspring_id,omitempty"`
	BreedingDate    string    `json:"breeding_date"`
	ExpectedDueDate *string   `json:"expected_due_date,omitempty"`
	SemenSource     string    `json:"semen_source,omitempty"`
	AITechnician    string    `json:"ai_technician,omitempty"`
	BatchNumber     string    `json:"batch_number,omitempty"`
	DonorDam        string    `json:"donor_dam,omitempty"`
	EmbryoID        string    `json:"embryo_id,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// createEventHandler godoc
// @Summary Registrar evento de cría
// @Description Dam es obligatoria (hembra del breeder). Sire (macho) y offspring son opcionales y también deben pertenecer al breeder.
// @Tags breeding
// @Accept json
// @Produce json
// @Param breederID path string true "ID del breeder"
// @Param payload body createEventRequest true "Datos del evento"
// @Success 201 {object} EventResponse
// @Failure 400 {string} string "invalid json / validación / invalid dam id / invalid sire id / invalid offspring id"
// @Failure 404 {string} string "breeder not found"
// @Router /api/breeders/{breederID}/breeding-events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		bd, _ := time.Parse(dateLayout, req.BreedingDate)
		var due *time.Time
		if req.ExpectedDueDate != "" {
			t, _ := time.Parse(dateLayout, req.ExpectedDueDate)
			due = &t
		}

		e, err := svc.Create(r.Context(), chi.URLParam(r, "breederID"), CreateInput{
			Method:          req.BreedingMethod,
			DamID:           req.DamID,
			SireID:          req.SireID,
			OffspringID:     req.OffspringID,
			BreedingDate:    bd,
			ExpectedDueDate: due,
			SemenSource:     req.SemenSource,
			AITechnician:    req.AITechnician,
			BatchNumber:     req.BatchNumber,
			DonorDam:        req.DonorDam,
			EmbryoID:        req.EmbryoID,
			Notes:           req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de cría de un breeder
// @Tags breeding
// @Produce json
// @Param breederID path string true "ID del breeder"
// @Param skip query int false "Offset (default 0)"
// @Param limit query int false "Máximo (1-500). Por defecto 100"
// @Success 200 {array} EventResponse
// @Failure 404 {string} string "breeder not found"
// @Router /api/breeders/{breederID}/breeding-events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := animals.ParseListFilter(r)
		items, err := svc.ListByBreeder(r.Context(), chi.URLParam(r, "breederID"), ListFilter{Skip: f.Skip, Limit: f.Limit})
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]EventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, ToResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "breederID"), chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(e))
	}
}

func ToResponse(e Event) EventResponse {
	var due *string
	if e.ExpectedDueDate != nil {
		s := e.ExpectedDueDate.Format(dateLayout)
		due = &s
	}
	return EventResponse{
		ID:              e.ID,
		BreederID:       e.BreederID,
		BreedingMethod:  e.Method,
		DamID:           e.DamID,
		SireID:          e.SireID,
		OffspringID:     e.OffspringID,
		BreedingDate:    e.BreedingDate.Format(dateLayout),
		ExpectedDueDate: due,
		SemenSource:     e.SemenSource,
		AITechnician:    e.AITechnician,
		BatchNumber:     e.BatchNumber,
		DonorDam:        e.DonorDam,
		EmbryoID:        e.EmbryoID,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBreederNotFound):
		http.Error(w, "breeder not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "breeding event not found", http.StatusNotFound)
	default:
		middleware.LoggerFrom(r.Context()).Error("breeding: request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
