package breeders

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"time"

	"breed-registry/internal/domain/identifiers"
	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/breeders", func(br chi.Router) {
		br.Post("/register", registerHandler(svc))
		br.Post("/login", loginHandler(svc))
		br.Get("/{breederID}", getBreederHandler(svc))
	})
}

// registerRequest es el cuerpo para registrar un breeder.
type registerRequest struct {
	FullName     string      `json:"full_name"`
	NationalID   string      `json:"national_id"`
	BreederType  BreederType `json:"breeder_type" enums:"individual,company"`
	FarmName     string      `json:"farm_name"`
	FarmPrefix   string      `json:"farm_prefix"` // opcional
	FarmLocation string      `json:"farm_location"`
	County       string      `json:"county"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Password     string      `json:"password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.NationalID, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.BreederType, validation.In(TypeIndividual, TypeCompany)),
		validation.Field(&r.FarmName, validation.Length(0, 255)),
		validation.Field(&r.FarmLocation, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.County, validation.Length(0, 100)),
		validation.Field(&r.Phone, validation.Required, validation.Match(phoneRe).Error("must be a valid phone number")),
		validation.Field(&r.Email, validation.Required, is.EmailFormat, validation.Length(3, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
	)
}

type loginRequest struct {
	Identifier string `json:"identifier"` // email o national_id
	Password   string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type loginResponse struct {
	Success   bool   `json:"success"`
	BreederID string `json:"breeder_id"`
	Status    Status `json:"status"`
}

// BreederResponse es la vista pública de un breeder (sin password hash ni
// el admin que lo revisó).
type BreederResponse struct {
	ID              string      `json:"id"`
	FullName        string      `json:"full_name"`
	NationalID      string      `json:"national_id"`
	BreederType     BreederType `json:"breeder_type"`
	FarmName        string      `json:"farm_name,omitempty"`
	FarmPrefix      string      `json:"farm_prefix"`
	FarmLocation    string      `json:"farm_location"`
	County          string      `json:"county,omitempty"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	Status          Status      `json:"status"`
	ReviewedAt      *time.Time  `json:"reviewed_at,omitempty"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// registerHandler godoc
// @Summary Registrar breeder
// @Description Crea un breeder en estado `pending`. Si no se envía `farm_prefix`, se deriva del nombre (ej: "John Smith" -> "JSM") y ante colisión se agregan sufijos 1..9.
// @Tags breeders
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del breeder"
// @Success 201 {object} BreederResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 409 {string} string "email / national id / farm prefix ya registrados"
// @Failure 500 {string} string "internal error"
// @Router /api/breeders/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b, err := svc.Register(r.Context(), RegisterInput{
			FullName:     req.FullName,
			NationalID:   req.NationalID,
			BreederType:  req.BreederType,
			FarmName:     req.FarmName,
			FarmPrefix:   req.FarmPrefix,
			FarmLocation: req.FarmLocation,
			County:       req.County,
			Phone:        req.Phone,
			Email:        req.Email,
			Password:     req.Password,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(b))
	}
}

// loginHandler godoc
// @Summary Login de breeder
// @Description Verifica credenciales (email o national_id). No emite tokens; solo devuelve success + estado.
// @Tags breeders
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "invalid credentials"
// @Router /api/breeders/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b, err := svc.Authenticate(r.Context(), req.Identifier, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Success:   true,
			BreederID: b.ID,
			Status:    b.Status,
		})
	}
}

func getBreederHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breederID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(b))
	}
}

func ToResponse(b Breeder) BreederResponse {
	return BreederResponse{
		ID:              b.ID,
		FullName:        b.FullName,
		NationalID:      b.NationalID,
		BreederType:     b.BreederType,
		FarmName:        b.FarmName,
		FarmPrefix:      b.FarmPrefix,
		FarmLocation:    b.FarmLocation,
		County:          b.County,
		Phone:           b.Phone,
		Email:           b.Email,
		Status:          b.Status,
		ReviewedAt:      b.ReviewedAt,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "breeder not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict), errors.Is(err, identifiers.ErrPrefixExhausted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		middleware.LoggerFrom(r.Context()).Error("breeders: request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
