package admins

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"breed-registry/internal/domain/breeders"
	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/admins", func(ar chi.Router) {
		ar.Post("/create", createAdminHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Get("/applications", applicationsHandler(svc))
		ar.Post("/approve/{breederID}", approveHandler(svc))
		ar.Post("/reject/{breederID}", rejectHandler(svc))
		ar.Delete("/breeders/{breederID}", deleteBreederHandler(svc))
	})
}

type createAdminRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r createAdminRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
	)
}

type createAdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type loginResponse struct {
	Success bool   `json:"success"`
	AdminID string `json:"admin_id"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// applicationResponse agrega a la vista pública el admin que revisó.
type applicationResponse struct {
	breeders.BreederResponse
	ReviewedBy *string `json:"reviewed_by,omitempty"`
}

type reviewResponse struct {
	Message   string `json:"message"`
	BreederID string `json:"breeder_id"`
}

// createAdminHandler godoc
// @Summary Crear admin
// @Description Sin admins cargados el endpoint queda abierto (bootstrap). Después requiere un admin autenticado.
// @Tags admins
// @Accept json
// @Produce json
// @Param payload body createAdminRequest true "Datos del admin"
// @Success 201 {object} createAdminResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "email already registered"
// @Security BasicAuth
// @Router /api/admins/create [post]
func createAdminHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		actorID := ""
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			actorID = claims.UserID
		}

		a, err := svc.Create(r.Context(), actorID, CreateInput{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, createAdminResponse{ID: a.ID, Email: a.Email})
	}
}

// loginHandler godoc
// @Summary Login de admin
// @Tags admins
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "invalid credentials"
// @Router /api/admins/login [post]
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

		a, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: true, AdminID: a.ID})
	}
}

// applicationsHandler godoc
// @Summary Listar solicitudes de breeders
// @Tags admins
// @Produce json
// @Param status query string false "pending | approved | rejected (default pending)"
// @Success 200 {array} applicationResponse
// @Failure 401 {string} string "unauthorized"
// @Security BasicAuth
// @Router /api/admins/applications [get]
func applicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r, svc); !ok {
			return
		}

		items, err := svc.Applications(r.Context(), breeders.Status(r.URL.Query().Get("status")))
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, b := range items {
			out = append(out, applicationResponse{BreederResponse: breeders.ToResponse(b), ReviewedBy: b.ReviewedBy})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// approveHandler godoc
// @Summary Aprobar breeder
// @Tags admins
// @Produce json
// @Param breederID path string true "ID del breeder"
// @Success 200 {object} reviewResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "breeder not found"
// @Security BasicAuth
// @Router /api/admins/approve/{breederID} [post]
func approveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireAdmin(w, r, svc)
		if !ok {
			return
		}

		b, err := svc.Approve(r.Context(), actor, chi.URLParam(r, "breederID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reviewResponse{Message: "Breeder approved", BreederID: b.ID})
	}
}

// rejectHandler godoc
// @Summary Rechazar breeder
// @Tags admins
// @Accept json
// @Produce json
// @Param breederID path string true "ID del breeder"
// @Param payload body rejectRequest false "Motivo (opcional)"
// @Success 200 {object} reviewResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "breeder not found"
// @Security BasicAuth
// @Router /api/admins/reject/{breederID} [post]
func rejectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireAdmin(w, r, svc)
		if !ok {
			return
		}

		// Body opcional.
		var req rejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Reject(r.Context(), actor, chi.URLParam(r, "breederID"), req.Reason)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reviewResponse{Message: "Breeder rejected", BreederID: b.ID})
	}
}

// deleteBreederHandler godoc
// @Summary Eliminar breeder
// @Description Falla con 409 si el breeder todavía tiene animales registrados.
// @Tags admins
// @Param breederID path string true "ID del breeder"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "breeder not found"
// @Failure 409 {string} string "breeder has registered animals"
// @Security BasicAuth
// @Router /api/admins/breeders/{breederID} [delete]
func deleteBreederHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r, svc); !ok {
			return
		}

		if err := svc.DeleteBreeder(r.Context(), chi.URLParam(r, "breederID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func requireAdmin(w http.ResponseWriter, r *http.Request, svc *Service) (Admin, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Admin{}, false
	}
	a, err := svc.Resolve(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return Admin{}, false
	}
	return a, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, breeders.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, breeders.ErrNotFound):
		http.Error(w, "breeder not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict), errors.Is(err, breeders.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		middleware.LoggerFrom(r.Context()).Error("admins: request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
