package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/service"
)

// registerRequest is the body for POST /users/register.
// There is no role field: any role a caller smuggles into the JSON is
// ignored by decoding, and the service forces employee regardless.
type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FuelCardNo string `json:"fuel_card_no"`
}

// loginRequest is the body for POST /users/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the issued bearer token. The role claim is inside
// the token; clients decode it for role-gated routing.
type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// updateRoleRequest is the body for PUT /users/{email}.
type updateRoleRequest struct {
	Role domain.Role `json:"role"`
}

// Register handles POST /users/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}

	created, err := s.users.Register(r.Context(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		FuelCardNo: req.FuelCardNo,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Login handles POST /users/login.
// Issues a signed bearer token on success.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}

	token, _, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

// GetMe handles GET /users/me.
// Returns the authenticated caller's own account.
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
		return
	}

	user, err := s.users.GetByEmail(r.Context(), id.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users/all (admin only).
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// UpdateUserRole handles PUT /users/{email} (admin only).
func (s *Server) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}

	updated, err := s.users.UpdateRole(r.Context(), id, chi.URLParam(r, "email"), req.Role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /users/{email} (admin only).
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
		return
	}

	if err := s.users.Delete(r.Context(), id, chi.URLParam(r, "email")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
