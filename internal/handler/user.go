package handler

import (
	"net/http"

	"github.com/dailypulse/newspaper-service/internal/models"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type roleRequest struct {
	Role string `json:"role"`
}

// ListUsers handles GET /users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// UpdateUserRole handles PUT /users/{id}
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.UpdateUserRole(r.Context(), mux.Vars(r)["id"], req.Role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteUser handles DELETE /users/{id}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// CheckAdmin handles GET /users/admin/{email}
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.svc.IsAdmin(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

// GetUser handles GET /user/{email}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.FindUser(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decode(r, &user); err != nil {
		h.writeError(w, r, err)
		return
	}
	// ids are assigned by the store
	user.ID = primitive.NilObjectID
	res, err := h.svc.RegisterUser(r.Context(), &user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
