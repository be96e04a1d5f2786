package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/SHOEB091/code-IDE/internal/services"
	"github.com/SHOEB091/code-IDE/internal/store"
	"github.com/go-chi/chi/v5"
)

// AuthHandler provides registration and login endpoints.
type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, users *services.UserService) {
	handler := NewAuthHandler(users)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"pwd"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Username   string `json:"username"`
	Occupation string `json:"occupation"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"pwd"`
}

type LoginResponse struct {
	statusResponse
	Token string `json:"token,omitempty"`
}

// Register creates a new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	_, err := h.users.Register(r.Context(), services.RegisterParams{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.Name,
		Phone:      strings.TrimSpace(req.Phone),
		Username:   req.Username,
		Occupation: strings.TrimSpace(req.Occupation),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			writeFailure(w, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, services.ErrDuplicateUsername):
			writeFailure(w, http.StatusBadRequest, "Username already taken")
		default:
			writeFailure(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	writeSuccess(w, "User created successfully")
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "Missing credentials")
		return
	}

	token, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeFailure(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidCredential):
			writeFailure(w, http.StatusUnauthorized, "Invalid password")
		default:
			writeFailure(w, http.StatusInternalServerError, "Failed to authenticate")
		}
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		statusResponse: statusResponse{Success: true, Msg: "User logged in successfully"},
		Token:          token,
	})
}
