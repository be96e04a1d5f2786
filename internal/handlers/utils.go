package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/SHOEB091/code-IDE/internal/services"
	"github.com/SHOEB091/code-IDE/types"
)

// statusResponse is the uniform {success, msg} envelope every endpoint
// replies with, possibly extended with operation-specific fields.
type statusResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, statusResponse{Success: false, Msg: msg})
}

func writeSuccess(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, statusResponse{Success: true, Msg: msg})
}

// resolveUser maps a body-carried bearer token to its user. On failure
// it writes a 401 envelope and reports false; verification failures
// and tokens for vanished accounts are treated the same way.
func resolveUser(w http.ResponseWriter, r *http.Request, users *services.UserService, token string) (types.User, bool) {
	if token == "" {
		writeFailure(w, http.StatusUnauthorized, "Missing token")
		return types.User{}, false
	}
	user, err := users.Resolve(r.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			writeFailure(w, http.StatusUnauthorized, "Invalid token")
			return types.User{}, false
		}
		writeFailure(w, http.StatusInternalServerError, "Failed to resolve user")
		return types.User{}, false
	}
	return user, true
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
