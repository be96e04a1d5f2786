package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SHOEB091/code-IDE/internal/execution"
	"github.com/SHOEB091/code-IDE/types"
	"github.com/go-chi/chi/v5"
)

// ExecuteHandler proxies code execution through the dispatcher, so
// provider credentials never leave the server.
type ExecuteHandler struct {
	dispatcher *execution.Dispatcher
}

func NewExecuteHandler(dispatcher *execution.Dispatcher) *ExecuteHandler {
	return &ExecuteHandler{dispatcher: dispatcher}
}

// ExecuteRouter registers the execution route on the given router.
func ExecuteRouter(r chi.Router, dispatcher *execution.Dispatcher) {
	handler := NewExecuteHandler(dispatcher)
	r.Post("/execute", handler.Execute)
}

type ExecuteResponse struct {
	Success bool            `json:"success"`
	Msg     string          `json:"msg,omitempty"`
	Result  types.RunResult `json:"result"`
}

// Execute runs the submitted code and returns the normalized result.
// Provider failures come back as success:false with the failure text;
// the client surfaces them the same way it surfaces program errors.
func (h *ExecuteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req types.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := h.dispatcher.Run(r.Context(), req)
	if err != nil {
		if errors.Is(err, execution.ErrMissingParameter) {
			writeFailure(w, http.StatusBadRequest, "Missing required parameters (code or language)")
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{Success: false, Msg: "Failed to execute code: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ExecuteResponse{Success: true, Result: result})
}
