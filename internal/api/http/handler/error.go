package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sikemausa/todo-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// handleError maps core error kinds to HTTP statuses. NotFound and
// Unauthorized are written without a body so the two halves of each
// collapsed case stay indistinguishable.
func handleError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error()})
	case errors.Is(err, model.ErrEmailTaken):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: model.ErrEmailTaken.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: model.ErrInvalidCredentials.Error()})
	case errors.Is(err, model.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, model.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
