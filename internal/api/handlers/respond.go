package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps application errors onto HTTP status codes.
// Criteria and validation failures are the caller's fault; anything
// else stays opaque.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeInvalidCriteria, apperrors.ErrorTypeValidation:
			respondWithJSON(w, http.StatusBadRequest, map[string]string{
				"error": appErr.Message,
				"code":  string(appErr.Type),
			})
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
