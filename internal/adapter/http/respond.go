package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nadanruchi/storefront/internal/app/auth"
	"github.com/nadanruchi/storefront/internal/app/review"
	"github.com/nadanruchi/storefront/internal/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, message string, statusCode int, validationErrors []ValidationError) {
	respondJSON(w, statusCode, ErrorResponse{Error: message, Errors: validationErrors})
}

// respondDomainError maps the engines' sentinel errors onto status codes.
// Everything here is a handled, user-facing condition, never a 500.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrOrderNotFound):
		respondError(w, err.Error(), http.StatusNotFound, nil)
	case errors.Is(err, domain.ErrInvalidTransition):
		respondError(w, err.Error(), http.StatusConflict, nil)
	case errors.Is(err, domain.ErrCartLimitExceeded),
		errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidCardDetails),
		errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, review.ErrInvalidReview),
		errors.Is(err, review.ErrReviewNotAllowed),
		errors.Is(err, review.ErrInvalidFeedback):
		respondError(w, err.Error(), http.StatusBadRequest, nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, err.Error(), http.StatusUnauthorized, nil)
	default:
		respondError(w, err.Error(), http.StatusInternalServerError, nil)
	}
}
