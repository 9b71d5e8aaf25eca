package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

type AuthHandler struct {
	auth    interfaces.AuthService
	reviews interfaces.ReviewService
	logger  logger.Logger
}

func NewAuthHandler(auth interfaces.AuthService, reviews interfaces.ReviewService, log logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, reviews: reviews, logger: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	var validationErrors []ValidationError
	if strings.TrimSpace(req.Email) == "" {
		validationErrors = append(validationErrors, ValidationError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		validationErrors = append(validationErrors, ValidationError{Field: "password", Message: "password is required"})
	}
	if len(validationErrors) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *AuthHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	fb, err := h.reviews.SubmitFeedback(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, fb)
}
