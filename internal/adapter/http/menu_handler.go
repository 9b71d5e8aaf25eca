package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

type MenuHandler struct {
	service interfaces.MenuService
	identity
	logger logger.Logger
}

func NewMenuHandler(service interfaces.MenuService, auth interfaces.AuthService, log logger.Logger) *MenuHandler {
	return &MenuHandler{service: service, identity: identity{auth: auth}, logger: log}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.service.List(r.Context())
	if items == nil {
		items = []domain.MenuItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateMenuItem(item); len(validationErrors) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	if err := h.service.Upsert(r.Context(), item); err != nil {
		h.logger.Error("menu_upsert_failed", "Failed to save menu item", "", map[string]interface{}{"id": item.ID}, err)
		respondError(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type categoryFlagRequest struct {
	Category string `json:"category"`
	Field    string `json:"field"`
	Value    bool   `json:"value"`
}

func (h *MenuHandler) SetCategoryFlag(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	var req categoryFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	err := h.service.SetCategoryFlag(r.Context(), domain.Category(req.Category), interfaces.CategoryFlag(req.Field), req.Value)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateMenuItem(item domain.MenuItem) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(item.ID) == "" {
		errs = append(errs, ValidationError{Field: "id", Message: "item id is required"})
	}
	if strings.TrimSpace(item.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "item name is required"})
	}
	if !item.Category.Valid() {
		errs = append(errs, ValidationError{Field: "category", Message: "category must be one of: Breakfast, Lunch, Evening Snacks, Dinner"})
	}
	if item.Price.IsNegative() {
		errs = append(errs, ValidationError{Field: "price", Message: "price must not be negative"})
	}
	if item.SpiceLevel < 0 || item.SpiceLevel > 5 {
		errs = append(errs, ValidationError{Field: "spicy", Message: "spice level must be between 0 and 5"})
	}
	if item.AvailableQuantity < 0 {
		errs = append(errs, ValidationError{Field: "available_quantity", Message: "available quantity must not be negative"})
	}
	return errs
}
