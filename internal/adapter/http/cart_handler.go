package http

import (
	"encoding/json"
	"net/http"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

type CartHandler struct {
	service interfaces.CartService
	identity
	logger logger.Logger
}

func NewCartHandler(service interfaces.CartService, auth interfaces.AuthService, log logger.Logger) *CartHandler {
	return &CartHandler{service: service, identity: identity{auth: auth}, logger: log}
}

func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	view := h.service.View(r.Context(), user.Email)
	if view.Lines == nil {
		view.Lines = []interfaces.CartLineView{}
	}
	respondJSON(w, http.StatusOK, view)
}

type addToCartRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"qty"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.service.Add(r.Context(), user.Email, req.ItemID, req.Quantity); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.service.View(r.Context(), user.Email))
}

type updateQuantityRequest struct {
	Quantity int `json:"qty"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), user.Email, r.PathValue("id"), req.Quantity); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.service.View(r.Context(), user.Email))
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), user.Email, r.PathValue("id")); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), user.Email); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
