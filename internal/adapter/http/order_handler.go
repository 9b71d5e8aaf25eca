package http

import (
	"encoding/json"
	"net/http"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

type OrderHandler struct {
	orders  interfaces.OrderService
	reviews interfaces.ReviewService
	identity
	logger logger.Logger
}

func NewOrderHandler(orders interfaces.OrderService, reviews interfaces.ReviewService, auth interfaces.AuthService, log logger.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, reviews: reviews, identity: identity{auth: auth}, logger: log}
}

type checkoutRequest struct {
	Delivery domain.DeliveryDetails `json:"delivery"`
	Payment  string                 `json:"payment"`
	Card     *domain.CardDetails    `json:"card,omitempty"`
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	order, err := h.orders.Checkout(r.Context(), interfaces.CheckoutCommand{
		CustomerEmail: user.Email,
		Delivery:      req.Delivery,
		Payment:       domain.PaymentMethod(req.Payment),
		Card:          req.Card,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	ordersCreated.Inc()
	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	orders := h.orders.ListByCustomer(r.Context(), user.Email)
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := h.orders.Cancel(r.Context(), r.PathValue("id"), user.Email); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	email := user.Email
	if user.Role == domain.RoleAdmin {
		email = ""
	}

	receipt, err := h.orders.Receipt(r.Context(), r.PathValue("id"), email)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt))
}

type reviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (h *OrderHandler) Review(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	rev, err := h.reviews.SubmitReview(r.Context(), user.Email, r.PathValue("id"), req.Rating, req.Text)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rev)
}

func (h *OrderHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews := h.reviews.ListReviews(r.Context())
	if reviews == nil {
		reviews = []domain.Review{}
	}
	respondJSON(w, http.StatusOK, reviews)
}
