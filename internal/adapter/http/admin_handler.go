package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

type AdminHandler struct {
	orders  interfaces.OrderService
	reports interfaces.ReportService
	identity
	logger logger.Logger
}

func NewAdminHandler(orders interfaces.OrderService, reports interfaces.ReportService, auth interfaces.AuthService, log logger.Logger) *AdminHandler {
	return &AdminHandler{orders: orders, reports: reports, identity: identity{auth: auth}, logger: log}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	orders := h.orders.ListAll(r.Context())
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) Advance(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	if err := h.orders.Advance(r.Context(), r.PathValue("id"), admin.Email); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := h.orders.Reject(r.Context(), r.PathValue("id"), req.Reason, admin.Email); err != nil {
		respondDomainError(w, err)
		return
	}

	ordersRejected.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, "Invalid from date, expected YYYY-MM-DD", http.StatusBadRequest, nil)
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, "Invalid to date, expected YYYY-MM-DD", http.StatusBadRequest, nil)
		return
	}

	respondJSON(w, http.StatusOK, h.reports.Summary(r.Context(), from, to))
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
