package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
)

type Handlers struct {
	Menu    *MenuHandler
	Cart    *CartHandler
	Orders  *OrderHandler
	Admin   *AdminHandler
	Address *AddressHandler
	Auth    *AuthHandler
}

// NewRouter wires every route onto a ServeMux and wraps the result in the
// recovery and logging middleware.
func NewRouter(h Handlers, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /feedback", h.Auth.SubmitFeedback)

	mux.HandleFunc("GET /menu", h.Menu.List)
	mux.HandleFunc("POST /admin/menu", h.Menu.Upsert)
	mux.HandleFunc("DELETE /admin/menu/{id}", h.Menu.Delete)
	mux.HandleFunc("POST /admin/menu/category", h.Menu.SetCategoryFlag)

	mux.HandleFunc("GET /cart", h.Cart.View)
	mux.HandleFunc("POST /cart/items", h.Cart.Add)
	mux.HandleFunc("PUT /cart/items/{id}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /cart/items/{id}", h.Cart.Remove)
	mux.HandleFunc("DELETE /cart", h.Cart.Clear)

	mux.HandleFunc("POST /orders", h.Orders.Checkout)
	mux.HandleFunc("GET /orders", h.Orders.List)
	mux.HandleFunc("GET /orders/{id}/receipt", h.Orders.Receipt)
	mux.HandleFunc("POST /orders/{id}/cancel", h.Orders.Cancel)
	mux.HandleFunc("POST /orders/{id}/review", h.Orders.Review)
	mux.HandleFunc("GET /reviews", h.Orders.ListReviews)

	mux.HandleFunc("GET /admin/orders", h.Admin.ListOrders)
	mux.HandleFunc("POST /admin/orders/{id}/advance", h.Admin.Advance)
	mux.HandleFunc("POST /admin/orders/{id}/reject", h.Admin.Reject)
	mux.HandleFunc("GET /admin/reports/summary", h.Admin.ReportSummary)

	mux.HandleFunc("GET /address/zones", h.Address.Zones)
	mux.HandleFunc("GET /address/streets", h.Address.Streets)
	mux.HandleFunc("GET /address/buildings", h.Address.Buildings)

	mux.Handle("GET /metrics", promhttp.Handler())

	return RecoveryMiddleware(log)(LoggingMiddleware(log)(mux))
}
