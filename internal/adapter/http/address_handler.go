package http

import (
	"net/http"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

type AddressHandler struct {
	service interfaces.AddressService
	logger  logger.Logger
}

func NewAddressHandler(service interfaces.AddressService, log logger.Logger) *AddressHandler {
	return &AddressHandler{service: service, logger: log}
}

func (h *AddressHandler) Zones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.Zones(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, zones)
}

func (h *AddressHandler) Streets(w http.ResponseWriter, r *http.Request) {
	streets, err := h.service.Streets(r.Context(), r.URL.Query().Get("zone"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, streets)
}

func (h *AddressHandler) Buildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.service.Buildings(r.Context(), r.URL.Query().Get("zone"), r.URL.Query().Get("street"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buildings)
}
