package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lucas-2000/obreron-admin/internal/form"
	"github.com/Lucas-2000/obreron-admin/internal/screen"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
)

// ListOrders applies all three order filters from the URL: customer-name
// containment, "Ativos" and the exact delivery-status match.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.Orders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, screen.FilterOrders(orders, r.URL.Query()))
}

// CreateOrder validates the dynamic line rows and submits with the
// restaurant id from the restaurant binding.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	f := form.NewOrderForm()
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	restaurant, err := h.store.Restaurant(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	msg, err := h.store.CreateOrder(r.Context(), f, restaurant.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}

// UpdateOrderStatus rebuilds the status form from the existing order and
// swaps in the requested status. Any status may replace any other; the
// progression is not enforced.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	orders, err := h.store.Orders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var f form.OrderStatusForm
	found := false
	for _, o := range orders {
		if o.ID == id {
			f = form.EditOrderStatusForm(o)
			found = true
			break
		}
	}
	if !found {
		respondError(w, &obreron.APIError{Status: http.StatusNotFound, Message: "Pedido não encontrado"})
		return
	}

	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	msg, err := h.store.UpdateOrderStatus(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	msg, err := h.store.DeleteOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}
