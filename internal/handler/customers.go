package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lucas-2000/obreron-admin/internal/form"
	"github.com/Lucas-2000/obreron-admin/internal/screen"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
)

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.Customers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, screen.FilterCustomers(customers, r.URL.Query()))
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	f := form.NewCustomerForm()
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	msg, err := h.store.SaveCustomer(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}

// UpdateCustomer rebuilds the edit form from the current entity before
// decoding the request over it, so fields the body omits keep their stored
// values instead of falling back to the create defaults.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customers, err := h.store.Customers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var f form.CustomerForm
	found := false
	for _, c := range customers {
		if c.ID == id {
			f = form.EditCustomerForm(c)
			found = true
			break
		}
	}
	if !found {
		respondError(w, &obreron.APIError{Status: http.StatusNotFound, Message: "Cliente não encontrado"})
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

	msg, err := h.store.SaveCustomer(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	msg, err := h.store.DeleteCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}
