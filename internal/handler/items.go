package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lucas-2000/obreron-admin/internal/form"
	"github.com/Lucas-2000/obreron-admin/internal/screen"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
)

// ListItems fetches the collection through the read binding and applies the
// URL-driven name filter client-side.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Items(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, screen.FilterItems(items, r.URL.Query()))
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	f := form.NewItemForm()
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	msg, err := h.store.SaveItem(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}

// UpdateItem rebuilds the edit form from the current entity before decoding
// the request over it, so fields the body omits keep their stored values
// instead of falling back to the create defaults.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	items, err := h.store.Items(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var f form.ItemForm
	found := false
	for _, it := range items {
		if it.ID == id {
			f = form.EditItemForm(it)
			found = true
			break
		}
	}
	if !found {
		respondError(w, &obreron.APIError{Status: http.StatusNotFound, Message: "Item não encontrado"})
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

	msg, err := h.store.SaveItem(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	msg, err := h.store.DeleteItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}
