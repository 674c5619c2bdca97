package handler

import (
	"net/http"

	"github.com/Lucas-2000/obreron-admin/internal/form"
)

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.store.Restaurant(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, restaurant)
}

// SaveRestaurant creates the account's restaurant when none exists yet and
// updates it otherwise. One restaurant per account.
func (h *Handler) SaveRestaurant(w http.ResponseWriter, r *http.Request) {
	var f form.RestaurantForm
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}

	existing, err := h.store.Restaurant(r.Context())
	if err == nil && existing.ID != "" {
		f.Mode = form.ModeEdit
		f.ID = existing.ID
	} else {
		f.Mode = form.ModeCreate
	}

	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	msg, err := h.store.SaveRestaurant(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, msg)
}
