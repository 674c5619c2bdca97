package handler

import (
	"net/http"

	"github.com/Lucas-2000/obreron-admin/internal/form"
)

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.User(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var f form.PasswordForm
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	out, err := h.api.UpdatePassword(r.Context(), f.Request())
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, out.Message)
}

// DeleteAccount removes the account upstream and ends the session: token
// cleared, cache discarded.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	out, err := h.api.DeleteAccount(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.sessions.Clear(); err != nil {
		respondError(w, err)
		return
	}
	h.store.InvalidateAll()
	respondMessage(w, out.Message)
}
