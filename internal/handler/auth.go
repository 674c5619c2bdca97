package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lucas-2000/obreron-admin/internal/form"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
)

// Login validates the credentials locally, issues exactly one auth request
// and stores the returned token. Validation failure never reaches the
// network.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var f form.LoginForm
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	auth, err := h.api.Login(r.Context(), f.Username, f.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.sessions.SetToken(auth.Token); err != nil {
		respondError(w, err)
		return
	}
	h.guard.Reset()
	h.store.InvalidateAll()

	respondJSON(w, http.StatusOK, auth.User)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(); err != nil {
		respondError(w, err)
		return
	}
	h.store.InvalidateAll()
	respondMessage(w, "Logout efetuado")
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var f form.RegisterForm
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	out, err := h.api.Register(r.Context(), f.Request())
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, out.Message)
}

func (h *Handler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var f form.ResetPasswordRequestForm
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	out, err := h.api.RequestPasswordReset(r.Context(), f.Email)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, out.Message)
}

// PasswordResetToken checks whether a reset token is still usable before
// the form is shown.
func (h *Handler) PasswordResetToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, &obreron.APIError{Status: http.StatusBadRequest, Message: "Faça a requisição de um token válido"})
		return
	}

	info, err := h.api.PasswordResetToken(r.Context(), token)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// SubmitPasswordReset sets the new password for the user the reset token
// belongs to. The token is re-validated upstream right before the change.
func (h *Handler) SubmitPasswordReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var f form.PasswordForm
	if err := decodeBody(r, &f); err != nil {
		respondError(w, err)
		return
	}
	if errs := f.Validate(); !errs.Ok() {
		respondError(w, errs)
		return
	}

	info, err := h.api.PasswordResetToken(r.Context(), token)
	if err != nil {
		respondError(w, err)
		return
	}
	if !info.IsValid {
		respondError(w, &obreron.APIError{Status: http.StatusBadRequest, Message: "Faça a requisição de um token válido"})
		return
	}

	out, err := h.api.UpdatePasswordByID(r.Context(), info.UserID, f.Request())
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, out.Message)
}
