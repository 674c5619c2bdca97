package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/Lucas-2000/obreron-admin/internal/query"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/session"
	"github.com/Lucas-2000/obreron-admin/internal/validate"
)

type Config struct {
	// AllowedOrigin is the browser origin of the admin UI.
	AllowedOrigin string
}

type Handler struct {
	router   *chi.Mux
	api      *obreron.Client
	store    *query.Store
	sessions session.Store
	guard    *session.Guard
}

func NewHandler(api *obreron.Client, store *query.Store, sessions session.Store, guard *session.Guard, cfg Config) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	h := &Handler{
		router:   router,
		api:      api,
		store:    store,
		sessions: sessions,
		guard:    guard,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		// Unauthenticated entry points
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/reset-password", h.RequestPasswordReset)
		r.Get("/reset-password", h.PasswordResetToken)
		r.Post("/reset-password/{token}", h.SubmitPasswordReset)

		// Everything else sits behind the session guard
		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Post("/logout", h.Logout)
			r.Get("/profile", h.Profile)
			r.Patch("/profile/password", h.ChangePassword)
			r.Delete("/profile", h.DeleteAccount)

			r.Get("/restaurant", h.GetRestaurant)
			r.Post("/restaurant", h.SaveRestaurant)

			r.Get("/items", h.ListItems)
			r.Post("/items", h.CreateItem)
			r.Patch("/items/{id}", h.UpdateItem)
			r.Delete("/items/{id}", h.DeleteItem)

			r.Get("/customers", h.ListCustomers)
			r.Post("/customers", h.CreateCustomer)
			r.Patch("/customers/{id}", h.UpdateCustomer)
			r.Delete("/customers/{id}", h.DeleteCustomer)

			r.Get("/orders", h.ListOrders)
			r.Post("/orders", h.CreateOrder)
			r.Patch("/orders/{id}/status", h.UpdateOrderStatus)
			r.Delete("/orders/{id}", h.DeleteOrder)

			r.Get("/dashboard", h.Dashboard)
		})
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// requireSession gates the authenticated screens on the guard's observed
// state. A 401 carrying the guard's notice is this API's shape of "redirect
// to the unauthenticated entry point"; the notice distinguishes a missing
// token from an expired session.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.guard.Expired() {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": h.guard.Notice()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondMessage renders a mutation confirmation.
func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// respondError maps the failure taxonomy: validation failures come back per
// field, structured upstream errors verbatim, anything else as the generic
// unknown-error message. No failure is fatal to the process.
func respondError(w http.ResponseWriter, err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		respondJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
		return
	}

	var apiErr *obreron.APIError
	if errors.As(err, &apiErr) {
		respondJSON(w, apiErr.Status, map[string]string{"error": apiErr.Message})
		return
	}

	respondJSON(w, http.StatusBadGateway, map[string]string{"error": obreron.UnknownErrorMessage})
}

func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return &obreron.APIError{Status: http.StatusBadRequest, Message: "Requisição inválida"}
	}
	return nil
}
