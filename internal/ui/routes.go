package ui

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the dashboard router with the standard middleware
// stack. /metrics and /healthz are mounted by the caller so the binary
// decides what to expose.
func NewRouter(u *UI, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	u.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all UI routes on the given router.
func (u *UI) RegisterRoutes(r chi.Router) {
	// Public routes (no auth required).
	r.Get("/login", u.HandleLogin)
	r.Post("/login", u.HandleLoginPost)

	// Protected routes (auth required).
	r.Group(func(r chi.Router) {
		r.Use(u.AuthMiddleware)

		r.Get("/", u.HandleDashboard)
		r.Get("/logout", u.HandleLogout)

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", u.HandlePatientList)
			r.Post("/", u.HandlePatientCreate)
			r.Get("/new", u.HandlePatientNew)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", u.HandlePatientDetail)
				r.Post("/", u.HandlePatientUpdate)
				r.Get("/edit", u.HandlePatientEdit)
				r.Post("/delete", u.HandlePatientDelete)
				r.Post("/predict", u.HandlePatientPredict)
			})
		})

		r.Get("/predictions", u.HandlePredictions)
		r.Get("/analytics", u.HandleAnalytics)

		r.Get("/settings", u.HandleSettings)
		r.Post("/settings/language", u.HandleSettingsLanguage)

		// Admin routes (admin role required).
		r.Route("/admin", func(r chi.Router) {
			r.Use(u.AdminMiddleware)
			r.Get("/users", u.HandleAdminUsers)
			r.Post("/users", u.HandleAdminUserRegister)
			r.Post("/users/{id}/status", u.HandleAdminUserStatus)
		})
	})
}

// HandleHealthz is a liveness probe; it does not touch the remote service.
func (u *UI) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
