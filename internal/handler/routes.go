// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vitrine/internal/middleware"
)

// Routes builds the API router: public content and contact endpoints,
// auth, and the admin surface behind session auth.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(h.cfg.AllowedOrigins()))
	r.Use(h.sessions.LoadAndSave)
	r.Use(middleware.LoadUser(h.sessions, h.db))

	contactLimiter := middleware.NewRateLimiter(1.0, 5)
	loginLimiter := middleware.NewRateLimiter(0.2, 5)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		// Public content
		r.Get("/about", h.ListAbout)
		r.Get("/team", h.ListTeam)
		r.Get("/projects", h.ListProjects)
		r.Get("/project-types", h.ListProjectTypes)
		r.Get("/settings", h.ListPublicSettings)

		// Contact form flow
		r.Group(func(r chi.Router) {
			r.Use(contactLimiter.Middleware())
			r.Get("/captcha", h.Captcha)
			r.Get("/captcha-data-url", h.CaptchaDataURL)
			r.Post("/verify-captcha", h.VerifyCaptcha)
			r.Post("/send-email", h.SendEmail)
		})

		r.Post("/translate", h.Translate)

		// Authentication
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware()).Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/status", h.AuthStatus)
			r.Get("/google", h.GoogleLogin)
			r.Get("/google/callback", h.GoogleCallback)
		})

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth())
			r.Use(middleware.RequireAdmin())

			r.Post("/about", h.CreateAbout)
			r.Put("/about/reorder", h.ReorderAbout)
			r.Put("/about/{id}", h.UpdateAbout)
			r.Delete("/about/{id}", h.DeleteAbout)

			r.Post("/team", h.CreateTeamMember)
			r.Put("/team/reorder", h.ReorderTeam)
			r.Put("/team/{id}", h.UpdateTeamMember)
			r.Delete("/team/{id}", h.DeleteTeamMember)

			r.Post("/projects", h.CreateProject)
			r.Put("/projects/reorder", h.ReorderProjects)
			r.Put("/projects/{id}", h.UpdateProject)
			r.Delete("/projects/{id}", h.DeleteProject)

			r.Post("/project-types", h.CreateProjectType)
			r.Put("/project-types/reorder", h.ReorderProjectTypes)
			r.Put("/project-types/{id}", h.UpdateProjectType)
			r.Delete("/project-types/{id}", h.DeleteProjectType)

			r.Get("/settings", h.ListAdminSettings)
			r.Put("/settings", h.UpdateSettings)

			r.Get("/users", h.ListUsers)
			r.Post("/users", h.CreateUser)
			r.Put("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeleteUser)

			r.Route("/upload", func(r chi.Router) {
				r.Post("/team-image", h.UploadTeamImage)
				r.Post("/about-image", h.UploadAboutImage)
				r.Post("/project-image", h.UploadProjectImage)
				r.Post("/hero-video", h.UploadHeroVideo)
			})
		})
	})

	// Uploaded files
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploads.Dir())))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(w, req)
	})

	return r
}
