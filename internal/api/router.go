// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package api provides the content API's HTTP surface: Chi routing, request
// handlers per collection, and the response conventions the admin dashboard
// expects.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/contentforge/contentforge/internal/auth"
	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/middleware"
	"github.com/contentforge/contentforge/internal/store"
)

// Login attempts share one strict limit regardless of the configured
// API-wide rate.
const (
	loginRateLimit  = 5
	loginRateWindow = 5 * time.Minute
)

// Router wires the content store and auth components into HTTP routes.
type Router struct {
	store *store.Store
	jwt   *auth.JWTManager
	creds *auth.CredentialStore
	cfg   *config.Config
}

// NewRouter builds the router and its auth components from configuration.
func NewRouter(cfg *config.Config, s *store.Store) (*Router, error) {
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("init jwt manager: %w", err)
	}
	creds, err := auth.NewCredentialStore(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("init credential store: %w", err)
	}
	return &Router{store: s, jwt: jwtManager, creds: creds, cfg: cfg}, nil
}

// Setup configures all HTTP routes. Reads are public (the marketing site
// consumes them); every mutation requires a valid admin bearer token.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if !rt.cfg.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(rt.cfg.Security.RateLimitReqs, rt.cfg.Security.RateLimitWindow))
	}
	r.Use(middleware.PrometheusMetrics)

	requireAuth := auth.RequireAuth(rt.jwt)

	r.Get("/health", rt.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.With(httprate.LimitByIP(loginRateLimit, loginRateWindow)).Post("/login", rt.Login)
	})

	r.Route("/youtube", func(r chi.Router) {
		r.Get("/get-all-youtube-videos", rt.GetAllVideos)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Put("/youtube-videos/reorder", rt.ReorderVideos)
			r.Post("/create-videos", rt.CreateVideo)
			r.Put("/youtube-video/{id}", rt.UpdateVideo)
			r.Delete("/delete-youtube-video/{id}", rt.DeleteVideo)
		})
	})

	r.Route("/qna", func(r chi.Router) {
		r.Get("/get-faqs", rt.GetFAQs)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create-faq", rt.CreateFAQ)
			r.Put("/update-faq/{id}", rt.UpdateFAQ)
			r.Delete("/delete-faq/{id}", rt.DeleteFAQ)
		})
	})

	r.Route("/blog", func(r chi.Router) {
		r.Get("/get-all-blogs", rt.GetAllBlogs)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create-blog", rt.CreateBlog)
			r.Delete("/delete-blog/{id}", rt.DeleteBlog)
		})
	})

	r.Route("/casestudy", func(r chi.Router) {
		r.Get("/get-all-casestudy", rt.GetAllCaseStudies)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create-case-study", rt.CreateCaseStudy)
			r.Delete("/delete-casestudy/{id}", rt.DeleteCaseStudy)
		})
	})

	r.Route("/career", func(r chi.Router) {
		r.Get("/get-all-career", rt.GetAllCareers)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create-career", rt.CreateCareer)
			r.Put("/update-career/{id}", rt.UpdateCareer)
			r.Delete("/delete-career/{id}", rt.DeleteCareer)
		})
	})

	r.Route("/service", func(r chi.Router) {
		r.Get("/get-service-by-title/{title}", rt.GetServiceByTitle)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create-service", rt.CreateService)
			r.Delete("/delete-service/{id}", rt.DeleteService)
		})
	})

	r.Route("/social", func(r chi.Router) {
		r.Get("/get-social", rt.GetSocialLinks)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create-social", rt.CreateSocialLink)
			r.Put("/update-social/{id}", rt.UpdateSocialLink)
			r.Delete("/delete-social/{id}", rt.DeleteSocialLink)
		})
	})

	r.Route("/contents", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/testimonial", rt.CreateTestimonial)
		r.Put("/testimonial/{id}", rt.UpdateTestimonial)
	})

	r.Route("/organization", func(r chi.Router) {
		r.Get("/settings", rt.GetOrganization)
		r.With(requireAuth).Post("/settings", rt.SaveOrganization)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/total-counts", rt.TotalCounts)
		r.Get("/country-analytics", rt.CountryAnalytics)
	})

	return r
}

// Health reports process liveness.
func (rt *Router) Health(w http.ResponseWriter, r *http.Request) {
	respondRaw(w, http.StatusOK, map[string]string{"status": "ok"})
}
