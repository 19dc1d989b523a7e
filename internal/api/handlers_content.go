// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/contentforge/contentforge/internal/models"
)

// Handlers for the flat content collections: blogs, case studies, careers,
// services, social links, and testimonials. These share one shape: bare
// arrays on GET, wrapped responses on mutation.

func (rt *Router) GetAllBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := rt.store.ListBlogs()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	respondRaw(w, http.StatusOK, blogs)
}

func (rt *Router) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var b models.Blog
	if !decodeRequest(w, r, &b) {
		return
	}
	if !validateRequest(w, &b) {
		return
	}
	if err := rt.store.CreateBlog(&b); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &b)
}

func (rt *Router) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := rt.store.DeleteBlog(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}

func (rt *Router) GetAllCaseStudies(w http.ResponseWriter, r *http.Request) {
	studies, err := rt.store.ListCaseStudies()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if studies == nil {
		studies = []*models.CaseStudy{}
	}
	respondRaw(w, http.StatusOK, studies)
}

func (rt *Router) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var c models.CaseStudy
	if !decodeRequest(w, r, &c) {
		return
	}
	if !validateRequest(w, &c) {
		return
	}
	if err := rt.store.CreateCaseStudy(&c); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &c)
}

func (rt *Router) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	if err := rt.store.DeleteCaseStudy(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}

func (rt *Router) GetAllCareers(w http.ResponseWriter, r *http.Request) {
	careers, err := rt.store.ListCareers()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if careers == nil {
		careers = []*models.Career{}
	}
	respondRaw(w, http.StatusOK, careers)
}

func (rt *Router) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var c models.Career
	if !decodeRequest(w, r, &c) {
		return
	}
	if !validateRequest(w, &c) {
		return
	}
	if err := rt.store.CreateCareer(&c); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &c)
}

func (rt *Router) UpdateCareer(w http.ResponseWriter, r *http.Request) {
	var c models.Career
	if !decodeRequest(w, r, &c) {
		return
	}
	c.ID = chi.URLParam(r, "id")
	if !validateRequest(w, &c) {
		return
	}
	if err := rt.store.UpdateCareer(&c); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, &c)
}

func (rt *Router) DeleteCareer(w http.ResponseWriter, r *http.Request) {
	if err := rt.store.DeleteCareer(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}

func (rt *Router) GetServiceByTitle(w http.ResponseWriter, r *http.Request) {
	svc, err := rt.store.GetServiceByTitle(chi.URLParam(r, "title"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondRaw(w, http.StatusOK, svc)
}

func (rt *Router) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if !decodeRequest(w, r, &svc) {
		return
	}
	if !validateRequest(w, &svc) {
		return
	}
	if err := rt.store.CreateService(&svc); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &svc)
}

func (rt *Router) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := rt.store.DeleteService(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}

func (rt *Router) GetSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := rt.store.ListSocialLinks()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if links == nil {
		links = []*models.SocialLink{}
	}
	respondRaw(w, http.StatusOK, links)
}

func (rt *Router) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var l models.SocialLink
	if !decodeRequest(w, r, &l) {
		return
	}
	if !validateRequest(w, &l) {
		return
	}
	if err := rt.store.CreateSocialLink(&l); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &l)
}

func (rt *Router) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	var l models.SocialLink
	if !decodeRequest(w, r, &l) {
		return
	}
	l.ID = chi.URLParam(r, "id")
	if !validateRequest(w, &l) {
		return
	}
	if err := rt.store.UpdateSocialLink(&l); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, &l)
}

func (rt *Router) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	if err := rt.store.DeleteSocialLink(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}

func (rt *Router) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if !decodeRequest(w, r, &t) {
		return
	}
	if !validateRequest(w, &t) {
		return
	}
	if err := rt.store.CreateTestimonial(&t); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &t)
}

func (rt *Router) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if !decodeRequest(w, r, &t) {
		return
	}
	t.ID = chi.URLParam(r, "id")
	if !validateRequest(w, &t) {
		return
	}
	if err := rt.store.UpdateTestimonial(&t); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, &t)
}
