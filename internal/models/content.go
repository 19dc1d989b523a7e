// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package models defines the content entities served by the Contentforge API
// and consumed by the admin managers.
//
// Ordering fields follow the wire contract of the dashboard: YouTube video
// positions are zero-based, FAQ orders are one-based. A nil position means
// the server never assigned one; the normalizer treats it as "sort last".
package models

import "time"

// Video is a YouTube video entry displayed on the marketing site.
// Positions are zero-based and contiguous after normalization.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	YoutubeURL   string `json:"youtubeUrl" validate:"required,youtubeurl"`
	Position     *int   `json:"position,omitempty"`
}

// ItemID implements ordering.Item.
func (v *Video) ItemID() string { return v.ID }

// Pos implements ordering.Item.
func (v *Video) Pos() *int { return v.Position }

// SetPos implements ordering.Item.
func (v *Video) SetPos(p *int) { v.Position = p }

// FAQ is a question/answer pair. An FAQ belongs to exactly one ordering
// namespace at a time: the "page" namespace (Order, one-based) or, when
// IsHomeFaq is set, additionally to the "home" namespace (HomeOrder,
// one-based, capped at four entries).
type FAQ struct {
	ID        string `json:"id"`
	Question  string `json:"question" validate:"required,min=5"`
	Answer    string `json:"answer" validate:"required,wordcount=10 45"`
	IsHomeFaq bool   `json:"isHomeFaq"`
	Order     *int   `json:"order,omitempty"`
	HomeOrder *int   `json:"homeOrder,omitempty"`
}

// ItemID implements ordering.Item for the page namespace.
func (f *FAQ) ItemID() string { return f.ID }

// Pos implements ordering.Item for the page namespace.
func (f *FAQ) Pos() *int { return f.Order }

// SetPos implements ordering.Item for the page namespace.
func (f *FAQ) SetPos(p *int) { f.Order = p }

// HomeFAQ adapts an FAQ to the home namespace so the same normalizer and
// collection code can operate on HomeOrder instead of Order.
type HomeFAQ struct {
	*FAQ
}

// Pos implements ordering.Item for the home namespace.
func (h HomeFAQ) Pos() *int { return h.HomeOrder }

// SetPos implements ordering.Item for the home namespace.
func (h HomeFAQ) SetPos(p *int) { h.HomeOrder = p }

// Blog is a marketing blog post.
type Blog struct {
	ID      string    `json:"id"`
	Title   string    `json:"title" validate:"required,min=3"`
	Excerpt string    `json:"excerpt"`
	Content string    `json:"content" validate:"required"`
	Author  string    `json:"author" validate:"required"`
	Image   string    `json:"image"`
	Date    time.Time `json:"date"`
}

// CaseStudy is a client case study entry.
type CaseStudy struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=3"`
	SubTitle    string `json:"subTitle"`
	Author      string `json:"author"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

// Career is an open position listing.
type Career struct {
	ID               string `json:"id"`
	Position         string `json:"position" validate:"required"`
	PositionCount    int    `json:"positionCount" validate:"min=1"`
	Location         string `json:"location" validate:"required"`
	ShortDescription string `json:"shortdescription"`
	JobType          string `json:"jobType" validate:"required,oneof=full-time part-time contract internship"`
}

// Service is a service offering page entry, looked up by title slug.
type Service struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title" validate:"required,min=3"`
	ShortDescription   string   `json:"shortDescription"`
	Tagline            string   `json:"tagline"`
	TaglineDescription string   `json:"taglineDescription"`
	ServicePoints      []string `json:"servicePoints"`
	Image              string   `json:"image"`
}

// SocialLink is a social media profile link shown in the site footer.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Enabled  bool   `json:"enabled"`
}

// Testimonial is a client quote.
type Testimonial struct {
	ID             string `json:"id"`
	Text           string `json:"text" validate:"required"`
	Author         string `json:"author" validate:"required"`
	Position       string `json:"position"`
	TestimonialURL string `json:"TestimonialUrl"`
}

// Organization holds the site-wide organization settings singleton.
type Organization struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	MapURL   string `json:"mapUrl" validate:"omitempty,url"`
	Logo     string `json:"logo"`
	Favicon  string `json:"favicon"`
}

// CountryStat is one row of the country analytics chart.
type CountryStat struct {
	Country string `json:"country"`
	Visits  int64  `json:"visits"`
}

// TotalCounts aggregates per-collection totals for the dashboard landing page.
type TotalCounts struct {
	Blogs        int `json:"blogs"`
	CaseStudies  int `json:"caseStudies"`
	Careers      int `json:"careers"`
	FAQs         int `json:"faqs"`
	Services     int `json:"services"`
	SocialLinks  int `json:"socialLinks"`
	Testimonials int `json:"testimonials"`
	Videos       int `json:"videos"`
}
