// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package ordering

import (
	"errors"
	"fmt"

	"github.com/contentforge/contentforge/internal/models"
)

// HomeFAQLimit is the hard cap on FAQs flagged for the home page.
const HomeFAQLimit = 4

// Partition errors.
var (
	// ErrHomeFAQLimit rejects a transition into a full home namespace. The
	// check runs before any mutation or network call.
	ErrHomeFAQLimit = fmt.Errorf("home FAQ limit reached (%d)", HomeFAQLimit)

	// ErrFAQNotFound is returned when the target FAQ is in neither namespace.
	ErrFAQNotFound = errors.New("faq not found")
)

// FAQPartition splits one flat FAQ pool into two disjoint, independently
// ordered namespaces: Home (IsHomeFaq, ordered by HomeOrder) and Page
// (ordered by Order). Both are one-based and normalized independently.
type FAQPartition struct {
	Home *Collection[models.HomeFAQ]
	Page *Collection[*models.FAQ]
}

// PartitionFAQs builds the partition from a raw server response. Stale order
// values in the inactive namespace are ignored by construction: each subset
// is normalized only on its own order field.
func PartitionFAQs(faqs []*models.FAQ) *FAQPartition {
	var home []models.HomeFAQ
	var page []*models.FAQ
	for _, f := range faqs {
		if f.IsHomeFaq {
			home = append(home, models.HomeFAQ{FAQ: f})
		} else {
			page = append(page, f)
		}
	}
	return &FAQPartition{
		Home: NewCollection(home, 1),
		Page: NewCollection(page, 1),
	}
}

// All returns every FAQ, home namespace first, in namespace order.
func (p *FAQPartition) All() []*models.FAQ {
	out := make([]*models.FAQ, 0, p.Home.Len()+p.Page.Len())
	for _, h := range p.Home.Items() {
		out = append(out, h.FAQ)
	}
	out = append(out, p.Page.Items()...)
	return out
}

// Get locates an FAQ in either namespace.
func (p *FAQPartition) Get(id string) (*models.FAQ, bool) {
	if h, ok := p.Home.Get(id); ok {
		return h.FAQ, true
	}
	return p.Page.Get(id)
}

// SetHomeFlag moves an FAQ between namespaces and returns every FAQ whose
// stored fields changed, in the order they must be persisted (the moved item
// first, then re-sequenced origin survivors). The caller persists each one
// individually; there is no batch endpoint for FAQs.
//
// Transition semantics:
//  1. The item enters the destination at max(existing)+1, or 1 when empty.
//  2. Its position in the origin namespace is cleared to nil so stale values
//     cannot leak into later normalizations.
//  3. Origin survivors are re-sequenced to stay contiguous.
//
// Setting the flag an FAQ already has is a no-op. Moving into a full home
// namespace fails with ErrHomeFAQLimit before anything is touched.
func (p *FAQPartition) SetHomeFlag(id string, home bool) ([]*models.FAQ, error) {
	faq, ok := p.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFAQNotFound, id)
	}
	if faq.IsHomeFaq == home {
		return nil, nil
	}

	if home {
		if p.Home.Len() >= HomeFAQLimit {
			return nil, ErrHomeFAQLimit
		}
		return p.transition(faq, true)
	}
	return p.transition(faq, false)
}

// transition performs the actual cross-namespace move. Cap and existence
// checks have already passed.
func (p *FAQPartition) transition(faq *models.FAQ, toHome bool) ([]*models.FAQ, error) {
	var survivors []*models.FAQ

	if toHome {
		before := pagePositions(p.Page)
		p.Page.Remove(faq.ID)
		faq.IsHomeFaq = true
		faq.Order = nil
		p.Home.Push(models.HomeFAQ{FAQ: faq})
		survivors = changedPage(p.Page, before)
	} else {
		before := homePositions(p.Home)
		p.Home.Remove(faq.ID)
		faq.IsHomeFaq = false
		faq.HomeOrder = nil
		p.Page.Push(faq)
		survivors = changedHome(p.Home, before)
	}

	touched := make([]*models.FAQ, 0, 1+len(survivors))
	touched = append(touched, faq)
	touched = append(touched, survivors...)
	return touched, nil
}

func pagePositions(c *Collection[*models.FAQ]) map[string]int {
	m := make(map[string]int, c.Len())
	for _, f := range c.Items() {
		if f.Order != nil {
			m[f.ID] = *f.Order
		}
	}
	return m
}

func homePositions(c *Collection[models.HomeFAQ]) map[string]int {
	m := make(map[string]int, c.Len())
	for _, h := range c.Items() {
		if h.HomeOrder != nil {
			m[h.ID] = *h.HomeOrder
		}
	}
	return m
}

func changedPage(c *Collection[*models.FAQ], before map[string]int) []*models.FAQ {
	var out []*models.FAQ
	for _, f := range c.Items() {
		if prev, ok := before[f.ID]; !ok || f.Order == nil || *f.Order != prev {
			out = append(out, f)
		}
	}
	return out
}

func changedHome(c *Collection[models.HomeFAQ], before map[string]int) []*models.FAQ {
	var out []*models.FAQ
	for _, h := range c.Items() {
		if prev, ok := before[h.ID]; !ok || h.HomeOrder == nil || *h.HomeOrder != prev {
			out = append(out, h.FAQ)
		}
	}
	return out
}
