// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package manager

import (
	"context"
	"fmt"

	"github.com/contentforge/contentforge/internal/metrics"
	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/ordering"
	"github.com/contentforge/contentforge/internal/remote"
)

// Namespace selects which FAQ ordering a drag operates on.
type Namespace string

const (
	// NamespaceHome is the capped home-page FAQ selection, ordered by
	// homeOrder.
	NamespaceHome Namespace = "home"

	// NamespacePage is the full FAQ page listing, ordered by order.
	NamespacePage Namespace = "page"
)

// FAQManager maintains the two disjoint FAQ namespaces. FAQ orders are
// one-based and there is no batch endpoint: every touched FAQ is persisted
// with its own sequential update call, and any failure in the sequence
// triggers a full refetch-and-repartition so partially applied orders never
// survive locally.
type FAQManager struct {
	api       remote.FAQAPI
	partition *ordering.FAQPartition
	session   ordering.Session
	busy      busyFlag
	notifier  ordering.Notifier
}

// NewFAQManager creates an FAQ manager. notifier may be nil.
func NewFAQManager(api remote.FAQAPI, notifier ordering.Notifier) *FAQManager {
	if notifier == nil {
		notifier = LogNotifier{Collection: "faqs"}
	}
	return &FAQManager{api: api, notifier: notifier}
}

// Load fetches the flat FAQ pool and partitions it into the home and page
// namespaces, each normalized independently on its own order field.
func (m *FAQManager) Load(ctx context.Context) error {
	faqs, err := m.api.GetFAQs(ctx)
	if err != nil {
		return fmt.Errorf("load faqs: %w", err)
	}
	m.partition = ordering.PartitionFAQs(faqs)
	return nil
}

// HomeFAQs returns the home namespace in current order.
func (m *FAQManager) HomeFAQs() []*models.FAQ {
	if m.partition == nil {
		return nil
	}
	items := m.partition.Home.Items()
	out := make([]*models.FAQ, len(items))
	for i, h := range items {
		out[i] = h.FAQ
	}
	return out
}

// PageFAQs returns the page namespace in current order.
func (m *FAQManager) PageFAQs() []*models.FAQ {
	if m.partition == nil {
		return nil
	}
	return m.partition.Page.Items()
}

// AllFAQs returns both namespaces, home first.
func (m *FAQManager) AllFAQs() []*models.FAQ {
	if m.partition == nil {
		return nil
	}
	return m.partition.All()
}

// Busy reports whether a persist cycle is in flight.
func (m *FAQManager) Busy() bool { return m.busy.Busy() }

// StartDrag begins a drag gesture on the given FAQ.
func (m *FAQManager) StartDrag(id string) error {
	if m.partition == nil {
		return ErrNotLoaded
	}
	if m.busy.Busy() {
		return ErrReorderInProgress
	}
	if _, ok := m.partition.Get(id); !ok {
		return fmt.Errorf("%w: %s", ordering.ErrFAQNotFound, id)
	}
	return m.session.Start(id)
}

// CancelDrag aborts the active gesture with no side effects.
func (m *FAQManager) CancelDrag() { m.session.Cancel() }

// HandleDrop completes the active gesture within one namespace. Cross
// namespace moves never happen by drag; they go through SetHomeFlag. The
// reorder is applied optimistically, then every FAQ whose stored order
// changed is persisted individually.
func (m *FAQManager) HandleDrop(ctx context.Context, ns Namespace, src, dst int) error {
	if m.partition == nil {
		return ErrNotLoaded
	}
	mutate, err := m.session.Drop(src, dst)
	if err != nil {
		return err
	}
	if !mutate {
		return nil
	}

	if !m.busy.tryAcquire() {
		return ErrReorderInProgress
	}
	defer m.busy.release()

	var touched []*models.FAQ
	switch ns {
	case NamespaceHome:
		before := faqOrders(m.HomeFAQs(), NamespaceHome)
		if err := m.partition.Home.Move(src, dst); err != nil {
			return err
		}
		touched = changedFAQs(m.HomeFAQs(), before, NamespaceHome)
	case NamespacePage:
		before := faqOrders(m.PageFAQs(), NamespacePage)
		if err := m.partition.Page.Move(src, dst); err != nil {
			return err
		}
		touched = changedFAQs(m.PageFAQs(), before, NamespacePage)
	default:
		return fmt.Errorf("unknown namespace %q", ns)
	}

	err = m.sync(ctx, touched, "FAQs reordered successfully", "Failed to reorder FAQs")
	metrics.RecordReorder("faqs", err)
	return err
}

// SetHomeFlag toggles an FAQ's membership in the home namespace. The cap
// check happens locally before any network call; a rejected toggle leaves
// every order untouched. On transition the moved FAQ and every re-sequenced
// origin survivor are persisted individually.
func (m *FAQManager) SetHomeFlag(ctx context.Context, id string, home bool) error {
	if m.partition == nil {
		return ErrNotLoaded
	}
	if !m.busy.tryAcquire() {
		return ErrReorderInProgress
	}
	defer m.busy.release()

	touched, err := m.partition.SetHomeFlag(id, home)
	if err != nil {
		return err
	}
	if len(touched) == 0 {
		return nil
	}

	err = m.sync(ctx, touched, "FAQ updated successfully", "Failed to update FAQ")
	metrics.RecordReorder("faqs", err)
	return err
}

// sync persists each touched FAQ sequentially, stopping at the first
// failure. A failure discards all optimistic state: the entire pool is
// refetched and repartitioned so local order matches whatever subset of
// updates the server actually applied. If the refetch fails too, the
// optimistic partition stays in place for the next attempt and the error
// matches ordering.ErrResyncFailed.
func (m *FAQManager) sync(ctx context.Context, touched []*models.FAQ, successMsg, errorMsg string) error {
	for _, f := range touched {
		if err := m.api.UpdateFAQ(ctx, f); err != nil {
			m.notifier.Error(errorMsg)

			fresh, ferr := m.api.GetFAQs(ctx)
			if ferr != nil {
				return fmt.Errorf("%w: persist faq %s: %w, fetch: %w", ordering.ErrResyncFailed, f.ID, err, ferr)
			}
			m.partition = ordering.PartitionFAQs(fresh)
			return fmt.Errorf("faq order persist failed, state resynced from server: %w", err)
		}
	}
	m.notifier.Success(successMsg)
	return nil
}

func faqOrders(faqs []*models.FAQ, ns Namespace) map[string]int {
	m := make(map[string]int, len(faqs))
	for _, f := range faqs {
		if p := nsOrder(f, ns); p != nil {
			m[f.ID] = *p
		}
	}
	return m
}

func changedFAQs(faqs []*models.FAQ, before map[string]int, ns Namespace) []*models.FAQ {
	var out []*models.FAQ
	for _, f := range faqs {
		p := nsOrder(f, ns)
		if prev, ok := before[f.ID]; !ok || p == nil || *p != prev {
			out = append(out, f)
		}
	}
	return out
}

func nsOrder(f *models.FAQ, ns Namespace) *int {
	if ns == NamespaceHome {
		return f.HomeOrder
	}
	return f.Order
}
