// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package ordering implements the ordered-collection core shared by the
// YouTube video and FAQ managers: position normalization, the ordered view
// state with move semantics, the drag session state machine, the
// reconciliation engine, and the home/page FAQ namespace partitioner.
//
// The package is deliberately free of HTTP concerns. Persistence and refetch
// are injected as functions so the same engine drives both the batched video
// reorder endpoint and the sequential per-item FAQ updates.
package ordering

import "sort"

// Item is the ordering view of a collection element. Position may be nil when
// the remote store never assigned one; such items sort after all positioned
// items and receive a position during normalization.
type Item interface {
	ItemID() string
	Pos() *int
	SetPos(*int)
}

// Normalize sorts items by their existing position ascending, treating a nil
// position as larger than any assigned one, then reassigns every position to
// index+base. Ties and nil positions keep their incoming relative order
// (stable sort), so raw server order is never shuffled arbitrarily.
//
// Normalizing an already-normalized sequence is a no-op. The returned slice
// is a new slice; item positions are updated in place.
func Normalize[T Item](items []T, base int) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Pos(), out[j].Pos()
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return *pi < *pj
	})

	for i, it := range out {
		p := i + base
		it.SetPos(&p)
	}
	return out
}
