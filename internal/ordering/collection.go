// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package ordering

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Move when either index falls outside the
// collection. The collection is left untouched.
var ErrIndexOutOfRange = errors.New("index out of range")

// Collection is the in-memory ordered view of a remote collection. It is the
// single piece of shared state between the drag session controller and the
// reconciliation engine; callers serialize access through the manager's busy
// flag rather than through locking here.
//
// Invariant: after construction and after every successful Move, positions
// are exactly [base..base+len-1] with no gaps or duplicates.
type Collection[T Item] struct {
	base  int
	items []T
}

// NewCollection normalizes items (see Normalize) and wraps them in a
// Collection. base selects zero- or one-based positions.
func NewCollection[T Item](items []T, base int) *Collection[T] {
	return &Collection[T]{
		base:  base,
		items: Normalize(items, base),
	}
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Base returns the position base (0 or 1).
func (c *Collection[T]) Base() int { return c.base }

// Items returns a copy of the ordered item slice. The items themselves are
// shared, not cloned.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IDs returns the item IDs in current order.
func (c *Collection[T]) IDs() []string {
	ids := make([]string, len(c.items))
	for i, it := range c.items {
		ids[i] = it.ItemID()
	}
	return ids
}

// IndexOf returns the index of the item with the given ID, or -1.
func (c *Collection[T]) IndexOf(id string) int {
	for i, it := range c.items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}

// Get returns the item with the given ID.
func (c *Collection[T]) Get(id string) (T, bool) {
	var zero T
	i := c.IndexOf(id)
	if i < 0 {
		return zero, false
	}
	return c.items[i], true
}

// Move removes the item at from and reinserts it at to, shifting the items
// in between, then renumbers every position. Move(i, i) is a no-op. An out
// of range index returns ErrIndexOutOfRange without mutating anything.
func (c *Collection[T]) Move(from, to int) error {
	n := len(c.items)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d len=%d", ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d len=%d", ErrIndexOutOfRange, to, n)
	}
	if from == to {
		return nil
	}

	moved := c.items[from]
	c.items = append(c.items[:from], c.items[from+1:]...)
	c.items = append(c.items[:to], append([]T{moved}, c.items[to:]...)...)
	c.renumber()
	return nil
}

// Replace swaps in a freshly fetched item set, renormalizing it. Used by the
// reconciler to discard optimistic state after a failed persist.
func (c *Collection[T]) Replace(items []T) {
	c.items = Normalize(items, c.base)
}

// Push appends an item at the end of the order.
func (c *Collection[T]) Push(item T) {
	p := len(c.items) + c.base
	item.SetPos(&p)
	c.items = append(c.items, item)
}

// Remove deletes the item with the given ID and renumbers the survivors so
// positions stay contiguous. It reports whether the item was present.
func (c *Collection[T]) Remove(id string) (T, bool) {
	var zero T
	i := c.IndexOf(id)
	if i < 0 {
		return zero, false
	}
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.renumber()
	return removed, true
}

// renumber reassigns every position to its index plus base.
func (c *Collection[T]) renumber() {
	for i, it := range c.items {
		p := i + c.base
		it.SetPos(&p)
	}
}
