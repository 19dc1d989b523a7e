// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package ordering

import "errors"

// Session errors.
var (
	// ErrDragInProgress is returned by Start when a gesture is already active.
	ErrDragInProgress = errors.New("drag session already in progress")

	// ErrNoActiveDrag is returned by Drop when no gesture is active.
	ErrNoActiveDrag = errors.New("no active drag session")
)

// SessionState is the drag session lifecycle state.
type SessionState int

const (
	// StateIdle means no gesture is active. Initial and terminal state.
	StateIdle SessionState = iota

	// StateDragging means a gesture is active and an item ID is recorded.
	// Collision detection and target tracking happen in the UI toolkit; the
	// session only sees the final drop coordinates.
	StateDragging
)

// Session tracks the lifecycle of a single drag gesture. Exactly one session
// may be active at a time; the owning manager enforces that with its busy
// flag. A Session is not safe for concurrent use.
type Session struct {
	state    SessionState
	activeID string
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Active returns the ID of the item being dragged, if any.
func (s *Session) Active() (string, bool) {
	return s.activeID, s.state == StateDragging
}

// Start records the picked item and enters the Dragging state.
func (s *Session) Start(id string) error {
	if s.state == StateDragging {
		return ErrDragInProgress
	}
	s.state = StateDragging
	s.activeID = id
	return nil
}

// Drop ends the gesture and reports whether it should mutate the collection.
// A drop with no target (dst < 0) or onto its own origin is a cancel: the
// session returns to Idle with zero side effects and no persistence call.
func (s *Session) Drop(src, dst int) (bool, error) {
	if s.state != StateDragging {
		return false, ErrNoActiveDrag
	}
	s.state = StateIdle
	s.activeID = ""
	return dst >= 0 && src != dst, nil
}

// Cancel aborts the gesture unconditionally.
func (s *Session) Cancel() {
	s.state = StateIdle
	s.activeID = ""
}
