// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package ordering

import (
	"testing"

	"github.com/contentforge/contentforge/internal/models"
)

func intp(i int) *int { return &i }

func video(id string, pos *int) *models.Video {
	return &models.Video{ID: id, Title: "video " + id, Position: pos}
}

func positionsOf(items []*models.Video) []int {
	out := make([]int, len(items))
	for i, v := range items {
		if v.Position == nil {
			out[i] = -999
			continue
		}
		out[i] = *v.Position
	}
	return out
}

func idsOf(items []*models.Video) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNormalize_AssignsContiguousPositions(t *testing.T) {
	tests := []struct {
		name    string
		input   []*models.Video
		base    int
		wantIDs []string
	}{
		{
			name:    "already sorted",
			input:   []*models.Video{video("a", intp(0)), video("b", intp(1)), video("c", intp(2))},
			base:    0,
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "sparse positions",
			input:   []*models.Video{video("a", intp(10)), video("b", intp(3)), video("c", intp(7))},
			base:    0,
			wantIDs: []string{"b", "c", "a"},
		},
		{
			name:    "missing positions sort last",
			input:   []*models.Video{video("a", nil), video("b", intp(0)), video("c", nil)},
			base:    0,
			wantIDs: []string{"b", "a", "c"},
		},
		{
			name:    "duplicate positions keep fetch order",
			input:   []*models.Video{video("a", intp(1)), video("b", intp(1)), video("c", intp(0))},
			base:    0,
			wantIDs: []string{"c", "a", "b"},
		},
		{
			name:    "one-based",
			input:   []*models.Video{video("a", nil), video("b", nil)},
			base:    1,
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "empty",
			input:   nil,
			base:    0,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, tt.base)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, v := range got {
				if v.ID != tt.wantIDs[i] {
					t.Errorf("index %d = %s, want %s (order %v)", i, v.ID, tt.wantIDs[i], idsOf(got))
				}
				if v.Position == nil || *v.Position != i+tt.base {
					t.Errorf("position[%d] = %v, want %d", i, v.Position, i+tt.base)
				}
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := []*models.Video{video("a", intp(5)), video("b", nil), video("c", intp(2))}

	once := Normalize(input, 0)
	onceIDs := idsOf(once)
	oncePositions := positionsOf(once)

	twice := Normalize(once, 0)

	if !equalStrings(idsOf(twice), onceIDs) {
		t.Errorf("second normalize reordered items: %v vs %v", idsOf(twice), onceIDs)
	}
	for i, p := range positionsOf(twice) {
		if p != oncePositions[i] {
			t.Errorf("position[%d] changed on second normalize: %d vs %d", i, p, oncePositions[i])
		}
	}
}

func TestNormalize_DoesNotMutateInputSlice(t *testing.T) {
	input := []*models.Video{video("a", intp(9)), video("b", intp(1))}
	got := Normalize(input, 0)

	if input[0].ID != "a" || input[1].ID != "b" {
		t.Error("input slice order was mutated")
	}
	if got[0].ID != "b" {
		t.Errorf("expected b first, got %s", got[0].ID)
	}
}
