// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/contentforge/contentforge/internal/ordering"
)

func TestRecordReorder(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantOutcome string
		wantResyncs float64
	}{
		{"success", nil, "success", 0},
		{"persist failed, resynced", errors.New("persist failed"), "failure", 1},
		{"persist and refetch failed", fmt.Errorf("sync: %w", ordering.ErrResyncFailed), "failure", 0},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Distinct label per case so counters start at zero.
			collection := fmt.Sprintf("test-collection-%d", i)
			RecordReorder(collection, tt.err)

			if got := testutil.ToFloat64(ReorderTotal.WithLabelValues(collection, tt.wantOutcome)); got != 1 {
				t.Errorf("reorder %s count = %v, want 1", tt.wantOutcome, got)
			}
			if got := testutil.ToFloat64(ResyncTotal.WithLabelValues(collection)); got != tt.wantResyncs {
				t.Errorf("resync count = %v, want %v", got, tt.wantResyncs)
			}
		})
	}
}
