// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package remote

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/logging"
	"github.com/contentforge/contentforge/internal/metrics"
	"github.com/contentforge/contentforge/internal/models"
)

// CircuitBreakerClient wraps Client so a misbehaving content API stops
// receiving traffic instead of stalling every dashboard interaction.
//
// The breaker uses real time for its interval and timeout; tests exercise
// the wrapped client directly rather than racing the breaker clock.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

var (
	_ VideoAPI = (*CircuitBreakerClient)(nil)
	_ FAQAPI   = (*CircuitBreakerClient)(nil)
)

// NewCircuitBreakerClient creates a content API client protected by a
// circuit breaker. The breaker opens at a 60% failure rate with at least 10
// observed requests, resets counters every minute while closed, and waits
// two minutes before probing again.
func NewCircuitBreakerClient(cfg *config.RemoteConfig) *CircuitBreakerClient {
	const cbName = "content-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening content API circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("content API circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &CircuitBreakerClient{
		client: NewClient(cfg),
		cb:     cb,
		name:   cbName,
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

func (c *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	return c.cb.Execute(fn)
}

// GetAllVideos implements VideoAPI.
func (c *CircuitBreakerClient) GetAllVideos(ctx context.Context) ([]*models.Video, error) {
	result, err := c.execute(func() (interface{}, error) {
		return c.client.GetAllVideos(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*models.Video), nil
}

// ReorderVideos implements VideoAPI.
func (c *CircuitBreakerClient) ReorderVideos(ctx context.Context, videoIDs []string) error {
	_, err := c.execute(func() (interface{}, error) {
		return nil, c.client.ReorderVideos(ctx, videoIDs)
	})
	return err
}

// CreateVideo implements VideoAPI.
func (c *CircuitBreakerClient) CreateVideo(ctx context.Context, v *models.Video) (*models.Video, error) {
	result, err := c.execute(func() (interface{}, error) {
		return c.client.CreateVideo(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Video), nil
}

// UpdateVideo implements VideoAPI.
func (c *CircuitBreakerClient) UpdateVideo(ctx context.Context, v *models.Video) (*models.Video, error) {
	result, err := c.execute(func() (interface{}, error) {
		return c.client.UpdateVideo(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Video), nil
}

// DeleteVideo implements VideoAPI.
func (c *CircuitBreakerClient) DeleteVideo(ctx context.Context, id string) error {
	_, err := c.execute(func() (interface{}, error) {
		return nil, c.client.DeleteVideo(ctx, id)
	})
	return err
}

// GetFAQs implements FAQAPI.
func (c *CircuitBreakerClient) GetFAQs(ctx context.Context) ([]*models.FAQ, error) {
	result, err := c.execute(func() (interface{}, error) {
		return c.client.GetFAQs(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*models.FAQ), nil
}

// CreateFAQ implements FAQAPI.
func (c *CircuitBreakerClient) CreateFAQ(ctx context.Context, f *models.FAQ) (*models.FAQ, error) {
	result, err := c.execute(func() (interface{}, error) {
		return c.client.CreateFAQ(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.FAQ), nil
}

// UpdateFAQ implements FAQAPI.
func (c *CircuitBreakerClient) UpdateFAQ(ctx context.Context, f *models.FAQ) error {
	_, err := c.execute(func() (interface{}, error) {
		return nil, c.client.UpdateFAQ(ctx, f)
	})
	return err
}

// DeleteFAQ implements FAQAPI.
func (c *CircuitBreakerClient) DeleteFAQ(ctx context.Context, id string) error {
	_, err := c.execute(func() (interface{}, error) {
		return nil, c.client.DeleteFAQ(ctx, id)
	})
	return err
}
