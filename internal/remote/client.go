// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package remote implements the HTTP client the admin managers use to talk
// to the content API: typed operations over the video and FAQ endpoints,
// automatic retry with exponential backoff on HTTP 429, and an optional
// circuit breaker wrapper for flaky deployments.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"

	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/models"
)

// maxErrorBodySize caps how much of an error response body is read back for
// diagnostics.
const maxErrorBodySize = 64 * 1024

// StatusError reports a non-2xx response from the content API.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// VideoAPI is the video collection surface consumed by the video manager.
// Implemented by Client and by CircuitBreakerClient.
type VideoAPI interface {
	GetAllVideos(ctx context.Context) ([]*models.Video, error)
	ReorderVideos(ctx context.Context, videoIDs []string) error
	CreateVideo(ctx context.Context, v *models.Video) (*models.Video, error)
	UpdateVideo(ctx context.Context, v *models.Video) (*models.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}

// FAQAPI is the FAQ collection surface consumed by the FAQ manager. There is
// no batch reorder endpoint; reordering is expressed as sequential UpdateFAQ
// calls.
type FAQAPI interface {
	GetFAQs(ctx context.Context) ([]*models.FAQ, error)
	CreateFAQ(ctx context.Context, f *models.FAQ) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, f *models.FAQ) error
	DeleteFAQ(ctx context.Context, id string) error
}

// Client talks to the content API over HTTP.
//
// Requests that hit HTTP 429 are retried with exponential backoff up to
// MaxRetries times. All other failures return immediately; resilience beyond
// that is the reconciler's job (full resync), not the transport's.
//
// Thread safety: safe for concurrent use; every call builds its own request.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	maxRetries     uint64
	retryBaseDelay time.Duration
}

// NewClient creates a content API client from configuration.
func NewClient(cfg *config.RemoteConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	delay := cfg.RetryBaseDelay
	if delay <= 0 {
		delay = time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		token:          cfg.Token,
		httpClient:     &http.Client{Timeout: timeout},
		maxRetries:     uint64(retries),
		retryBaseDelay: delay,
	}
}

// do issues one API call, retrying on HTTP 429, and decodes a 2xx response
// body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s %s: %w", method, path, err))
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			// Retryable: the server asked us to slow down.
			return fmt.Errorf("%s %s: rate limited", method, path)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			return backoff.Permanent(&StatusError{
				StatusCode: resp.StatusCode,
				Body:       strings.TrimSpace(string(errBody)),
			})
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s %s response: %w", method, path, err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryBaseDelay
	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx))
}

// GetAllVideos fetches the full video collection. Raw positions may be
// sparse, duplicated, or missing; normalization is the caller's concern.
func (c *Client) GetAllVideos(ctx context.Context) ([]*models.Video, error) {
	var videos []*models.Video
	if err := c.do(ctx, http.MethodGet, "/youtube/get-all-youtube-videos", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// ReorderVideos persists a new video order as one batched call. The server
// infers each position from the array index.
func (c *Client) ReorderVideos(ctx context.Context, videoIDs []string) error {
	req := models.ReorderVideosRequest{VideoIDs: videoIDs}
	return c.do(ctx, http.MethodPut, "/youtube/youtube-videos/reorder", req, nil)
}

// CreateVideo creates a new video entry.
func (c *Client) CreateVideo(ctx context.Context, v *models.Video) (*models.Video, error) {
	var created models.Video
	if err := c.do(ctx, http.MethodPost, "/youtube/create-videos", v, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVideo updates a video entry by ID.
func (c *Client) UpdateVideo(ctx context.Context, v *models.Video) (*models.Video, error) {
	var updated models.Video
	path := "/youtube/youtube-video/" + url.PathEscape(v.ID)
	if err := c.do(ctx, http.MethodPut, path, v, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVideo removes a video entry.
func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/youtube/delete-youtube-video/"+url.PathEscape(id), nil, nil)
}

// GetFAQs fetches the full FAQ pool across both namespaces.
func (c *Client) GetFAQs(ctx context.Context) ([]*models.FAQ, error) {
	var resp models.FAQListResponse
	if err := c.do(ctx, http.MethodGet, "/qna/get-faqs", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("faq list request unsuccessful: %s", resp.Message)
	}
	return resp.Data, nil
}

// CreateFAQ creates a new FAQ.
func (c *Client) CreateFAQ(ctx context.Context, f *models.FAQ) (*models.FAQ, error) {
	var created models.FAQ
	if err := c.do(ctx, http.MethodPost, "/qna/create-faq", f, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFAQ sends the full FAQ object, including its current order and
// homeOrder, to the per-item update endpoint.
func (c *Client) UpdateFAQ(ctx context.Context, f *models.FAQ) error {
	return c.do(ctx, http.MethodPut, "/qna/update-faq/"+url.PathEscape(f.ID), f, nil)
}

// DeleteFAQ removes an FAQ.
func (c *Client) DeleteFAQ(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/qna/delete-faq/"+url.PathEscape(id), nil, nil)
}
