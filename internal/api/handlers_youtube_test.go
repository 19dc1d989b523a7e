// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package api

import (
	"net/http"
	"testing"

	"github.com/contentforge/contentforge/internal/models"
)

func createVideo(t *testing.T, ts *testServer, title string) *models.Video {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/youtube/create-videos", models.Video{
		Title:      title,
		YoutubeURL: "https://www.youtube.com/watch?v=" + title,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create video status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data models.Video `json:"data"`
	}
	decodeResponse(t, rec, &resp)
	return &resp.Data
}

func listVideos(t *testing.T, ts *testServer) []*models.Video {
	t.Helper()
	rec := ts.doAnon(t, http.MethodGet, "/youtube/get-all-youtube-videos", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var videos []*models.Video
	decodeResponse(t, rec, &videos)
	return videos
}

func TestVideos_EmptyListIsArray(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.doAnon(t, http.MethodGet, "/youtube/get-all-youtube-videos", nil)
	if got := rec.Body.String(); got != "[]" {
		t.Errorf("empty list body = %q, want []", got)
	}
}

func TestVideos_CreateAssignsPosition(t *testing.T) {
	ts := newTestServer(t)

	createVideo(t, ts, "first")
	createVideo(t, ts, "second")

	videos := listVideos(t, ts)
	if len(videos) != 2 {
		t.Fatalf("len = %d", len(videos))
	}
	for i, v := range videos {
		if v.Position == nil || *v.Position != i {
			t.Errorf("video %d position = %v, want %d", i, v.Position, i)
		}
	}
}

func TestVideos_CreateRejectsBadURL(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/youtube/create-videos", models.Video{
		Title:      "bad",
		YoutubeURL: "https://vimeo.com/12345",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp models.APIResponse
	decodeResponse(t, rec, &resp)
	if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestVideos_Reorder(t *testing.T) {
	ts := newTestServer(t)

	a := createVideo(t, ts, "a")
	b := createVideo(t, ts, "b")
	c := createVideo(t, ts, "c")

	rec := ts.do(t, http.MethodPut, "/youtube/youtube-videos/reorder", models.ReorderVideosRequest{
		VideoIDs: []string{c.ID, a.ID, b.ID},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reorder status = %d, body = %s", rec.Code, rec.Body.String())
	}

	videos := listVideos(t, ts)
	want := []string{c.ID, a.ID, b.ID}
	for i, v := range videos {
		if v.ID != want[i] {
			t.Errorf("slot %d = %s, want %s", i, v.ID, want[i])
		}
		if v.Position == nil || *v.Position != i {
			t.Errorf("slot %d position = %v", i, v.Position)
		}
	}
}

func TestVideos_ReorderRejectedWithoutPartialApply(t *testing.T) {
	ts := newTestServer(t)

	a := createVideo(t, ts, "a")
	b := createVideo(t, ts, "b")

	rec := ts.do(t, http.MethodPut, "/youtube/youtube-videos/reorder", models.ReorderVideosRequest{
		VideoIDs: []string{b.ID, "unknown"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	videos := listVideos(t, ts)
	if videos[0].ID != a.ID || videos[1].ID != b.ID {
		t.Error("rejected reorder mutated stored order")
	}
}

func TestVideos_ReorderEmptyListRejected(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPut, "/youtube/youtube-videos/reorder", models.ReorderVideosRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestVideos_UpdatePreservesPosition(t *testing.T) {
	ts := newTestServer(t)

	createVideo(t, ts, "a")
	b := createVideo(t, ts, "b")

	rec := ts.do(t, http.MethodPut, "/youtube/youtube-video/"+b.ID, models.Video{
		Title:      "b-renamed",
		YoutubeURL: "https://www.youtube.com/watch?v=b2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}

	videos := listVideos(t, ts)
	if videos[1].Title != "b-renamed" {
		t.Errorf("title = %s", videos[1].Title)
	}
	if videos[1].Position == nil || *videos[1].Position != 1 {
		t.Errorf("position = %v, want preserved 1", videos[1].Position)
	}
}

func TestVideos_UpdateMissingIs404(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPut, "/youtube/youtube-video/ghost", models.Video{
		Title:      "ghost",
		YoutubeURL: "https://www.youtube.com/watch?v=g",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestVideos_DeleteRenumbers(t *testing.T) {
	ts := newTestServer(t)

	a := createVideo(t, ts, "a")
	createVideo(t, ts, "b")
	createVideo(t, ts, "c")

	rec := ts.do(t, http.MethodDelete, "/youtube/delete-youtube-video/"+a.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	videos := listVideos(t, ts)
	if len(videos) != 2 {
		t.Fatalf("len = %d", len(videos))
	}
	for i, v := range videos {
		if v.Position == nil || *v.Position != i {
			t.Errorf("slot %d position = %v, want %d", i, v.Position, i)
		}
	}
}
