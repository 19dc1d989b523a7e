// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/ordering"
)

func intp(v int) *int { return &v }

// fakeVideoAPI serves a fixed server-side collection and records reorder
// payloads. GetAllVideos returns fresh copies so manager mutations cannot
// leak into "server truth".
type fakeVideoAPI struct {
	server       []*models.Video
	reorderCalls [][]string
	failReorder  error
	failFetch    error
	fetches      int

	// onReorder, when set, runs inside ReorderVideos to simulate activity
	// arriving mid-flight.
	onReorder func()
}

func (f *fakeVideoAPI) GetAllVideos(context.Context) ([]*models.Video, error) {
	f.fetches++
	if f.failFetch != nil {
		return nil, f.failFetch
	}
	out := make([]*models.Video, len(f.server))
	for i, v := range f.server {
		c := *v
		if v.Position != nil {
			p := *v.Position
			c.Position = &p
		}
		out[i] = &c
	}
	return out, nil
}

func (f *fakeVideoAPI) ReorderVideos(_ context.Context, ids []string) error {
	f.reorderCalls = append(f.reorderCalls, ids)
	if f.onReorder != nil {
		f.onReorder()
	}
	return f.failReorder
}

func (f *fakeVideoAPI) CreateVideo(_ context.Context, v *models.Video) (*models.Video, error) {
	c := *v
	c.ID = "new"
	return &c, nil
}

func (f *fakeVideoAPI) UpdateVideo(_ context.Context, v *models.Video) (*models.Video, error) {
	return v, nil
}

func (f *fakeVideoAPI) DeleteVideo(context.Context, string) error { return nil }

func serverVideos() []*models.Video {
	return []*models.Video{
		{ID: "a", Title: "A", Position: intp(0)},
		{ID: "b", Title: "B", Position: intp(1)},
		{ID: "c", Title: "C", Position: intp(2)},
	}
}

func loadedVideoManager(t *testing.T, api *fakeVideoAPI) *VideoManager {
	t.Helper()
	m := NewVideoManager(api, ordering.NopNotifier{})
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m
}

func videoIDs(videos []*models.Video) []string {
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestVideoManager_DropPersistsBatchedOrder(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	if err := m.StartDrag("c"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := m.HandleDrop(context.Background(), 2, 0); err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}

	if len(api.reorderCalls) != 1 {
		t.Fatalf("reorder calls = %d, want 1", len(api.reorderCalls))
	}
	assertIDs(t, api.reorderCalls[0], []string{"c", "a", "b"})
	assertIDs(t, videoIDs(m.Videos()), []string{"c", "a", "b"})

	for i, v := range m.Videos() {
		if v.Position == nil || *v.Position != i {
			t.Errorf("video %s position = %v, want %d", v.ID, v.Position, i)
		}
	}
}

func TestVideoManager_PersistFailureRollsBack(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos(), failReorder: errors.New("boom")}
	m := loadedVideoManager(t, api)

	if err := m.StartDrag("c"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	err := m.HandleDrop(context.Background(), 2, 0)
	if err == nil {
		t.Fatal("expected persist error")
	}

	// Server truth restored, positions renormalized.
	assertIDs(t, videoIDs(m.Videos()), []string{"a", "b", "c"})
	if api.fetches != 2 {
		t.Errorf("fetches = %d, want 2 (load + rollback)", api.fetches)
	}
	if m.Busy() {
		t.Error("busy flag not released after failed cycle")
	}
}

func TestVideoManager_ResyncAlsoFails(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)
	api.failReorder = errors.New("boom")
	api.failFetch = errors.New("network down")

	if err := m.StartDrag("a"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	err := m.HandleDrop(context.Background(), 0, 2)
	if !errors.Is(err, ordering.ErrResyncFailed) {
		t.Fatalf("err = %v, want ErrResyncFailed", err)
	}

	// Optimistic state is kept until a later fetch succeeds.
	assertIDs(t, videoIDs(m.Videos()), []string{"b", "c", "a"})
}

func TestVideoManager_DropWithoutTargetIsCancel(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	if err := m.StartDrag("a"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := m.HandleDrop(context.Background(), 0, -1); err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if len(api.reorderCalls) != 0 {
		t.Errorf("cancel must not persist, got %d calls", len(api.reorderCalls))
	}
	assertIDs(t, videoIDs(m.Videos()), []string{"a", "b", "c"})
}

func TestVideoManager_DropOnOwnSlotIsNoOp(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	if err := m.StartDrag("b"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := m.HandleDrop(context.Background(), 1, 1); err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if len(api.reorderCalls) != 0 {
		t.Errorf("same-slot drop must not persist, got %d calls", len(api.reorderCalls))
	}
}

func TestVideoManager_DropWithoutStartFails(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	if err := m.HandleDrop(context.Background(), 0, 1); !errors.Is(err, ordering.ErrNoActiveDrag) {
		t.Fatalf("err = %v, want ErrNoActiveDrag", err)
	}
}

func TestVideoManager_RejectsDragWhilePersisting(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	var midFlight error
	api.onReorder = func() {
		midFlight = m.StartDrag("a")
	}

	if err := m.StartDrag("c"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := m.HandleDrop(context.Background(), 2, 0); err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if !errors.Is(midFlight, ErrReorderInProgress) {
		t.Fatalf("mid-flight StartDrag err = %v, want ErrReorderInProgress", midFlight)
	}
	if m.Busy() {
		t.Error("busy flag not released")
	}
}

func TestVideoManager_SecondStartDragRejected(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	if err := m.StartDrag("a"); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := m.StartDrag("b"); !errors.Is(err, ordering.ErrDragInProgress) {
		t.Fatalf("err = %v, want ErrDragInProgress", err)
	}
}

func TestVideoManager_NotLoaded(t *testing.T) {
	m := NewVideoManager(&fakeVideoAPI{}, ordering.NopNotifier{})
	if err := m.StartDrag("a"); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("err = %v, want ErrNotLoaded", err)
	}
}

func TestVideoManager_CreateAppendsAtEnd(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	created, err := m.Create(context.Background(), &models.Video{Title: "D"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Position == nil || *created.Position != 3 {
		t.Errorf("created position = %v, want 3", created.Position)
	}
	assertIDs(t, videoIDs(m.Videos()), []string{"a", "b", "c", "new"})
}

func TestVideoManager_DeleteRenumbersSurvivors(t *testing.T) {
	api := &fakeVideoAPI{server: serverVideos()}
	m := loadedVideoManager(t, api)

	if err := m.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	assertIDs(t, videoIDs(m.Videos()), []string{"b", "c"})
	for i, v := range m.Videos() {
		if v.Position == nil || *v.Position != i {
			t.Errorf("video %s position = %v, want %d", v.ID, v.Position, i)
		}
	}
}
