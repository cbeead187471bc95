package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistlab/playlist-builder/internal/domain"
	"github.com/playlistlab/playlist-builder/internal/storage"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestExport(t *testing.T) {
	store := newTestStore(t)
	exporter := New(store, false)

	playlist := &domain.Playlist{
		Title: "80's Music",
		Tracks: []*domain.Track{
			{Title: "Take On Me", Creator: "A-ha", Location: "https://example.com/music/01.mp3"},
		},
	}

	path, err := exporter.Export(context.Background(), playlist)
	require.NoError(t, err)
	assert.Contains(t, path, "80's Music.xspf")

	data, err := store.Load(context.Background(), "80's Music.xspf")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<creator>A-ha</creator>")
}

func TestExportSanitizesName(t *testing.T) {
	store := newTestStore(t)
	exporter := New(store, false)

	playlist := &domain.Playlist{Title: "mix: a/b"}

	_, err := exporter.Export(context.Background(), playlist)
	require.NoError(t, err)
	assert.True(t, store.Exists(context.Background(), "mix- a-b.xspf"))
}

func TestExportUntitledPlaylist(t *testing.T) {
	store := newTestStore(t)
	exporter := New(store, false)

	_, err := exporter.Export(context.Background(), &domain.Playlist{})
	require.NoError(t, err)
	assert.True(t, store.Exists(context.Background(), "playlist.xspf"))
}

func TestExportInvalidLocation(t *testing.T) {
	store := newTestStore(t)
	exporter := New(store, false)

	locations := []string{
		"http://exa mple.com/\x7f", // control characters
		"http:///missing-host.mp3", // scheme but no host
		"://no-scheme.mp3",
	}

	for _, location := range locations {
		playlist := &domain.Playlist{
			Title: "bad",
			Tracks: []*domain.Track{
				{Title: "broken", Location: location},
			},
		}

		_, err := exporter.Export(context.Background(), playlist)
		assert.Error(t, err, "location %q should be rejected", location)
	}
	assert.False(t, store.Exists(context.Background(), "bad.xspf"))
}

func TestExportAcceptsPathAndFileLocations(t *testing.T) {
	store := newTestStore(t)
	exporter := New(store, false)

	playlist := &domain.Playlist{
		Title: "local files",
		Tracks: []*domain.Track{
			{Title: "relative", Location: "music/01.mp3"},
			{Title: "file uri", Location: "file:///home/music/02.mp3"},
		},
	}

	_, err := exporter.Export(context.Background(), playlist)
	require.NoError(t, err)
	assert.True(t, store.Exists(context.Background(), "local files.xspf"))
}
