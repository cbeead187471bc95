// Package export renders finished playlists to XSPF and persists them
// through a storage backend.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/playlistlab/playlist-builder/internal/domain"
	"github.com/playlistlab/playlist-builder/internal/storage"
	"github.com/playlistlab/playlist-builder/internal/xspf"
)

// Exporter validates, renders and stores playlists.
type Exporter struct {
	store        storage.Storage
	showProgress bool
}

// New creates an Exporter writing through the given storage backend.
func New(store storage.Storage, showProgress bool) *Exporter {
	return &Exporter{
		store:        store,
		showProgress: showProgress,
	}
}

// Export validates every track location, renders the playlist as XSPF
// and saves the document. It returns the stored path.
func (e *Exporter) Export(ctx context.Context, playlist *domain.Playlist) (string, error) {
	bar := e.newProgressBar(len(playlist.Tracks))

	for i, track := range playlist.Tracks {
		if err := validateLocation(track); err != nil {
			return "", fmt.Errorf("track %d: %w", i+1, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	data, err := xspf.Render(playlist)
	if err != nil {
		return "", err
	}

	name := documentName(playlist)
	path, err := e.store.Save(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("failed to store playlist: %w", err)
	}

	slog.Info("Exported playlist", "name", name, "tracks", len(playlist.Tracks), "path", path)
	return path, nil
}

func (e *Exporter) newProgressBar(trackCount int) *progressbar.ProgressBar {
	if !e.showProgress || trackCount == 0 {
		return nil
	}

	return progressbar.NewOptions(
		trackCount,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Exporting tracks...[reset]"),
	)
}

// validateLocation checks that a location is either a well-formed
// absolute URI or a plain file path. Empty locations pass; the format
// keeps them optional.
func validateLocation(track *domain.Track) error {
	if track.Location == "" {
		return nil
	}

	// Plain paths carry no scheme and nothing to validate beyond
	// parseability
	if !strings.Contains(track.Location, "://") {
		if _, err := url.Parse(track.Location); err != nil {
			return fmt.Errorf("invalid location %q: %w", track.Location, err)
		}
		return nil
	}

	u, err := url.ParseRequestURI(track.Location)
	if err != nil {
		return fmt.Errorf("invalid location %q: %w", track.Location, err)
	}
	if u.Host == "" && u.Scheme != "file" {
		return fmt.Errorf("invalid location %q: missing host", track.Location)
	}
	return nil
}

// documentName derives the stored filename from the playlist title.
func documentName(playlist *domain.Playlist) string {
	title := playlist.Title
	if title == "" {
		title = "playlist"
	}
	replacer := strings.NewReplacer("/", "-", ":", "-", "\"", "'", "?", "", "\\", "-", "|", "-")
	return replacer.Replace(title) + ".xspf"
}
