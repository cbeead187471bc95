// Package builder implements a scoped construction DSL for playlists.
//
// A Builder holds at most one in-progress playlist and at most one
// in-progress track. BuildPlaylist and BuildTrack open a scope, run the
// caller's construction function and release the scope on every exit
// path, so a failed build never leaks state into the next one.
package builder

import (
	"github.com/playlistlab/playlist-builder/internal/domain"
)

// Builder tracks what is currently being assembled. Instances are
// independent of each other but a single instance is not safe for
// concurrent use; it enforces the one-scope-at-a-time protocol through
// the open-scope guards, not a mutex.
type Builder struct {
	playlist *domain.Playlist
	track    *domain.Track
}

// New creates an empty Builder with no open scopes.
func New() *Builder {
	return &Builder{}
}

// target identifies which object a field setter should mutate.
type target int

const (
	targetNone target = iota
	targetPlaylist
	targetTrack
)

// currentTarget resolves the setter target. An open track takes
// precedence over an open playlist.
func (b *Builder) currentTarget() target {
	switch {
	case b.track != nil:
		return targetTrack
	case b.playlist != nil:
		return targetPlaylist
	default:
		return targetNone
	}
}

// BuildPlaylist opens a playlist scope, runs build and returns the
// finished playlist. The scope is released before BuildPlaylist returns,
// whether build succeeds, returns an error or panics. On failure the
// partially built playlist is discarded and build's error is returned
// unmodified.
func (b *Builder) BuildPlaylist(build func() error) (*domain.Playlist, error) {
	if b.playlist != nil {
		return nil, ErrNestedPlaylist
	}

	b.playlist = &domain.Playlist{}
	defer func() { b.playlist = nil }()

	if err := build(); err != nil {
		return nil, err
	}

	return b.playlist, nil
}

// BuildTrack opens a track scope inside the current playlist, runs build
// and, only on success, appends the finished track to the playlist's
// track list. The scope is released on every exit path; a failed track
// is never appended.
func (b *Builder) BuildTrack(build func() error) error {
	if b.track != nil {
		return ErrNestedTrack
	}
	if b.playlist == nil {
		return ErrTrackOutsidePlaylist
	}

	b.track = &domain.Track{}
	defer func() { b.track = nil }()

	if err := build(); err != nil {
		return err
	}

	b.playlist.Tracks = append(b.playlist.Tracks, b.track)
	return nil
}

// SetTitle sets the title of the current track if one is open, otherwise
// of the current playlist. Repeated calls overwrite the previous value.
func (b *Builder) SetTitle(title string) error {
	switch b.currentTarget() {
	case targetTrack:
		b.track.Title = title
	case targetPlaylist:
		b.playlist.Title = title
	default:
		return ErrTitleOutsideContext
	}
	return nil
}

// SetCreator sets the creator of the current track. An open playlist
// alone is not a valid target.
func (b *Builder) SetCreator(creator string) error {
	if b.currentTarget() != targetTrack {
		return ErrCreatorOutsideTrack
	}
	b.track.Creator = creator
	return nil
}

// SetLocation sets the location (URI or path) of the current track.
func (b *Builder) SetLocation(location string) error {
	if b.currentTarget() != targetTrack {
		return ErrLocationOutsideTrack
	}
	b.track.Location = location
	return nil
}

// CurrentPlaylist returns the playlist of the open playlist scope, or
// nil if none is open. Exposed so callers and tests can verify scope
// cleanup.
func (b *Builder) CurrentPlaylist() *domain.Playlist {
	return b.playlist
}

// CurrentTrack returns the track of the open track scope, or nil if none
// is open.
func (b *Builder) CurrentTrack() *domain.Track {
	return b.track
}
