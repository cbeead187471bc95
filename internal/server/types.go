package server

import "github.com/playlistlab/playlist-builder/internal/domain"

// TrackRequest represents one track in a build request
type TrackRequest struct {
	Title    string `json:"title"`
	Creator  string `json:"creator"`
	Location string `json:"location"`
}

// BuildRequest represents the request body for building a playlist
type BuildRequest struct {
	Title  string         `json:"title"`
	Tracks []TrackRequest `json:"tracks"`
}

// ImportRequest represents the request body for importing a playlist
type ImportRequest struct {
	Source string `json:"source" binding:"required"`
}

// PlaylistResponse represents a registered playlist
type PlaylistResponse struct {
	ID       string           `json:"id"`
	Playlist *domain.Playlist `json:"playlist"`
}

// ListResponse represents the response for listing playlists
type ListResponse struct {
	Playlists []PlaylistResponse `json:"playlists"`
	Total     int                `json:"total"`
}

// ExportResponse represents the response for an export request
type ExportResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}
