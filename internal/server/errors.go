package server

import "errors"

var (
	ErrInvalidPlaylist  = errors.New("invalid playlist")
	ErrPlaylistNotFound = errors.New("playlist not found")
)
