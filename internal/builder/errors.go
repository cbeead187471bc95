package builder

import "errors"

var (
	ErrNestedPlaylist       = errors.New("a playlist is already being built")
	ErrNestedTrack          = errors.New("a track is already being built")
	ErrTrackOutsidePlaylist = errors.New("cannot build a track outside a playlist")
	ErrTitleOutsideContext  = errors.New("cannot set a title outside a playlist or track")
	ErrCreatorOutsideTrack  = errors.New("cannot set a creator outside a track")
	ErrLocationOutsideTrack = errors.New("cannot set a location outside a track")
)
