package domain

// Track represents a single entry in a playlist.
type Track struct {
	Title    string `json:"title,omitempty"`
	Creator  string `json:"creator,omitempty"`
	Location string `json:"location,omitempty"`
}

// Playlist represents an ordered collection of tracks.
type Playlist struct {
	Title  string   `json:"title,omitempty"`
	Tracks []*Track `json:"tracks"`
}
