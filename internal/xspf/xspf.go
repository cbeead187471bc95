// Package xspf renders finished playlists as XSPF 1.0 documents.
package xspf

import (
	"encoding/xml"
	"fmt"

	"github.com/playlistlab/playlist-builder/internal/domain"
)

const namespace = "http://xspf.org/ns/0/"

// document structure based on the XSPF playlist format
type document struct {
	XMLName   xml.Name  `xml:"playlist"`
	Version   string    `xml:"version,attr"`
	Namespace string    `xml:"xmlns,attr"`
	Title     string    `xml:"title,omitempty"`
	TrackList trackList `xml:"trackList"`
}

type trackList struct {
	Tracks []track `xml:"track"`
}

type track struct {
	Location string `xml:"location,omitempty"`
	Title    string `xml:"title,omitempty"`
	Creator  string `xml:"creator,omitempty"`
}

// Render serializes a finished playlist to an indented XSPF document.
// An empty track list renders as an empty <trackList/> element, which
// the format requires to be present.
func Render(p *domain.Playlist) ([]byte, error) {
	doc := document{
		Version:   "1",
		Namespace: namespace,
		Title:     p.Title,
	}

	for _, t := range p.Tracks {
		doc.TrackList.Tracks = append(doc.TrackList.Tracks, track{
			Location: t.Location,
			Title:    t.Title,
			Creator:  t.Creator,
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal playlist: %w", err)
	}

	return append([]byte(xml.Header), append(data, '\n')...), nil
}
