// Package importer turns external playlist sources into finished
// playlists by driving the builder DSL.
package importer

import (
	"context"
	"fmt"

	"github.com/playlistlab/playlist-builder/internal/domain"
)

// Importer imports a playlist from a given source.
type Importer interface {
	Import(ctx context.Context, source string) (*domain.Playlist, error)
	Name() string
}

const (
	SourceCSV     = "csv"
	SourceM3U     = "m3u"
	SourceWebpage = "webpage"
)

// CompositeImporter tries multiple importers in sequence until one succeeds
type CompositeImporter struct {
	importers []Importer
}

func (c *CompositeImporter) Name() string {
	return "composite"
}

// NewCompositeImporter creates an importer that tries the webpage, M3U
// and CSV importers in that order.
func NewCompositeImporter() *CompositeImporter {
	return &CompositeImporter{
		importers: []Importer{
			NewWebpageImporter(),
			NewM3UImporter(),
			NewCSVImporter(),
		},
	}
}

func (c *CompositeImporter) Import(ctx context.Context, source string) (*domain.Playlist, error) {
	var errors []error
	for _, importer := range c.importers {
		playlist, err := importer.Import(ctx, source)
		if err == nil {
			return playlist, nil
		}
		errors = append(errors, fmt.Errorf("%s: %v", importer.Name(), err))
	}
	return nil, fmt.Errorf("all importers failed: %v", errors)
}
