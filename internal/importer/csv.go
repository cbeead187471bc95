package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/playlistlab/playlist-builder/internal/builder"
	"github.com/playlistlab/playlist-builder/internal/domain"
)

// CSVImporter reads playlists from CSV files with a
// title,creator,location header row.
type CSVImporter struct {
}

func NewCSVImporter() *CSVImporter {
	return &CSVImporter{}
}

func (c *CSVImporter) Name() string {
	return SourceCSV
}

func (c *CSVImporter) Import(ctx context.Context, filePath string) (*domain.Playlist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ','
	reader.FieldsPerRecord = -1

	playlist, err := c.parsePlaylist(reader, playlistName(filePath))
	if err != nil {
		return nil, err
	}

	if len(playlist.Tracks) == 0 {
		return nil, fmt.Errorf("no tracks found in CSV file")
	}

	return playlist, nil
}

func (c *CSVImporter) parsePlaylist(reader *csv.Reader, name string) (*domain.Playlist, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	slog.Debug("Header row", "header", header)

	titleIdx, creatorIdx, locationIdx := columnIndexes(header)
	if titleIdx < 0 && locationIdx < 0 {
		return nil, fmt.Errorf("invalid CSV header: expected title or location column, got %v", header)
	}

	b := builder.New()
	return b.BuildPlaylist(func() error {
		if err := b.SetTitle(name); err != nil {
			return err
		}

		for {
			record, err := reader.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read CSV record: %w", err)
			}

			if err := b.BuildTrack(func() error {
				if v := field(record, titleIdx); v != "" {
					if err := b.SetTitle(v); err != nil {
						return err
					}
				}
				if v := field(record, creatorIdx); v != "" {
					if err := b.SetCreator(v); err != nil {
						return err
					}
				}
				if v := field(record, locationIdx); v != "" {
					return b.SetLocation(v)
				}
				return nil
			}); err != nil {
				return err
			}
		}
	})
}

func columnIndexes(header []string) (title, creator, location int) {
	title, creator, location = -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "title", "name":
			title = i
		case "creator", "artist":
			creator = i
		case "location", "url", "uri":
			location = i
		}
	}
	return title, creator, location
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// playlistName derives a playlist title from the source file name.
func playlistName(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
