package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/playlistlab/playlist-builder/internal/builder"
	"github.com/playlistlab/playlist-builder/internal/domain"
)

// M3UImporter reads extended M3U playlists. Each #EXTINF directive
// carries "Creator - Title" metadata for the location line that follows.
type M3UImporter struct {
}

func NewM3UImporter() *M3UImporter {
	return &M3UImporter{}
}

func (m *M3UImporter) Name() string {
	return SourceM3U
}

func (m *M3UImporter) Import(ctx context.Context, filePath string) (*domain.Playlist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open M3U file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "#EXTM3U") {
		return nil, fmt.Errorf("not an extended M3U file")
	}

	b := builder.New()
	playlist, err := b.BuildPlaylist(func() error {
		if err := b.SetTitle(playlistName(filePath)); err != nil {
			return err
		}

		var creator, title string
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "#EXTINF:") {
				creator, title = parseExtInf(line)
				continue
			}
			if strings.HasPrefix(line, "#") {
				continue
			}

			location := line
			err := b.BuildTrack(func() error {
				if title != "" {
					if err := b.SetTitle(title); err != nil {
						return err
					}
				}
				if creator != "" {
					if err := b.SetCreator(creator); err != nil {
						return err
					}
				}
				return b.SetLocation(location)
			})
			if err != nil {
				return err
			}
			creator, title = "", ""
		}
		return scanner.Err()
	})
	if err != nil {
		return nil, err
	}

	if len(playlist.Tracks) == 0 {
		return nil, fmt.Errorf("no tracks found in M3U file")
	}

	return playlist, nil
}

// parseExtInf extracts creator and title from an #EXTINF:duration,info
// directive. Info without a " - " separator is treated as a bare title.
func parseExtInf(line string) (creator, title string) {
	_, info, found := strings.Cut(line, ",")
	if !found {
		return "", ""
	}

	info = strings.TrimSpace(info)
	if c, t, ok := strings.Cut(info, " - "); ok {
		return strings.TrimSpace(c), strings.TrimSpace(t)
	}
	return "", info
}
