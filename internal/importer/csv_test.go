package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestCSVImport(t *testing.T) {
	path := writeTestFile(t, "80s Music.csv", `title,creator,location
Take On Me,A-ha,https://example.com/music/01.mp3
Tainted Love,Soft Cell,https://example.com/music/02.mp3
Livin' on a Prayer,Bon Jovi,https://example.com/music/03.mp3
`)

	importer := NewCSVImporter()
	playlist, err := importer.Import(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "80s Music", playlist.Title)
	require.Len(t, playlist.Tracks, 3)
	assert.Equal(t, "Take On Me", playlist.Tracks[0].Title)
	assert.Equal(t, "A-ha", playlist.Tracks[0].Creator)
	assert.Equal(t, "https://example.com/music/01.mp3", playlist.Tracks[0].Location)
	assert.Equal(t, "Livin' on a Prayer", playlist.Tracks[2].Title)
}

func TestCSVImportAlternateHeaders(t *testing.T) {
	path := writeTestFile(t, "mix.csv", `artist,name,url
Daft Punk,Around the World,https://example.com/dp.mp3
`)

	importer := NewCSVImporter()
	playlist, err := importer.Import(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, playlist.Tracks, 1)
	assert.Equal(t, "Around the World", playlist.Tracks[0].Title)
	assert.Equal(t, "Daft Punk", playlist.Tracks[0].Creator)
	assert.Equal(t, "https://example.com/dp.mp3", playlist.Tracks[0].Location)
}

func TestCSVImportInvalidHeader(t *testing.T) {
	path := writeTestFile(t, "bad.csv", `foo,bar
a,b
`)

	importer := NewCSVImporter()
	playlist, err := importer.Import(context.Background(), path)

	assert.Error(t, err)
	assert.Nil(t, playlist)
}

func TestCSVImportEmpty(t *testing.T) {
	path := writeTestFile(t, "empty.csv", `title,creator,location
`)

	importer := NewCSVImporter()
	playlist, err := importer.Import(context.Background(), path)

	assert.Error(t, err)
	assert.Nil(t, playlist)
}

func TestCSVImportMissingFile(t *testing.T) {
	importer := NewCSVImporter()
	playlist, err := importer.Import(context.Background(), "does_not_exist.csv")

	assert.Error(t, err)
	assert.Nil(t, playlist)
}

func TestCSVImportCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	importer := NewCSVImporter()
	_, err := importer.Import(ctx, "ignored.csv")

	assert.ErrorIs(t, err, context.Canceled)
}
