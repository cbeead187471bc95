package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/playlistlab/playlist-builder/config"
	"github.com/playlistlab/playlist-builder/internal/export"
	"github.com/playlistlab/playlist-builder/internal/importer"
	"github.com/playlistlab/playlist-builder/internal/storage"
)

func main() {
	source := flag.String("source", "", "Playlist source: CSV file, M3U file or web URL (required)")
	title := flag.String("title", "", "Override the playlist title (optional)")
	configPath := flag.String("config", "./config/config.yaml", "Path to configuration file")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *source == "" {
		log.Fatal("Missing required flag: -source")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	playlist, err := importer.NewCompositeImporter().Import(ctx, *source)
	if err != nil {
		log.Fatal(err)
	}

	if *title != "" {
		playlist.Title = *title
	}

	path, err := export.New(store, true).Export(ctx, playlist)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Exported %d tracks to %s\n", len(playlist.Tracks), path)
}
