package storage

import (
	"context"
	"fmt"

	"github.com/playlistlab/playlist-builder/config"
)

// Storage defines the interface for persisting rendered playlist
// documents.
type Storage interface {
	// Save writes a document under the given name and returns the path
	// or object it was stored at.
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Load reads a previously stored document.
	Load(ctx context.Context, name string) ([]byte, error)

	// List returns the names of all stored documents.
	List(ctx context.Context) ([]string, error)

	// Exists reports whether a document with the given name is stored.
	Exists(ctx context.Context, name string) bool

	// Close releases any resources held by the backend.
	Close() error
}

// New creates a storage backend based on the configuration.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "local":
		return NewLocalStorage(cfg.Storage.OutputDir)
	case "gcs":
		return NewGCSStorage(ctx, cfg.Storage.Bucket, cfg.Storage.ObjectPrefix, cfg.Storage.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}
