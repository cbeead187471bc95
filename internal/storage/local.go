package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage implements the Storage interface for the local filesystem
type LocalStorage struct {
	outputDir string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(outputDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	return &LocalStorage{outputDir: outputDir}, nil
}

// Save writes a document into the output directory
func (s *LocalStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// Load reads a document from the output directory
func (s *LocalStorage) Load(ctx context.Context, name string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(filepath.Join(s.outputDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// List returns the names of all stored documents
func (s *LocalStorage) List(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	files, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var results []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		results = append(results, file.Name())
	}

	return results, nil
}

// Exists checks if a document exists
func (s *LocalStorage) Exists(ctx context.Context, name string) bool {
	_, err := os.Stat(filepath.Join(s.outputDir, name))
	return err == nil
}

// Close is a no-op for local storage
func (s *LocalStorage) Close() error {
	return nil
}
