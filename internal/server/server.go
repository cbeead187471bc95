package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/playlistlab/playlist-builder/config"
	"github.com/playlistlab/playlist-builder/internal/domain"
	"github.com/playlistlab/playlist-builder/internal/export"
	"github.com/playlistlab/playlist-builder/internal/importer"
	"github.com/playlistlab/playlist-builder/internal/storage"
)

// Server handles HTTP requests for building and exporting playlists
type Server struct {
	cfg    *config.Config
	router *gin.Engine

	importer importer.Importer
	exporter *export.Exporter

	// Finished playlists by ID (in a real deployment this would be a
	// proper registry)
	mu        sync.RWMutex
	playlists map[string]*domain.Playlist
	order     []string
}

// New creates a new HTTP server instance
func New(cfg *config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}

	router := gin.Default()

	server := &Server{
		cfg:       cfg,
		router:    router,
		importer:  importer.NewCompositeImporter(),
		exporter:  export.New(store, false),
		playlists: make(map[string]*domain.Playlist),
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	{
		api.POST("/playlists", s.buildPlaylist)
		api.GET("/playlists", s.listPlaylists)
		api.GET("/playlists/:id", s.getPlaylist)
		api.GET("/playlists/:id/xspf", s.getPlaylistXSPF)
		api.POST("/playlists/:id/export", s.exportPlaylist)
		api.POST("/import", s.importPlaylist)
	}
}

// register stores a finished playlist and returns its ID
func (s *Server) register(playlist *domain.Playlist) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.playlists[id] = playlist
	s.order = append(s.order, id)
	return id
}

// lookup returns a registered playlist by ID
func (s *Server) lookup(id string) (*domain.Playlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist, exists := s.playlists[id]
	return playlist, exists
}

// registered returns all playlists in registration order
func (s *Server) registered() []PlaylistResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]PlaylistResponse, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, PlaylistResponse{ID: id, Playlist: s.playlists[id]})
	}
	return results
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port string) error {
	slog.Info("Starting playlist builder server", "port", port)
	return s.router.Run(":" + port)
}
