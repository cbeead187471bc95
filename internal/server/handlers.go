package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/playlistlab/playlist-builder/internal/builder"
	"github.com/playlistlab/playlist-builder/internal/xspf"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// buildPlaylist drives a fresh builder through the requested playlist.
// Builder usage errors surface as 400s with the original error text.
func (s *Server) buildPlaylist(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	if req.Title == "" && len(req.Tracks) == 0 {
		c.JSON(400, gin.H{"error": fmt.Sprintf("%v: a title or at least one track is required", ErrInvalidPlaylist)})
		return
	}

	b := builder.New()
	playlist, err := b.BuildPlaylist(func() error {
		if req.Title != "" {
			if err := b.SetTitle(req.Title); err != nil {
				return err
			}
		}
		for _, tr := range req.Tracks {
			err := b.BuildTrack(func() error {
				if tr.Title != "" {
					if err := b.SetTitle(tr.Title); err != nil {
						return err
					}
				}
				if tr.Creator != "" {
					if err := b.SetCreator(tr.Creator); err != nil {
						return err
					}
				}
				if tr.Location != "" {
					return b.SetLocation(tr.Location)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("%v: %v", ErrInvalidPlaylist, err)})
		return
	}

	id := s.register(playlist)
	c.JSON(201, PlaylistResponse{ID: id, Playlist: playlist})
}

func (s *Server) listPlaylists(c *gin.Context) {
	playlists := s.registered()
	c.JSON(200, ListResponse{Playlists: playlists, Total: len(playlists)})
}

func (s *Server) getPlaylist(c *gin.Context) {
	id := c.Param("id")

	playlist, exists := s.lookup(id)
	if !exists {
		c.JSON(404, gin.H{"error": fmt.Sprintf("%v: %s", ErrPlaylistNotFound, id)})
		return
	}

	c.JSON(200, PlaylistResponse{ID: id, Playlist: playlist})
}

func (s *Server) getPlaylistXSPF(c *gin.Context) {
	id := c.Param("id")

	playlist, exists := s.lookup(id)
	if !exists {
		c.JSON(404, gin.H{"error": fmt.Sprintf("%v: %s", ErrPlaylistNotFound, id)})
		return
	}

	data, err := xspf.Render(playlist)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.Data(200, "application/xspf+xml", data)
}

func (s *Server) exportPlaylist(c *gin.Context) {
	id := c.Param("id")

	playlist, exists := s.lookup(id)
	if !exists {
		c.JSON(404, gin.H{"error": fmt.Sprintf("%v: %s", ErrPlaylistNotFound, id)})
		return
	}

	path, err := s.exporter.Export(c.Request.Context(), playlist)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, ExportResponse{ID: id, Path: path})
}

func (s *Server) importPlaylist(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	playlist, err := s.importer.Import(c.Request.Context(), req.Source)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	id := s.register(playlist)
	c.JSON(201, PlaylistResponse{ID: id, Playlist: playlist})
}
