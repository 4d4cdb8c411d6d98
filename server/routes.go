// Package server - REST-Server fuer die Bildgenerierung
//
// Dieses Modul enthaelt:
// - Server-Struktur und Routen-Registrierung
// - GenerateHandler: NDJSON-Stream aus Fortschritt und finalem Bild
// - streamResponse: gemeinsames Streaming ueber einen Channel
package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/latentscape/diffuse/api"
	"github.com/latentscape/diffuse/envconfig"
	"github.com/latentscape/diffuse/imaging"
	"github.com/latentscape/diffuse/logutil"
	"github.com/latentscape/diffuse/pipeline"
	"github.com/latentscape/diffuse/version"
)

// Server serves the generate API over a single pipeline.
type Server struct {
	pipe *pipeline.Pipeline
}

// NewServer returns a server over the given pipeline.
func NewServer(p *pipeline.Pipeline) *Server {
	return &Server{pipe: p}
}

// GenerateHandler handles POST /api/generate. It streams NDJSON progress
// events while sampling and a final event carrying the base64 PNG.
func (s *Server) GenerateHandler(c *gin.Context) {
	var req api.GenerateRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case errors.Is(err, io.EOF):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Prompt == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	cfg := pipeline.DefaultConfig(req.Prompt)
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	if req.Steps > 0 {
		cfg.Steps = req.Steps
	}
	if req.GuidanceScale != nil {
		cfg.GuidanceScale = *req.GuidanceScale
	}
	cfg.Seed = req.Seed
	if cfg.Seed == 0 {
		cfg.Seed = envconfig.Seed()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ch := make(chan any)
	go func() {
		defer close(ch)

		cfg.Progress = func(completed, total int) {
			ch <- api.GenerateResponse{Completed: completed, Total: total}
		}

		start := time.Now()
		imgs, err := s.pipe.Generate(c.Request.Context(), cfg)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, pipeline.ErrPromptTooLong) {
				status = http.StatusBadRequest
			}
			ch <- gin.H{"error": err.Error(), "status": status}
			return
		}

		var buf bytes.Buffer
		if err := imaging.EncodePNG(&buf, imgs[0]); err != nil {
			ch <- gin.H{"error": err.Error()}
			return
		}

		slog.Info("generation complete", "steps", cfg.Steps, "seed", cfg.Seed,
			"duration", time.Since(start))
		ch <- api.GenerateResponse{
			Done:  true,
			Image: base64.StdEncoding.EncodeToString(buf.Bytes()),
			Seed:  cfg.Seed,
		}
	}()

	streamResponse(c, ch)
}

// VersionHandler handles GET /api/version.
func (s *Server) VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": version.Version})
}

// GenerateRoutes builds the gin engine with CORS and request-id logging.
func (s *Server) GenerateRoutes() http.Handler {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowBrowserExtensions = true
	corsConfig.AllowHeaders = []string{"Authorization", "Content-Type", "User-Agent", "Accept"}
	corsConfig.AllowOrigins = envconfig.AllowedOrigins()

	r := gin.New()
	r.Use(gin.Recovery(), cors.New(corsConfig), requestID())

	r.POST("/api/generate", s.GenerateHandler)
	r.GET("/api/version", s.VersionHandler)
	r.HEAD("/", func(c *gin.Context) { c.String(http.StatusOK, "diffuse is running") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "diffuse is running") })

	return r
}

// requestID tags every request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		start := time.Now()
		c.Next()
		slog.Debug("request", "id", id, "method", c.Request.Method,
			"path", c.Request.URL.Path, "status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// Serve runs the server on ln until the listener closes.
func Serve(ln net.Listener, p *pipeline.Pipeline) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	slog.Info("server config", "env", envconfig.Values())

	s := NewServer(p)

	slog.Info(fmt.Sprintf("Listening on %s (version %s)", ln.Addr(), version.Version))
	srvr := &http.Server{
		Handler: s.GenerateRoutes(),
		BaseContext: func(net.Listener) context.Context {
			return context.Background()
		},
	}
	return srvr.Serve(ln)
}

func streamResponse(c *gin.Context, ch chan any) {
	c.Header("Content-Type", "application/x-ndjson")
	c.Stream(func(w io.Writer) bool {
		val, ok := <-ch
		if !ok {
			return false
		}

		if h, ok := val.(gin.H); ok {
			if e, ok := h["error"].(string); ok {
				status, ok := h["status"].(int)
				if !ok {
					status = http.StatusInternalServerError
				}

				if !c.Writer.Written() {
					c.Header("Content-Type", "application/json")
					c.JSON(status, gin.H{"error": e})
				} else {
					if err := json.NewEncoder(c.Writer).Encode(gin.H{"error": e}); err != nil {
						slog.Error("streamResponse failed to encode json error", "error", err)
					}
				}

				return false
			}
		}

		bts, err := json.Marshal(val)
		if err != nil {
			slog.Info(fmt.Sprintf("streamResponse: json.Marshal failed with %s", err))
			return false
		}

		bts = append(bts, '\n')
		if _, err := w.Write(bts); err != nil {
			slog.Info(fmt.Sprintf("streamResponse: w.Write failed with %s", err))
			return false
		}

		return true
	})
}
