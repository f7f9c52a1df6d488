// Package server exposes rendered scenes over HTTP for live previews.
//
// The server watches nothing; every request re-reads the manifest from the
// scene directory, with a content-addressed cache in front so unchanged
// scenes do not pay for re-rendering.
package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/svgforge/svgforge/pkg/cache"
	"github.com/svgforge/svgforge/pkg/errors"
	"github.com/svgforge/svgforge/pkg/scene"
)

// placeholderSVG is served when a manifest exists but fails to parse or
// validate. Previews keep refreshing while the user edits, so a broken
// intermediate state renders as an empty canvas instead of an error page.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="150" viewBox="0 0 300 150"><rect width="300" height="150" fill="#FAFAFA"/><text x="150" y="80" text-anchor="middle" font-family="monospace" font-size="12" fill="#999999">scene failed to render</text></svg>`

// Config holds the server settings.
type Config struct {
	Addr     string        // listen address, e.g. ":8080"
	SceneDir string        // directory holding *.toml scene manifests
	TTL      time.Duration // cache entry lifetime
}

// Server renders scene manifests on demand.
type Server struct {
	cfg    Config
	store  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	http   *http.Server
}

// New creates a server. A nil store disables caching.
func New(cfg Config, store cache.Cache, logger *log.Logger) *Server {
	if store == nil {
		store = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		store:  store,
		keyer:  cache.NewDefaultKeyer(),
		logger: logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds the HTTP handler. Exposed separately for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/scenes/{name}.svg", s.handleScene)
	return r
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("Shutting down")
		return s.http.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// handleScene renders one manifest. A missing manifest is a 404; a manifest
// that fails to parse or validate serves the placeholder instead.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	if err := errors.ValidateSceneName(name); err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.cfg.SceneDir, name+".toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		s.logger.Errorf("Reading %s: %v", path, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	key := s.keyer.RenderKey(cache.Hash(data), "svg", 1)
	if markup, hit, err := s.store.Get(ctx, key); err == nil && hit {
		writeSVG(w, markup)
		return
	}

	sc, err := scene.Parse(data)
	if err != nil {
		s.logger.Warnf("Scene %s invalid: %v", name, err)
		writeSVG(w, []byte(placeholderSVG))
		return
	}

	markup, err := sc.Render()
	if err != nil {
		s.logger.Warnf("Scene %s failed to render: %v", name, err)
		writeSVG(w, []byte(placeholderSVG))
		return
	}

	if err := s.store.Set(ctx, key, []byte(markup), s.cfg.TTL); err != nil {
		s.logger.Debugf("Cache write failed: %v", err)
	}
	writeSVG(w, []byte(markup))
}

func writeSVG(w http.ResponseWriter, markup []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(markup)
}
