// Package server implements the JSON API over the release resolver.
//
// The surface is deliberately small: latest-release and exact-version
// lookups plus the raw version list, all keyed by vendor/package path
// segments. Badge or HTML rendering is out of scope; responses are the
// resolved version records themselves.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/packista/packista/pkg/composer"
	"github.com/packista/packista/pkg/integrations"
	"github.com/packista/packista/pkg/integrations/packagist"
	"github.com/packista/packista/pkg/release"
)

// Server serves release lookups over HTTP.
type Server struct {
	svc    *release.Service
	logger *log.Logger
	router chi.Router
}

// New creates a Server around the given release service.
func New(svc *release.Service, logger *log.Logger) *Server {
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/packages/{vendor}/{package}", func(r chi.Router) {
		r.Get("/latest", s.handleLatest)
		r.Get("/versions", s.handleVersions)
		r.Get("/versions/{version}", s.handleVersion)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	pkg := routePackage(r)
	opts := release.Options{
		IncludePrereleases: boolParam(r, "prereleases"),
		Refresh:            boolParam(r, "refresh"),
	}
	rec, err := s.svc.Latest(r.Context(), pkg, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	pkg := routePackage(r)
	rec, err := s.svc.Version(r.Context(), pkg, chi.URLParam(r, "version"), release.Options{
		Refresh: boolParam(r, "refresh"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	pkg := routePackage(r)
	versions, err := s.svc.Versions(r.Context(), pkg, release.Options{
		Refresh: boolParam(r, "refresh"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"package":  pkg,
		"versions": versions,
	})
}

// writeError maps domain errors to HTTP status codes. Logical absences map
// to 404, caller mistakes to 400, upstream trouble to 502.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, composer.ErrNoReleasedVersion),
		errors.Is(err, composer.ErrInvalidVersion),
		errors.Is(err, integrations.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, packagist.ErrInvalidName):
		status = http.StatusBadRequest
	case errors.Is(err, integrations.ErrNetwork),
		errors.Is(err, packagist.ErrMalformedPayload):
		status = http.StatusBadGateway
	}
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func routePackage(r *http.Request) string {
	return chi.URLParam(r, "vendor") + "/" + chi.URLParam(r, "package")
}

func boolParam(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
