// Package server renders progress rings over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"ringlet/internal/gradient"
	"ringlet/internal/render"
	"ringlet/internal/ring"
	"ringlet/internal/spinner"
)

// Defaults fill in query parameters the client omits.
type Defaults struct {
	Size     float64
	Stroke   float64
	Gradient string
}

// Server serves ring SVGs. Its composer and registry are read-only, so
// handlers share them without locking.
type Server struct {
	composer *ring.Composer
	log      *slog.Logger
	defaults Defaults
}

// New constructs a Server.
func New(c *ring.Composer, log *slog.Logger, d Defaults) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{composer: c, log: log, defaults: d}
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	r.HandleFunc("/gradients", s.handleGradients).Methods(http.MethodGet)
	r.HandleFunc("/ring.svg", s.handleRing).Methods(http.MethodGet)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type stopJSON struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

type gradientJSON struct {
	ID    string     `json:"id"`
	Stops []stopJSON `json:"stops"`
}

func (s *Server) handleGradients(w http.ResponseWriter, r *http.Request) {
	all := s.composer.Registry().All()
	out := make([]gradientJSON, 0, len(all))
	for _, g := range all {
		gj := gradientJSON{ID: g.ID}
		for _, st := range g.Stops {
			gj.Stops = append(gj.Stops, stopJSON{Offset: st.Offset, Color: st.Color})
		}
		out = append(out, gj)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.log.Error("encode gradients", "error", err)
	}
}

func (s *Server) handleRing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pct, err := floatParam(q.Get("percentage"), -1)
	if err != nil || q.Get("percentage") == "" || math.IsNaN(pct) || math.IsInf(pct, 0) {
		http.Error(w, "percentage is required and must be a finite number", http.StatusBadRequest)
		return
	}
	size, err := floatParam(q.Get("size"), s.defaults.Size)
	if err != nil {
		http.Error(w, "size must be a number", http.StatusBadRequest)
		return
	}
	stroke, err := floatParam(q.Get("stroke"), s.defaults.Stroke)
	if err != nil {
		http.Error(w, "stroke must be a number", http.StatusBadRequest)
		return
	}
	grad := q.Get("gradient")
	if grad == "" {
		grad = s.defaults.Gradient
	}

	p := spinner.Panel{
		Spinner: spinner.Resizeable{
			Percentage:  pct,
			Size:        size,
			StrokeWidth: stroke,
			Gradient:    grad,
			Composer:    s.composer,
		},
		Caption: spinner.Text{Value: q.Get("message"), FontSize: spinner.FontSizeXS, Color: gradient.White},
		Gap:     spinner.CaptionGap,
	}
	if q.Get("icon") == "bolt" {
		p.Spinner.Content = []spinner.Content{spinner.LightningBolt()}
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, p); err != nil {
		if ring.IsInvalidArgument(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("render ring", "error", err, "request_id", w.Header().Get("X-Request-ID"))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(buf.Bytes())
}

// requestID tags every response with an X-Request-ID and logs the request.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
			"request_id", id,
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func floatParam(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
