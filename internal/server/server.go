// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the generators over HTTP for the web client.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/copy-engine/pkg/types"
)

const (
	defaultAddr         = ":8080"
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 64 << 10
	shutdownTimeout     = 5 * time.Second
)

// Generator produces a result for a validated request.
type Generator interface {
	Generate(req types.Request) (types.Result, error)
}

// New returns the router serving the generation API.
func New(cfg types.ServerConfig, logger *zap.Logger, gen Generator) *chi.Mux {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{
		log:          logger,
		gen:          gen,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = defaultMaxBodyBytes
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.generate)
		r.Get("/tones", h.tones)
		r.Get("/platforms", h.platforms)
	})

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				level := zapcore.InfoLevel
				if status >= http.StatusInternalServerError {
					level = zapcore.ErrorLevel
				}
				logger.Check(level, "request").Write(
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("remote", r.RemoteAddr),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// NewLogger builds the server's production logger. Level "debug" enables
// debug output; anything else logs at info.
func NewLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level == "debug" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// Run serves h on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg types.ServerConfig, h http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := &http.Server{
		Addr:         orDefault(cfg.Addr, defaultAddr),
		Handler:      h,
		ReadTimeout:  durationOr(cfg.ReadTimeout, defaultTimeout),
		WriteTimeout: durationOr(cfg.WriteTimeout, defaultTimeout),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving on %s: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
