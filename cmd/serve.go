package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/topsis/internal/config"
	"github.com/sells-group/topsis/internal/scorer"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve TOPSIS scoring over HTTP",
	Long: `Starts an HTTP server exposing the scorer.

  POST /api/v1/score   {"matrix":[[...]],"weights":[...],"impacts":["+","-"]}
  GET  /health
  GET  /metrics        Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sc := *cfg
	if servePort != 0 {
		sc.Server.Port = servePort
	}
	if err := sc.Validate("serve"); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", sc.Server.Port),
		Handler:           newRouter(sc.Server, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("starting server", zap.Int("port", sc.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "server shutdown")
		}
		return nil
	})

	return g.Wait()
}

type serverMetrics struct {
	requests     *prometheus.CounterVec
	alternatives prometheus.Histogram
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	f := promauto.With(reg)
	return &serverMetrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "topsis_score_requests_total",
			Help: "Score requests by outcome.",
		}, []string{"outcome"}),
		alternatives: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "topsis_score_alternatives",
			Help:    "Number of alternatives per successful score request.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func newRouter(sc config.ServerConfig, reg *prometheus.Registry) http.Handler {
	metrics := newServerMetrics(reg)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: sc.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(sc.RatePerSec))
		r.Post("/score", scoreHandler(sc.MaxBodyBytes, metrics))
	})

	return r
}

type scoreRequest struct {
	Matrix  [][]float64     `json:"matrix"`
	Weights []float64       `json:"weights"`
	Impacts []scorer.Impact `json:"impacts"`
}

func scoreHandler(maxBody int64, m *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			m.requests.WithLabelValues("bad_request").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}

		res, err := scorer.Score(req.Matrix, req.Weights, req.Impacts)
		if err != nil {
			if errors.Is(err, scorer.ErrInvalidInput) {
				m.requests.WithLabelValues("invalid_input").Inc()
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
				return
			}
			m.requests.WithLabelValues("error").Inc()
			zap.L().Error("score request failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		m.requests.WithLabelValues("ok").Inc()
		m.alternatives.Observe(float64(len(req.Matrix)))
		writeJSON(w, http.StatusOK, res)
	}
}

func rateLimit(perSec float64) func(http.Handler) http.Handler {
	lim := rate.NewLimiter(rate.Limit(perSec), int(math.Max(1, perSec)))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}
