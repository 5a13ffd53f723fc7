package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "github.com/EmpyreanHYR/sudoku/internal/adapters/http"
	"github.com/EmpyreanHYR/sudoku/internal/generator"
	"github.com/EmpyreanHYR/sudoku/internal/hint"
	"github.com/EmpyreanHYR/sudoku/internal/history"
	"github.com/EmpyreanHYR/sudoku/internal/solver"
	"github.com/EmpyreanHYR/sudoku/internal/usecase"
	"github.com/EmpyreanHYR/sudoku/internal/validator"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Listen = serveAddr
		}

		s := solver.NewBacktrackingSolver()
		uc := usecase.NewService(
			s,
			generator.NewCarveGenerator(s),
			validator.New(),
			hint.NewSingles(),
			history.NewFileStore(cfg.HistoryFile),
		)
		h := httpadapter.New(uc)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		h.Register(mux)

		srv := &http.Server{
			Addr:              cfg.Listen,
			Handler:           requestLogger(slog.Default(), mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		slog.Info("listening", "addr", cfg.Listen, "history", cfg.HistoryFile)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
