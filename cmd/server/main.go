package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/internal/config"
	"github.com/me/clinidash/internal/logging"
	"github.com/me/clinidash/internal/metrics"
	"github.com/me/clinidash/internal/store"
	"github.com/me/clinidash/internal/ui"
)

// sessionReapInterval is how often expired session rows are purged.
const sessionReapInterval = 15 * time.Minute

func main() {
	configFile := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	apiURL := flag.String("api-url", "", "Remote service URL (overrides config)")
	dbPath := flag.String("db", "", "Session database path (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *apiURL != "" {
		cfg.APIBaseURL = *apiURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	// Resolve the session database path.
	path := cfg.DBPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".clinidash")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
		path = filepath.Join(dir, "clinidash.db")
	}

	// Open the session store and run migrations.
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session database ready", "path", path)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	dash := ui.New(st, api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout}, logger, ui.Config{
		Secure:          cfg.SecureCookies,
		DefaultLanguage: cfg.DefaultLanguage,
		LoginRatePerMin: cfg.LoginRatePerMin,
	})
	dash.WithMetrics(collector)
	defer dash.Close()

	router := ui.NewRouter(dash, logger)
	router.Get("/healthz", dash.HandleHealthz)
	router.Method(http.MethodGet, "/metrics", metrics.Handler(registry))

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reap expired session rows in the background.
	sm := ui.NewSessionManager(st)
	go func() {
		ticker := time.NewTicker(sessionReapInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sm.CleanupExpiredSessions(ctx)
				if err != nil {
					logger.Error("session reaper", "error", err)
					continue
				}
				if n > 0 {
					collector.RecordSessionsReaped(n)
					logger.Info("expired sessions reaped", "count", n)
				}
			}
		}
	}()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "api_url", cfg.APIBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
