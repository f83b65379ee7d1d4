// path: cmd/server/main.go
// Serves the solver over HTTP: JSON endpoints under /api and a websocket
// replay stream under /ws/replay.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"rush_hour_poc/internal/httpx"
)

var log = logrus.New()

func main() {
	// Flags (env fallbacks).
	addr := flag.String("addr", getenv("RUSH_ADDR", ":8080"), "listen address")
	workers := flag.Int("workers", getenvInt("RUSH_WORKERS", 0), "goroutines used to solve the level catalog (0 = one per CPU)")
	level := flag.String("log-level", getenv("RUSH_LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	jsonLogs := flag.Bool("log-json", getenb("RUSH_LOG_JSON", false), "write logs as JSON")
	maxSize := flag.Int("max-size", getenvInt("RUSH_MAX_SIZE", httpx.DefaultMaxSize), "largest accepted grid side")
	maxStates := flag.Int("max-states", getenvInt("RUSH_MAX_STATES", httpx.DefaultMaxStates), "configurations one search may discover")
	origins := flag.String("allowed-origins", getenv("RUSH_ALLOWED_ORIGINS", ""), "comma-separated extra origins allowed to open /ws/replay")
	flag.Parse()

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(lvl)
	if *jsonLogs {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	srv := httpx.NewServer(log, httpx.Options{
		Workers:        *workers,
		MaxSize:        *maxSize,
		MaxStates:      *maxStates,
		AllowedOrigins: splitCSV(*origins),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(*addr) }()

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("http server stopped")
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
		<-errCh
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.WithField("key", key).Warnf("ignoring non-integer value %q", v)
			return def
		}
		return n
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
