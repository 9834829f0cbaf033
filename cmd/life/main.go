package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"conway/internal/driver"
	"conway/internal/logger"
	"conway/internal/metrics"
	"conway/internal/stream"
)

// newLogger keeps stdout for the board when it is being printed.
func newLogger(printing bool, stdout, stderr io.Writer) *logger.Logger {
	if printing {
		return logger.New(stderr, stderr)
	}
	return logger.New(stdout, stderr)
}

func main() {
	cfg := driver.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := newLogger(cfg.Print, os.Stdout, os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []driver.RunOption
	if cfg.Listen != "" {
		var stats metrics.Collector
		hub := stream.NewHub(log)
		go hub.Run(ctx)

		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		mux.Handle("/stats", stats.Handler())
		srv := &http.Server{Addr: cfg.Listen, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("http server: " + err.Error())
				stop()
			}
		}()
		defer srv.Close()
		log.Infof("streaming generations on ws://%s/ws", cfg.Listen)

		opts = append(opts, driver.WithObserver(hub), driver.WithMetrics(&stats), driver.WithLogger(log))
	}

	err := driver.Run(ctx, *cfg, os.Stdout, opts...)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(err.Error())
		os.Exit(1)
	}
}
