// Command domaininfod serves the domaininfo REST API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/domaininfo/internal/api"
	"github.com/jroosing/domaininfo/internal/config"
	"github.com/jroosing/domaininfo/internal/logging"
	"github.com/jroosing/domaininfo/internal/lookup"
	"github.com/jroosing/domaininfo/internal/resolver"
	"github.com/jroosing/domaininfo/internal/whois"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		IncludePID:  cfg.Logging.IncludePID,
		ExtraFields: cfg.Logging.ExtraFields,
	})

	whoisTimeout, _ := time.ParseDuration(cfg.Whois.Timeout)
	udpTimeout, _ := time.ParseDuration(cfg.Resolver.UDPTimeout)
	tcpTimeout, _ := time.ParseDuration(cfg.Resolver.TCPTimeout)

	service := lookup.NewService(
		whois.New(whoisTimeout),
		resolver.New(resolver.Options{
			UDPTimeout:  udpTimeout,
			TCPTimeout:  tcpTimeout,
			MaxRetries:  cfg.Resolver.MaxRetries,
			TCPFallback: cfg.Resolver.TCPFallback,
		}),
		logger,
	)

	srv := api.New(&cfg, service, logger)
	logger.Info("domaininfo API starting",
		"addr", srv.Addr(),
		"nameservers", resolver.Nameservers,
		"auth", cfg.API.APIKey != "",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
