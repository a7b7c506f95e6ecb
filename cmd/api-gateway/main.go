package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/bitcoin"
	gwconfig "github.com/goodnatureofminers/blockinsight7000-txcodec/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultAddr = ":8001"

type options struct {
	Addr         string `long:"addr" env:"TXCODEC_GATEWAY_ADDR" description:"http listen addr (default :8001)"`
	Config       string `long:"config" env:"TXCODEC_GATEWAY_CONFIG" description:"yaml config file"`
	RPS          int    `long:"rps" env:"TXCODEC_GATEWAY_RPS" description:"request rate limit, 0 disables it"`
	MaxBodyBytes int64  `long:"max-body" env:"TXCODEC_GATEWAY_MAX_BODY" description:"request body limit in bytes"`
	BatchWorkers int    `long:"batch-workers" env:"TXCODEC_GATEWAY_BATCH_WORKERS" description:"decoders per batch request"`
	LogJSON      bool   `long:"log-json" env:"TXCODEC_GATEWAY_LOG_JSON" description:"json production logs"`
}

func main() {
	var opts options
	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		os.Exit(1)
	}
	settings, err := resolve(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := newLogger(settings.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	decoder, err := service.NewDecoder(
		bitcoin.NewConverter(bitcoin.NewScriptDecoder()),
		metrics.NewCodec("http"),
		logger,
		settings.BatchWorkers,
	)
	if err != nil {
		logger.Fatal("Failed to create decoder", zap.Error(err))
	}

	var limiter ratelimit.Limiter
	if settings.RPS > 0 {
		limiter = ratelimit.New(settings.RPS)
	}

	mux := http.NewServeMux()
	transport.NewCodecHandler(decoder, metrics.NewHTTPServer(), limiter, logger, settings.MaxBodyBytes).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              settings.Addr,
		Handler:           corsHandler(settings.CORSOrigins).Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", settings.Addr),
		zap.Int("rps", settings.RPS),
		zap.Int64("max_body_bytes", settings.MaxBodyBytes),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

// resolve layers flag/env values over the optional config file and falls
// back to built-in defaults.
func resolve(opts options) (gwconfig.Gateway, error) {
	var file gwconfig.Gateway
	if opts.Config != "" {
		loaded, err := gwconfig.Load(opts.Config)
		if err != nil {
			return gwconfig.Gateway{}, err
		}
		file = *loaded
	}

	settings := file
	if opts.Addr != "" {
		settings.Addr = opts.Addr
	}
	if opts.RPS != 0 {
		settings.RPS = opts.RPS
	}
	if opts.MaxBodyBytes != 0 {
		settings.MaxBodyBytes = opts.MaxBodyBytes
	}
	if opts.BatchWorkers != 0 {
		settings.BatchWorkers = opts.BatchWorkers
	}
	if opts.LogJSON {
		settings.LogJSON = true
	}
	if settings.Addr == "" {
		settings.Addr = defaultAddr
	}
	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = transport.DefaultMaxBodyBytes
	}
	if settings.RPS < 0 || settings.BatchWorkers < 0 {
		return gwconfig.Gateway{}, fmt.Errorf("rps and batch workers must not be negative")
	}
	return settings, nil
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
}
