package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/KirkDiggler/pokemon-explorer/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-explorer/internal/config"
	"github.com/KirkDiggler/pokemon-explorer/internal/handlers/web"
	"github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-explorer/internal/platform/otel"
	redisclient "github.com/KirkDiggler/pokemon-explorer/internal/redis"
	listingview "github.com/KirkDiggler/pokemon-explorer/internal/repositories/listing_view"
)

const (
	serviceName     = "pokemon-explorer"
	shutdownTimeout = 30 * time.Second
)

var (
	httpAddr  string
	grpcPort  int
	redisAddr string
	logLevel  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the web server",
	Long: `Start the Pokemon Explorer web server and its gRPC health endpoint.

Configuration is read from POKEMON_EXPLORER_* environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP listen address")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 50051, "gRPC health server port (0 disables)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for listing views (empty keeps them in memory)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadConfig reads the environment and applies any flags set on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("http-addr") {
		cfg.HTTPAddr = httpAddr
	}
	if flags.Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, serviceName, otel.Options{
		Endpoint: cfg.OTelEndpoint,
		Enabled:  cfg.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	handler, cleanup, err := buildHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return serve(ctx, cfg, handler)
}

// serve opens every listener before serving on any of them, then runs
// until ctx is done or a server fails. Either way both servers are shut
// down before it returns.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	httpLis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr, err)
	}

	var grpcLis net.Listener
	if cfg.GRPCPort > 0 {
		grpcLis, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
		if err != nil {
			_ = httpLis.Close()
			return fmt.Errorf("failed to listen on gRPC port %d: %w", cfg.GRPCPort, err)
		}
	}

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("HTTP server starting", "addr", httpLis.Addr().String())
		if err := httpServer.Serve(httpLis); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	var healthServer *health.Server
	if grpcLis != nil {
		grpcServer, healthServer = newHealthServer()
		go func() {
			slog.Info("gRPC health server starting", "port", cfg.GRPCPort)
			if err := grpcServer.Serve(grpcLis); err != nil {
				errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")
	case serveErr = <-errChan:
		slog.Error("Server failed, stopping", "error", serveErr)
	}

	if healthServer != nil {
		healthServer.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}

	if grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}
	}

	if serveErr != nil {
		return serveErr
	}
	slog.Info("Server stopped gracefully")
	return nil
}

// buildHandler wires the catalog service and the web handler. cleanup
// releases the Redis connection when one was opened.
func buildHandler(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.APIBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	viewRepo, cleanup, err := buildViewRepository(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		Client:      client,
		ViewRepo:    viewRepo,
		IDGenerator: idgen.NewUUID("view"),
		ViewTTL:     cfg.ViewTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	handler, err := web.NewHandler(&web.HandlerConfig{
		CatalogService: catalogService,
		IDGenerator:    idgen.NewUUID("view"),
		SpriteBaseURL:  cfg.SpriteBaseURL,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return handler, cleanup, nil
}

// buildViewRepository keeps listing views in Redis when addr is set and in
// process memory otherwise
func buildViewRepository(ctx context.Context, addr string) (listingview.Repository, func(), error) {
	if addr == "" {
		repo, err := listingview.NewInMemory(&listingview.InMemoryConfig{Clock: clock.New()})
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Listing views kept in memory")
		return repo, func() {}, nil
	}

	client, err := redisclient.NewClient(addr, &redisclient.Options{
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisclient.Ping(pingCtx, client); err != nil {
		cleanup()
		return nil, nil, err
	}

	repo, err := listingview.NewRedis(&listingview.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	slog.Info("Listing views kept in Redis", "addr", addr)
	return repo, cleanup, nil
}
