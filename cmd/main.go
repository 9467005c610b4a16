package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/cnwoye/itinerary-planner-service/internal/app/config"
	"github.com/cnwoye/itinerary-planner-service/internal/app/dto"
	"github.com/cnwoye/itinerary-planner-service/internal/app/endpoints"
	"github.com/cnwoye/itinerary-planner-service/internal/app/service"
	"github.com/cnwoye/itinerary-planner-service/internal/app/transport"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/flightprovider"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/flightprovider/amadeus"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/itinerary"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/logger"
	"github.com/cnwoye/itinerary-planner-service/internal/pkg/mailer"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// @title           Itinerary Planner Service API
// @version         0.0.1
// @description     itinerary-planner-service
// @host      localhost:5000
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis for the provider rate limiter
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init resolver factory
	resolverFactory := initResolverFactory(cfg, redisClient)

	// init service endpoint
	return endpoints.Endpoints{
		PlannerEndpoint: makePlannerEndpoint(resolverFactory, cfg),
	}
}

// register one resolver per flight type, both backed by the same client
func initResolverFactory(cfg *config.Config, redisClient *redis.Client) *flightprovider.ResolverFactory {

	limiter := redis_rate.NewLimiter(redisClient)

	client := amadeus.NewClient(flightprovider.FlightProviderConfig{
		APIURL:       cfg.Provider.APIURL,
		APIKey:       cfg.Provider.APIKey,
		APISecret:    cfg.Provider.APISecret,
		Timeout:      cfg.Provider.Timeout,
		MaxRetries:   cfg.Provider.MaxRetries,
		RateLimitRPS: cfg.Provider.RateLimitRPS,
		Limiter:      limiter,
	})

	factory := flightprovider.NewResolverFactory()
	factory.AddResolver(amadeus.TypeDirect, amadeus.NewDirectResolver(client))
	factory.AddResolver(amadeus.TypeConnecting, amadeus.NewConnectingResolver(client))

	return factory
}

func makePlannerEndpoint(factory *flightprovider.ResolverFactory,
	cfg *config.Config) endpoints.PlannerEndpoint {

	bufferTable, err := cfg.Planner.Buffers()
	if err != nil {
		slog.Error("invalid connection buffer configuration", slog.String("error", err.Error()))
		panic(err)
	}

	buffers := itinerary.NewConnectionBuffers(bufferTable, cfg.Planner.DefaultBuffer())

	sender := mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Address, cfg.SMTP.Password)

	// service
	plannerService := service.NewPlannerService(factory, sender,
		cfg.Planner.RegionDestinations, buffers, cfg.Planner.ExtraTravelTime())

	// endpoint
	return endpoints.MakePlannerEndpoint(plannerService)
}
