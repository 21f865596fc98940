package internal

import (
	"context"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"os"
	"os/signal"
	"streamsched/internal/controllers"
	"streamsched/internal/providers"
	"streamsched/internal/services"
	"streamsched/internal/settings/interfaces"
	"streamsched/internal/structures"
	"strconv"
	"syscall"
	"time"
)

type App struct {
	WebServer *http.Server
}

// NewHandler mounts the infrastructure endpoints next to the instrumented API.
func NewHandler(healthController *controllers.HealthController, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) http.Handler {
	instrumentedAPI := providers.MetricsMiddleware(metrics, logger, router.Handler())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)
	return mux
}

// NewApp loads the schedule, serves HTTP until SIGINT/SIGTERM, then shuts
// down. With store.saveOnShutdown a dirty schedule gets one last save.
func NewApp(healthController *controllers.HealthController, service services.ScheduleServiceInterface, store interfaces.StoreInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	res := service.Load(context.Background())
	if res.OK {
		logger.Infof(providers.TypeApp, "Schedule loaded from %s store in %s", conf.Store.Driver, res.Duration)
	} else {
		logger.Warnf(providers.TypeApp, "%s (%v)", res.Message, res.Err)
	}

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      NewHandler(healthController, conf, logger, router, metrics),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second + conf.Store.Timeout,
			IdleTimeout:  60 * time.Second,
		},
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		_ = store.Close()
		return nil, fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}
	if err := saveOnShutdown(service, conf, logger); err != nil {
		_ = store.Close()
		return nil, err
	}
	if err := store.Close(); err != nil {
		logger.Errorf(providers.TypeStore, "Closing store: %v", err)
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}

func saveOnShutdown(service services.ScheduleServiceInterface, conf *structures.Config, logger providers.Logger) error {
	if !conf.Store.SaveOnShutdown || !service.Dirty() {
		return nil
	}
	logger.Infof(providers.TypeApp, "Saving unsynced schedule before exit")
	res := service.Save(context.Background())
	if !res.OK {
		return fmt.Errorf("save on shutdown: %w", res.Err)
	}
	return nil
}
