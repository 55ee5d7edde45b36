package main

import (
	"context"
	"database/sql"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "agrismart/docs"
	"agrismart/internal/config"
	"agrismart/internal/handlers"
	"agrismart/internal/logger"
	"agrismart/internal/metrics"
	"agrismart/internal/repository"
	"agrismart/internal/repository/db"
	"agrismart/internal/server"
	"agrismart/internal/service"
	"agrismart/internal/sink"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// @title        AgriSmart Dashboard API
// @version      1.0
// @description  Live farm telemetry, spray control and alert feed.
// @BasePath     /
func main() {
	// load config.yml + AGRISMART_* env
	cfg, cfgErr := config.Load("configs", ".")

	// init logger
	log := logger.Get(cfg.LogLevel)
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// wire dependencies
	repos := repository.NewRepository(conn)
	services, err := service.NewService(repos, cfg, service.Deps{Metrics: m, Log: log})
	if err != nil {
		log.Fatalw("failed to build services", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log.Named("http"), handlers.Options{
		WSInterval: cfg.WSDefaultInterval,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var background sync.WaitGroup
	background.Add(1)
	go func() {
		defer background.Done()
		services.Run(ctx)
	}()
	startMQTT(ctx, cfg, services, log, &background)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, &background, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", cfg.DBPath)
	return db.InitDB(cfg.DBPath)
}

// startMQTT mirrors telemetry and notifications to a broker when one is configured.
func startMQTT(ctx context.Context, cfg config.Config, services *service.Service, log *logger.Logger, wg *sync.WaitGroup) {
	if cfg.MQTTBroker == "" {
		return
	}
	mlog := log.Named("mqtt")
	pub, err := sink.Connect(ctx, cfg.MQTTBroker, cfg.MQTTClientID, mlog)
	if err != nil {
		mlog.Errorw("mqtt disabled", "err", err)
		return
	}
	mq := sink.NewMQTTSink(pub, cfg.MQTTTopicPrefix, mlog)
	services.Store.AddListener(mq)

	wg.Add(1)
	go func() {
		defer wg.Done()
		mq.Run(ctx, services)
	}()
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		ready := func(addr net.Addr) {
			log.Infow("http server listening", "addr", addr.String())
			if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
				log.Warnw("sd_notify failed", "err", err)
			} else if ok {
				log.Infow("sd_notify ready sent")
			}
		}
		if err := srv.Run(port, handler.InitRoutes(), ready); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, background *sync.WaitGroup, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	// stop scheduler, recorder and sinks, then let the recorder flush
	cancel()
	background.Wait()
}
