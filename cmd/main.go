package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"htcpcp/internal/handlers"
	"htcpcp/internal/logger"
	"htcpcp/internal/models"
	"htcpcp/internal/repository"
	"htcpcp/internal/repository/db"
	"htcpcp/internal/server"
	"htcpcp/internal/service"

	"github.com/spf13/viper"
)

// RFC 2324 assigns no port, but 2324 is traditional.
const (
	defaultPort        = "2324"
	defaultDBPath      = ":memory:"
	defaultMonitorTick = 30 * time.Second
)

// @title        HTCPCP/1.0
// @version      1.0
// @description  Hyper Text Coffee Pot Control Protocol — RFC 2324 + RFC 7168
func main() {
	if err := loadConfig(); err != nil {
		// Config is optional; built-in defaults cover everything.
		logger.Get(logger.InfoLevel).Infow("config not found; using defaults", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))

	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn, loadRegistrySeed())
	services := service.NewService(repos, loadVocabulary(), log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Monitor.Run(ctx, monitorTick())

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	log.Infow("htcpcp_startup",
		"protocol", "HTCPCP/1.0",
		"rfc", []string{"RFC-2324", "RFC-7168"},
		"pots", len(repos.Pots.ListAll()),
	)

	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB opens the history database; ":memory:" keeps it process-scoped.
func openDB(log *logger.Logger) (*sql.DB, error) {
	path := viper.GetString("db.path")
	if path == "" {
		log.Infow("db.path not set; history kept in memory", "default", defaultDBPath)
		path = defaultDBPath
	}
	return db.InitDB(path)
}

// loadRegistrySeed reads the pot seed from config, falling back to the fixed
// default registry.
func loadRegistrySeed() []models.Pot {
	var seed []models.Pot
	if err := viper.UnmarshalKey("pots", &seed); err != nil || len(seed) == 0 {
		return models.DefaultRegistrySeed()
	}
	return seed
}

// loadVocabulary reads the addition vocabulary from config, falling back to
// the RFC 2324 §2.1.1 table.
func loadVocabulary() models.AdditionVocabulary {
	raw := viper.GetStringMapStringSlice("additions")
	if len(raw) == 0 {
		return models.DefaultVocabulary()
	}
	return models.AdditionVocabulary(raw)
}

func monitorTick() time.Duration {
	if d := viper.GetDuration("monitor.interval"); d > 0 {
		return d
	}
	return defaultMonitorTick
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful
// shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
