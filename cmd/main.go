package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biotrack/internal/config"
	"biotrack/internal/handlers"
	"biotrack/internal/logger"
	"biotrack/internal/repository"
	"biotrack/internal/repository/db"
	"biotrack/internal/server"
	"biotrack/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       BioTrack API
// @version                     1.0
// @description                 Biometrics and meal tracking web app.
// @BasePath                    /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        biotrack_session
func main() {
	// load configs/config.yml, .env and environment
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, false).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel, cfg.LogJSON)
	defer func() { _ = log.Sync() }()

	// open DB
	sqlDB, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init store", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	// wire dependencies
	exec := db.NewExecutor(sqlDB, db.Dialect(cfg.DB.Driver))
	repos := repository.NewRepository(exec)
	services := service.NewService(repos, service.Options{
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
		BcryptCost:    cfg.Session.BcryptCost,
	})
	handler := handlers.NewHandler(services, log.Named("http"), handlers.CookieOptions{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	})

	// start HTTP server
	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, handler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openDB initializes the configured store.
func openDB(cfg config.DB, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening store", "driver", cfg.Driver, "path", cfg.Path, "host", cfg.Host, "name", cfg.Name)
	return db.InitDB(db.Options{
		Dialect:      db.Dialect(cfg.Driver),
		Path:         cfg.Path,
		Host:         cfg.Host,
		Port:         cfg.Port,
		Name:         cfg.Name,
		User:         cfg.User,
		Password:     cfg.Password,
		MaxOpenConns: cfg.MaxOpenConns,
	})
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
