package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namsral/flag"

	"github.com/agrovia/portal/config"
	_ "github.com/agrovia/portal/docs"
	"github.com/agrovia/portal/internal/app"
	"github.com/agrovia/portal/internal/db"
)

// Every flag also reads the environment variable of the same name in upper snake case,
// e.g. -db-server and DB_SERVER.
var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations before serving")
	flDBServer    = flag.String("db-server", "", "database host")
	flDBDatabase  = flag.String("db-database", "", "database name")
	flDBUser      = flag.String("db-user", "", "database user")
	flDBPassword  = flag.String("db-password", "", "database password")
	flDBPort      = flag.Int("db-port", 0, "database port")
	flDBEncrypt   = flag.String("db-encrypt", "", "use TLS for the database connection (true/false)")
	flDBTrustCert = flag.String("db-trust-cert", "", "skip database certificate verification (true/false)")
	flAPIURL      = flag.String("next-public-api-url", "", "public base URL of the API")
	lg            *slog.Logger
)

// @title Agrovia Portal API
// @version 1.0
// @description Content API for the Agrovia portal
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	err = cfg.Apply(config.Overrides{
		DBServer:    *flDBServer,
		DBDatabase:  *flDBDatabase,
		DBUser:      *flDBUser,
		DBPassword:  *flDBPassword,
		DBPort:      *flDBPort,
		DBEncrypt:   *flDBEncrypt,
		DBTrustCert: *flDBTrustCert,
		APIURL:      *flAPIURL,
	})
	exitOnError(err)
	exitOnError(cfg.Validate())

	ctx := context.Background()

	if *flMigrate {
		lg.Info("applying migrations", "database", cfg.Database.Database, "server", cfg.Database.Server)
		exitOnError(db.Migrate(ctx, cfg.Database.URL()))
	}

	service, err := app.New(cfg, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
