package main

import (
	"context"
	"flag"
	"os"

	"github.com/dashboardvendas/importer/internal/importer"
	"github.com/dashboardvendas/importer/pkg/config"
	"github.com/dashboardvendas/importer/pkg/db"
	pkgerrors "github.com/dashboardvendas/importer/pkg/errors"
	"github.com/dashboardvendas/importer/pkg/logger"
	"github.com/dashboardvendas/importer/pkg/migrate"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "importer"})

	_ = godotenv.Load()

	file := flag.String("file", "", "source CSV path (overrides IMPORTER_SOURCE_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeConfig, err, "loading configuration")
		logg.Error(ctx, "configuration invalid", err)
		return pkgerrors.ExitCode(err)
	}

	logg = logger.New(logger.Options{
		ServiceName: "importer",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if *file != "" {
		cfg.Source.Path = *file
	}
	if cfg.Source.Path == "" {
		err := pkgerrors.New(pkgerrors.CodeConfig, "no source file: set IMPORTER_SOURCE_PATH or pass -file")
		logg.Error(ctx, "configuration invalid", err)
		return pkgerrors.ExitCode(err)
	}

	ctx = logg.WithRunID(ctx, uuid.NewString())
	ctx = logg.WithSourceFile(ctx, cfg.Source.Path)
	ctx = logg.WithField(ctx, "env", cfg.App.Env)

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDatabase, err, "connecting to database")
		logg.Error(ctx, "database unavailable", err)
		return pkgerrors.ExitCode(err)
	}
	defer client.Close()

	if err := client.Ping(ctx); err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDatabase, err, "pinging database")
		logg.Error(ctx, "database unavailable", err)
		return pkgerrors.ExitCode(err)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeMigration, err, "auto-running migrations")
		logg.Error(ctx, "migrations failed", err)
		return pkgerrors.ExitCode(err)
	}

	src := importer.NewFileSource(cfg.Source.Path, delimiterRune(cfg.Source.Delimiter))
	loader := importer.NewLoader(client.DB(), importer.NewRepository(client.DB()), logg, cfg.Import)

	logg.Info(ctx, "import starting")

	sum, err := loader.Run(ctx, src)
	sctx := logg.WithFields(ctx, map[string]any{
		"orders_seen":     sum.OrdersSeen,
		"orders_inserted": sum.OrdersInserted,
		"items_inserted":  sum.ItemsInserted,
	})
	if err != nil {
		sctx = logg.WithField(sctx, "error_dump", pkgerrors.Dump(err))
		logg.Error(sctx, "import failed", err)
		return pkgerrors.ExitCode(err)
	}

	logg.Info(sctx, "import finished")
	return 0
}

func delimiterRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ';'
}
