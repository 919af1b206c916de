package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "comando de migración: up|down|status|version|redo")
	version := flag.String("version", "", "versión destino para -cmd=version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	log.Info().Str("cmd", *cmd).Msg("migrate listo")

	switch *cmd {
	case "up", "down", "status", "redo":
		err = postgres.Migrate(ctx, pool, *cmd)
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "falta -version para el comando version")
			os.Exit(1)
		}
		err = postgres.MigrateTo(ctx, pool, *version)
	default:
		fmt.Fprintln(os.Stderr, "valor de -cmd desconocido:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg("migración fallida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Msg("migración completada")
}
