package postgres

import (
	"context"
	"embed"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsDir directorio de las migraciones dentro del FS embebido.
const MigrationsDir = "migrations"

// Migrate ejecuta un comando de goose (up, down, status, version, redo, reset) con las
// migraciones embebidas. Usa una *sql.DB montada sobre el mismo pool de pgx.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string, args ...string) (err error) {
	db := stdlib.OpenDBFromPool(pool)
	defer multierr.AppendInvoke(&err, multierr.Close(db))

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, db, MigrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateTo migra hacia arriba o hacia abajo hasta la versión indicada.
func MigrateTo(ctx context.Context, pool *pgxpool.Pool, version string) (err error) {
	target, err := strconv.ParseInt(version, 10, 64)
	if err != nil {
		return fmt.Errorf("versión inválida %q: %w", version, err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer multierr.AppendInvoke(&err, multierr.Close(db))

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}
	switch {
	case current == target:
		log.Info().Int64("version", current).Msg("la base ya está en la versión pedida")
		return nil
	case current < target:
		if err := goose.UpToContext(ctx, db, MigrationsDir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
	default:
		if err := goose.DownToContext(ctx, db, MigrationsDir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
	}
	return nil
}
