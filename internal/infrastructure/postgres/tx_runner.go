package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var (
	_ repository.EmployeeTxRunner = (*TxRunner)(nil)
	_ repository.ProfileTxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunEmployees ejecuta fn con un EmployeeRepository atado a la tx (fila del empleado + sucursales).
func (r *TxRunner) RunEmployees(ctx context.Context, fn func(repo repository.EmployeeRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewEmployeeRepository(tx))
	})
}

// RunProfiles ejecuta fn con un ProfileRepository atado a la tx (perfil + módulos + sucursales).
func (r *TxRunner) RunProfiles(ctx context.Context, fn func(repo repository.ProfileRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewProfileRepository(tx))
	})
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
