package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/scoutline-api/internal/application/onboarding"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
)

var _ onboarding.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRoleSelection inicia una transacción, bloquea la fila del usuario, ejecuta fn con repos
// atados a la tx y hace Commit o Rollback. El bloqueo serializa dos selecciones simultáneas
// del mismo usuario aunque apunten a tablas de perfil distintas.
func (r *TxRunner) RunRoleSelection(ctx context.Context, userID string, fn func(
	users repository.UserRepository,
	athletes repository.AthleteRepository,
	recruiters repository.RecruiterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT 1 FROM users WHERE id = $1 FOR UPDATE`, userID); err != nil {
		return fmt.Errorf("lock user: %w", err)
	}

	if err := fn(NewUserRepository(tx), NewAthleteRepository(tx), NewRecruiterRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
