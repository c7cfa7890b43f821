package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/postgres"
	"github.com/jhoicas/scoutline-api/pkg/config"
	"github.com/jhoicas/scoutline-api/pkg/logger"
	"github.com/spf13/cobra"
)

// env dependencias compartidas por los subcomandos. Config y pool se abren bajo demanda
// para que comandos sin base de datos (session inspect) no necesiten conexión.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func (e *env) config() (*config.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	e.cfg = cfg
	return cfg, nil
}

func (e *env) db(ctx context.Context) (*pgxpool.Pool, error) {
	if e.pool != nil {
		return e.pool, nil
	}
	cfg, err := e.config()
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	e.pool = pool
	return pool, nil
}

func (e *env) close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// NewRootCmd arma el árbol de comandos de scoutctl.
func NewRootCmd() *cobra.Command {
	e := &env{}
	var logLevel string

	root := &cobra.Command{
		Use:   "scoutctl",
		Short: "Herramientas de operación de la API de scouting",
		Long: `scoutctl agrupa tareas de operación que no pasan por HTTP:

  migrate   aplicar o revertir las migraciones embebidas
  users     listar usuarios y cambiar roles
  session   inspeccionar cómo se resuelve la sesión de un token`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			e.log = logger.New(logger.Config{Env: "development", Level: logLevel, Out: cmd.ErrOrStderr()})
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			e.close()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nivel de log (trace, debug, info, warn, error)")

	root.AddCommand(newMigrateCmd(e), newUsersCmd(e), newSessionCmd(e))
	return root
}

// ExecuteContext ejecuta scoutctl con el contexto dado.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
