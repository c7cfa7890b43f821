package cli

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/scoutline-api/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplicar o revertir migraciones de la base de datos",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplicar todas las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
				return err
			}
			return printVersion(cmd, cfg.DB.ConnectionString())
		},
	}

	down := &cobra.Command{
		Use:   "down [steps]",
		Short: "Revertir migraciones (por defecto 1; 0 revierte todas)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("steps inválido: %q", args[0])
				}
				steps = n
			}
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := postgres.MigrateDown(cfg.DB.ConnectionString(), steps); err != nil {
				return err
			}
			return printVersion(cmd, cfg.DB.ConnectionString())
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Mostrar la versión aplicada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			return printVersion(cmd, cfg.DB.ConnectionString())
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func printVersion(cmd *cobra.Command, url string) error {
	v, dirty, err := postgres.MigrationVersion(url)
	if err != nil {
		return err
	}
	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "versión %d (dirty)\n", v)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "versión %d\n", v)
	return nil
}
