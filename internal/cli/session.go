package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/scoutline-api/internal/domain/access"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/identity"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// sessionReport salida de session inspect.
type sessionReport struct {
	Valid           bool   `json:"valid"`
	Session         any    `json:"session,omitempty"`
	NeedsStoredRole bool   `json:"needs_stored_role"`
	Home            string `json:"home,omitempty"`
}

func newSessionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Diagnóstico de sesiones",
	}

	var storedRole, output string
	inspect := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Mostrar la sesión que la API resolvería para un token",
		Long: `Valida el token con JWT_SECRET y aplica la misma resolución de rol que la API:
rol de la metadata, si falta el rol guardado (--stored-role) y si no USER.
No consulta la base de datos.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no configurado")
			}
			raw, err := identity.NewJWTProvider(cfg.JWT).CurrentUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			report := sessionReport{}
			if raw != nil {
				s := access.ResolveSession(raw, storedRole)
				report.Valid = s != nil
				report.Session = s
				report.NeedsStoredRole = access.NeedsStoredRole(raw)
				if s != nil {
					report.Home = access.RoleHomePath(s.Role)
				}
			}
			return writeReport(cmd, output, report)
		},
	}
	inspect.Flags().StringVar(&storedRole, "stored-role", "", "rol guardado en users.role, si se conoce")
	inspect.Flags().StringVarP(&output, "output", "o", "json", "formato de salida: json o yaml")

	cmd.AddCommand(inspect)
	return cmd
}

func writeReport(cmd *cobra.Command, format string, report sessionReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("escribir salida: %w", err)
		}
	case "yaml":
		// yaml no lee tags json: la sesión se pasa por un mapa para conservar sus nombres
		var doc map[string]any
		b, err := json.Marshal(report)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("escribir salida: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("formato desconocido %q (json, yaml)", format)
	}
	return nil
}
