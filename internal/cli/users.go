package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

func newUsersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Consultar usuarios y cambiar roles",
	}

	var role string
	var limit, offset int
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar usuarios, opcionalmente filtrados por rol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := e.adminUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := uc.ListUsers(cmd.Context(), role, dto.PageRequest{Limit: limit, Offset: offset})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tROL\tALTA")
			for _, u := range out.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&role, "role", "", "filtrar por rol (USER, ATHLETE, RECRUITER, ADMIN)")
	list.Flags().IntVar(&limit, "limit", 50, "máximo de filas")
	list.Flags().IntVar(&offset, "offset", 0, "desplazamiento")

	setRole := &cobra.Command{
		Use:   "set-role <email> <role>",
		Short: "Cambiar el rol guardado de un usuario",
		Long: `Cambia users.role y la metadata de rol del usuario. El token vigente del
usuario conserva el rol anterior hasta que vuelva a iniciar sesión.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := e.db(cmd.Context())
			if err != nil {
				return err
			}
			email := strings.ToLower(strings.TrimSpace(args[0]))
			u, err := postgres.NewUserRepository(pool).GetByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("usuario no encontrado: %s", email)
			}
			uc, err := e.adminUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := uc.UpdateRole(cmd.Context(), u.ID, dto.UpdateRoleRequest{Role: args[1]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ahora es %s\n", out.Email, out.Role)
			return nil
		},
	}

	cmd.AddCommand(list, setRole)
	return cmd
}

func (e *env) adminUseCase(cmd *cobra.Command) (*usecase.AdminUseCase, error) {
	pool, err := e.db(cmd.Context())
	if err != nil {
		return nil, err
	}
	return usecase.NewAdminUseCase(postgres.NewUserRepository(pool), e.log.Component("scoutctl")), nil
}
