package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, flags, readConfig, func(s *session) error {
				n, err := s.repo.Delete(id)
				if err != nil {
					return sysError("Error al eliminar actividad: %w", err)
				}
				if flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), map[string]int64{"id": id, "deleted": n})
				}
				if n == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No existe una actividad con ID %d.\n", id)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Actividad eliminada con éxito.")
				return nil
			})
		},
	}
}
