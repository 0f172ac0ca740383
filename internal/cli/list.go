package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, readConfig, func(s *session) error {
				records, err := s.repo.List()
				if err != nil {
					return sysError("Error al leer actividades: %w", err)
				}
				if flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), records)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No hay actividades registradas.")
					return nil
				}
				for _, r := range records {
					fmt.Fprintln(cmd.OutOrStdout(), r.String())
				}
				return nil
			})
		},
	}
}
