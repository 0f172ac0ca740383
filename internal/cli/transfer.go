package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write all activities to a JSON lines file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, readConfig, func(s *session) error {
				n, err := s.repo.Export(args[0])
				if err != nil {
					return sysError("export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activities to %s\n", n, args[0])
				return nil
			})
		},
	}
}

func newImportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append activities from a JSON lines file",
		Long: `Append activities from a JSON lines file written by export. Records get new
ids; lines that cannot be decoded or carry an unknown type are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, readConfig, func(s *session) error {
				n, err := s.repo.Import(args[0])
				if err != nil {
					return sysError("import: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d activities from %s\n", n, args[0])
				return nil
			})
		},
	}
}
