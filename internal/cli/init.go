package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and database",
		Long:  "Write config.yaml if it is missing and create the activities table in the database file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, ensureConfig, func(s *session) error {
				if err := s.repo.Store().EnsureSchema(); err != nil {
					return sysError("initialize storage: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "config: %s\n", filepath.Join(s.configDir, configFileExt))
				fmt.Fprintf(out, "database: %s\n", s.repo.Store().Path())
				fmt.Fprintln(out, "activitylog initialized successfully")
				return nil
			})
		},
	}
}
