package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/activitylog/internal/shell"
)

// runMenu runs the interactive shell against the configured database.
func runMenu(cmd *cobra.Command, flags *rootFlags) error {
	return withSession(cmd, flags, ensureConfig, func(s *session) error {
		s.log.Debug("starting interactive menu")
		sh := shell.New(s.repo, cmd.InOrStdin(), cmd.OutOrStdout(),
			shell.WithClearScreen(s.cfg.ClearScreen))
		if err := sh.Run(); err != nil {
			return sysError("menu: %w", err)
		}
		return nil
	})
}
