package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

func newUpdateCmd(flags *rootFlags) *cobra.Command {
	var (
		name     string
		duration int
		calories float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Modify fields of an activity",
		Long: `Modify the name, duration or calories of an activity. Only flags that are
given are applied; empty or zero values leave the field unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch types.ActivityPatch
			if cmd.Flags().Changed("name") {
				patch = patch.WithName(name)
			}
			if cmd.Flags().Changed("duration") {
				patch = patch.WithDuration(duration)
			}
			if cmd.Flags().Changed("calories") {
				patch = patch.WithCalories(calories)
			}

			return withSession(cmd, flags, readConfig, func(s *session) error {
				n, err := s.repo.Update(id, patch)
				if err != nil {
					return sysError("Error al actualizar actividad: %w", err)
				}
				if flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), map[string]int64{"id": id, "updated": n})
				}
				if n == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Ninguna actividad fue modificada.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Actividad actualizada con éxito.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new activity name")
	cmd.Flags().IntVar(&duration, "duration", 0, "new duration in minutes")
	cmd.Flags().Float64Var(&calories, "calories", 0, "new calories burned (kcal)")

	return cmd
}
