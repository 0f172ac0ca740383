package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	var (
		name     string
		kind     string
		duration int
		calories float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new activity",
		Long:  "Record a new activity. The type defaults to EjercicioCardio, as in the menu.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := types.ParseKind(kind)
			if err != nil {
				return userError("%w", err)
			}
			act := types.Activity{
				Kind:            k,
				Name:            name,
				DurationMinutes: duration,
				CaloriesBurned:  calories,
			}
			return withSession(cmd, flags, readConfig, func(s *session) error {
				id, err := s.repo.Create(act)
				if err != nil {
					return sysError("Error al insertar actividad: %w", err)
				}
				if flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), types.Record{
						ID:              id,
						Name:            act.Name,
						Kind:            act.Kind.Label(),
						DurationMinutes: act.DurationMinutes,
						CaloriesBurned:  act.CaloriesBurned,
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Actividad '%s' registrada con éxito. (ID: %d)\n", act.Name, id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "activity name")
	cmd.Flags().StringVar(&kind, "kind", "cardio", "activity type: activity or cardio")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().Float64Var(&calories, "calories", 0, "calories burned (kcal)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
