package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ritual/internal/state"
)

type streakResult struct {
	Ritual     string `json:"ritual"`
	Streak     int    `json:"streak"`
	Milestones []int  `json:"milestones_earned,omitempty"`
}

// NewStreakCommand creates the streak command.
func NewStreakCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "streak <name>",
		Short:         "Show a ritual's current streak and earned milestones",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStreak(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runStreak(opts *RootOptions, name string, cmd *cobra.Command) error {
	app, err := openApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.Engine.HasRitual(name) {
		return NewExitError(ExitFailure, fmt.Sprintf("no such ritual: %q", name))
	}

	earned, err := app.Markers.FiredThresholds(cmd.Context(), state.NormalizeName(name))
	if err != nil {
		return WrapExitError(ExitFailure, "read milestones", err)
	}

	result := streakResult{
		Ritual:     name,
		Streak:     app.Engine.StreakNow(name),
		Milestones: earned,
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d day streak\n", result.Ritual, result.Streak)
	if len(result.Milestones) > 0 {
		fmt.Fprintf(out, "milestones earned: %v\n", result.Milestones)
	}
	return nil
}
