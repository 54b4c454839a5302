package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
)

// Celebration lines shown when a toggle completes a perfect day.
var celebrations = []string{
	"You crushed it today!",
	"All rituals complete!",
	"Perfect day achieved!",
	"You showed up for yourself!",
	"On fire! Keep it going!",
	"Magic happens with consistency!",
}

// DoneOptions holds flags for the done command.
type DoneOptions struct {
	*RootOptions
	On string
}

type doneResult struct {
	Date        string `json:"date"`
	Ritual      string `json:"ritual"`
	Completed   bool   `json:"completed"`
	Streak      int    `json:"streak"`
	Milestones  []int  `json:"milestones,omitempty"`
	Perfect     bool   `json:"perfect"`
	Celebration string `json:"celebration,omitempty"`
}

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DoneOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "done <name>",
		Short: "Toggle a ritual's completion for a day",
		Long: `Toggle a ritual's completion. Running it again on the same day undoes the
mark. Completing a day may announce streak milestones; completing the last
ritual of today earns a celebration.

Example:
  ritual done draw
  ritual done draw --on 2026-08-30`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.On, "on", "", "day to toggle (YYYY-MM-DD, default today)")

	return cmd
}

func runDone(opts *DoneOptions, name string, cmd *cobra.Command) error {
	app, err := openApp(opts.RootOptions)
	if err != nil {
		return err
	}
	defer app.Close()

	key, err := app.resolveDateKey(opts.On)
	if err != nil {
		return err
	}

	completed, err := app.Engine.Toggle(key, name)
	if err != nil {
		return WrapExitError(ExitFailure, "toggle completion", err)
	}

	result := doneResult{
		Date:      key,
		Ritual:    name,
		Completed: completed,
		Streak:    app.Engine.StreakNow(name),
	}
	if completed {
		// Toggling a past day can also change today's streak, so the
		// milestone check runs after every completing toggle.
		fired, err := app.Engine.CheckMilestones(cmd.Context(), name)
		if err != nil {
			return WrapExitError(ExitFailure, "check milestones", err)
		}
		result.Milestones = fired
		if key == app.todayKey() && app.Engine.IsPerfectDay(key) {
			result.Perfect = true
			result.Celebration = celebrations[rand.Intn(len(celebrations))]
		}
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if completed {
		fmt.Fprintf(out, "marked %q done on %s (streak %d)\n", name, key, result.Streak)
	} else {
		fmt.Fprintf(out, "unmarked %q on %s (streak %d)\n", name, key, result.Streak)
	}
	for _, th := range result.Milestones {
		fmt.Fprintf(out, "milestone: %d-day streak!\n", th)
	}
	if result.Perfect {
		fmt.Fprintf(out, "%s\n", result.Celebration)
	}
	return nil
}
