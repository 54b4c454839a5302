package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ritual/internal/datekey"
	"github.com/roach88/ritual/internal/engine"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Week string
}

type ritualStats struct {
	Name        string `json:"name"`
	Streak      int    `json:"streak"`
	MonthToDate int    `json:"month_to_date_percent"`
}

type statsResult struct {
	Rituals []ritualStats        `json:"rituals"`
	Week    engine.WeeklySummary `json:"week"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion percentages and the weekly summary",
		Long: `Show per-ritual stats and an aggregate weekly summary.

The month-to-date percentage counts only days since the ritual was added;
the weekly summary skips days that are still in the future.

Example:
  ritual stats
  ritual stats --week 2026-08-23`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Week, "week", "", "any day of the week to summarize (YYYY-MM-DD, default this week)")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	app, err := openApp(opts.RootOptions)
	if err != nil {
		return err
	}
	defer app.Close()

	anchor := app.now()
	if opts.Week != "" {
		anchor, err = datekey.Parse(opts.Week)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid week", err)
		}
	}

	today := app.now()
	result := statsResult{
		Week: app.Engine.WeeklyCompletionSummary(anchor),
	}
	for _, r := range app.Engine.Rituals() {
		result.Rituals = append(result.Rituals, ritualStats{
			Name:        r.Name,
			Streak:      app.Engine.StreakNow(r.Name),
			MonthToDate: app.Engine.CompletionPercentage(r.Name, datekey.MonthStart(today), today),
		})
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	for _, rs := range result.Rituals {
		fmt.Fprintf(out, "%-24s %3d%% this month, streak %d\n", rs.Name, rs.MonthToDate, rs.Streak)
	}
	w := result.Week
	fmt.Fprintf(out, "week %s..%s: %d/%d done (%d%%), %d perfect day(s)\n",
		w.WeekStart, w.WeekEnd, w.Completed, w.Possible, w.Percent, w.PerfectDays)
	return nil
}
