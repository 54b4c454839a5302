package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	On string
}

type ritualRow struct {
	Name   string `json:"name"`
	Done   bool   `json:"done"`
	Streak int    `json:"streak"`
}

type listResult struct {
	Date    string      `json:"date"`
	Perfect bool        `json:"perfect"`
	Rituals []ritualRow `json:"rituals"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show rituals with completion state and streaks",
		Long: `Show every ritual with its completion state for a day and its current streak.

Example:
  ritual list
  ritual list --on 2026-08-30`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.On, "on", "", "day to show (YYYY-MM-DD, default today)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	app, err := openApp(opts.RootOptions)
	if err != nil {
		return err
	}
	defer app.Close()

	key, err := app.resolveDateKey(opts.On)
	if err != nil {
		return err
	}

	completed := app.Engine.CompletedOn(key)
	result := listResult{
		Date:    key,
		Perfect: app.Engine.IsPerfectDay(key),
	}
	for _, r := range app.Engine.Rituals() {
		result.Rituals = append(result.Rituals, ritualRow{
			Name:   r.Name,
			Done:   slices.Contains(completed, r.Name),
			Streak: app.Engine.StreakNow(r.Name),
		})
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Date)
	if len(result.Rituals) == 0 {
		fmt.Fprintln(out, "  no rituals defined - try: ritual add <name>")
		return nil
	}
	for _, row := range result.Rituals {
		mark := " "
		if row.Done {
			mark = "x"
		}
		fmt.Fprintf(out, "  [%s] %-24s streak %d\n", mark, row.Name, row.Streak)
	}
	if result.Perfect {
		fmt.Fprintln(out, "  perfect day!")
	}
	return nil
}
