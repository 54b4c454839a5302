package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ritual/internal/engine"
	"github.com/roach88/ritual/internal/state"
)

// NewIdeasCommand creates the ideas command group.
func NewIdeasCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Manage the idea backlog",
		Long: `Manage the idea backlog: free-form notes with a done flag, kept alongside
your rituals but with their own lifecycle.`,
	}

	cmd.AddCommand(newIdeasListCommand(rootOpts))
	cmd.AddCommand(newIdeasAddCommand(rootOpts))
	cmd.AddCommand(newIdeasDoneCommand(rootOpts))
	cmd.AddCommand(newIdeasRemoveCommand(rootOpts))

	return cmd
}

type ideaRow struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	AgeDays int    `json:"age_days"`
}

func newIdeasListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List ideas, incomplete first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			var rows []ideaRow
			for _, idea := range app.Engine.Ideas() {
				rows = append(rows, ideaRow{
					ID:      idea.ID,
					Text:    idea.Text,
					Done:    idea.Completed,
					AgeDays: engine.IdeaAgeDays(idea, app.now()),
				})
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "no ideas yet - try: ritual ideas add <text>")
				return nil
			}
			for _, row := range rows {
				mark := " "
				if row.Done {
					mark = "x"
				}
				age := ""
				if row.AgeDays > 0 {
					age = fmt.Sprintf(" (%d)", row.AgeDays)
				}
				fmt.Fprintf(out, "  [%s] %s  %s%s\n", mark, shortID(row.ID), row.Text, age)
			}
			return nil
		},
	}
}

func newIdeasAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "add <text>...",
		Short:         "Add an idea",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			idea, err := app.Engine.AddIdea(strings.Join(args, " "))
			if err != nil {
				return WrapExitError(ExitFailure, "add idea", err)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), idea)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added idea %s\n", shortID(idea.ID))
			return nil
		},
	}
}

func newIdeasDoneCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "done <id>",
		Short:         "Toggle an idea's done flag",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := matchIdeaID(app, args[0])
			if err != nil {
				return err
			}
			done, err := app.Engine.ToggleIdea(id)
			if err != nil {
				return WrapExitError(ExitFailure, "toggle idea", err)
			}
			if done {
				fmt.Fprintf(cmd.OutOrStdout(), "idea %s done\n", shortID(id))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "idea %s reopened\n", shortID(id))
			}
			return nil
		},
	}
}

func newIdeasRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <id>",
		Short:         "Delete an idea",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := matchIdeaID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Engine.RemoveIdea(id); err != nil {
				return WrapExitError(ExitFailure, "remove idea", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed idea %s\n", shortID(id))
			return nil
		},
	}
}

// matchIdeaID resolves a full id or unique prefix to a stored idea id.
func matchIdeaID(app *App, prefix string) (string, error) {
	var matches []state.Idea
	for _, idea := range app.Engine.Ideas() {
		if strings.HasPrefix(idea.ID, prefix) {
			matches = append(matches, idea)
		}
	}
	switch len(matches) {
	case 0:
		return "", NewExitError(ExitFailure, fmt.Sprintf("no idea matches %q", prefix))
	case 1:
		return matches[0].ID, nil
	default:
		return "", NewExitError(ExitCommandError, fmt.Sprintf("id prefix %q is ambiguous (%d matches)", prefix, len(matches)))
	}
}

// shortID trims a UUID to the prefix users actually type.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
