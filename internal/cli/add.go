package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new ritual",
		Long: `Add a new ritual. Names are trimmed and lowercased; duplicates are rejected.

Example:
  ritual add "morning pages"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runAdd(opts *RootOptions, name string, cmd *cobra.Command) error {
	app, err := openApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	ritual, err := app.Engine.AddRitual(name)
	if err != nil {
		return WrapExitError(ExitFailure, "add ritual", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), ritual)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added ritual %q\n", ritual.Name)
	return nil
}

// NewRenameCommand creates the rename command.
func NewRenameCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a ritual, carrying its history along",
		Long: `Rename a ritual. Every ledger entry and milestone marker moves to the new
name in the same operation; history is never split between the two names.

Example:
  ritual rename draw sketch`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runRename(opts *RootOptions, oldName, newName string, cmd *cobra.Command) error {
	app, err := openApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Engine.RenameRitual(cmd.Context(), oldName, newName); err != nil {
		return WrapExitError(ExitFailure, "rename ritual", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "renamed %q to %q\n", oldName, newName)
	return nil
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a ritual and all of its history",
		Long: `Delete a ritual. All of its ledger entries and milestone markers are
removed as well; this cannot be undone.

Example:
  ritual remove mascot`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runRemove(opts *RootOptions, name string, cmd *cobra.Command) error {
	app, err := openApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Engine.RemoveRitual(cmd.Context(), name); err != nil {
		return WrapExitError(ExitFailure, "remove ritual", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %q and all its history\n", name)
	return nil
}
