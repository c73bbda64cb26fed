package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errBadArgument = errors.New("bad argument")

var boxCmd = &cobra.Command{
	Use:   "box",
	Short: "Create, rename and delete boxes",
}

var boxAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an empty box",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := start(cmd); err != nil {
			return err
		}
		box, err := app.Dispatcher.CreateBox(cmd.Context(), joinArgs(args))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created box [%d] %s\n", box.ID, box.Name)
		return nil
	},
}

var boxRenameCmd = &cobra.Command{
	Use:   "rename <box-id> <name>",
	Short: "Rename a box",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := start(cmd); err != nil {
			return err
		}
		return app.Dispatcher.RenameBox(cmd.Context(), id, joinArgs(args[1:]))
	},
}

var boxRemoveCmd = &cobra.Command{
	Use:   "rm <box-id>",
	Short: "Delete a box and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := start(cmd); err != nil {
			return err
		}
		return app.Dispatcher.DeleteBox(cmd.Context(), id)
	},
}

func init() {
	boxCmd.AddCommand(boxAddCmd)
	boxCmd.AddCommand(boxRenameCmd)
	boxCmd.AddCommand(boxRemoveCmd)
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q is not a box id", errBadArgument, arg)
	}
	return uint(id), nil
}

// parsePosition turns the 1-based number shown by `ls` into an index.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not an item number", errBadArgument, arg)
	}
	return n - 1, nil
}
