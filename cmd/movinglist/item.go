package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Add, rename and remove items in a box",
	Long: `Items are addressed by box id and the item number shown by ` + "`movinglist ls`" + `.

Example:
  movinglist item add 3 Spatula
  movinglist item rename 3 1 Whisk
  movinglist item rm 3 2`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add <box-id> <name>",
	Short: "Add an item to the end of a box",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		boxID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := start(cmd); err != nil {
			return err
		}
		item, err := app.Dispatcher.AddItem(cmd.Context(), boxID, joinArgs(args[1:]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to box [%d]\n", item.Name, boxID)
		return nil
	},
}

var itemRenameCmd = &cobra.Command{
	Use:   "rename <box-id> <number> <name>",
	Short: "Rename the item at a position",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		boxID, err := parseID(args[0])
		if err != nil {
			return err
		}
		index, err := parsePosition(args[1])
		if err != nil {
			return err
		}
		if err := start(cmd); err != nil {
			return err
		}
		return app.Dispatcher.RenameItemAt(cmd.Context(), boxID, index, joinArgs(args[2:]))
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:   "rm <box-id> <number>",
	Short: "Remove the item at a position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		boxID, err := parseID(args[0])
		if err != nil {
			return err
		}
		index, err := parsePosition(args[1])
		if err != nil {
			return err
		}
		if err := start(cmd); err != nil {
			return err
		}
		return app.Dispatcher.DeleteItemAt(cmd.Context(), boxID, index)
	},
}

func init() {
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemRenameCmd)
	itemCmd.AddCommand(itemRemoveCmd)
}
