package main

import (
	"MovingList/internal/models"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "ls [query]",
	Short: "List boxes and their items",
	Long: `List every box, newest first, with its items in the order they were packed.

A query keeps the boxes whose name, or any of whose items' names, contains it
(case-insensitive). Matching boxes are shown with all their items.

Example:
  movinglist ls
  movinglist ls spat`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := start(cmd); err != nil {
			return err
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		boxes := app.View(query)
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), boxes)
		}
		renderBoxes(cmd.OutOrStdout(), boxes)
		return nil
	},
}

type boxView struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func writeJSON(w io.Writer, boxes []models.Box) error {
	views := make([]boxView, 0, len(boxes))
	for _, box := range boxes {
		names := make([]string, 0, len(box.Items))
		for _, item := range box.Items {
			names = append(names, item.Name)
		}
		views = append(views, boxView{ID: box.ID, Name: box.Name, Items: names})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

// renderBoxes numbers items from 1, matching the positions `item rename`
// and `item rm` accept.
func renderBoxes(w io.Writer, boxes []models.Box) {
	if len(boxes) == 0 {
		fmt.Fprintln(w, "No boxes")
		return
	}
	for i, box := range boxes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%d] %s (%s)\n", box.ID, box.Name, pluralItems(len(box.Items)))
		for j, item := range box.Items {
			fmt.Fprintf(w, "  %d. %s\n", j+1, item.Name)
		}
	}
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// joinArgs lets names be given without quotes.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
