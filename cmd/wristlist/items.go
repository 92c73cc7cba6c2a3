package main

import (
	"fmt"
	"strings"

	"wristlist/internal/checklist"
	"wristlist/internal/errors"
	"wristlist/internal/log"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

// withStore runs fn against the sqlite store and always closes it.
func (a *app) withStore(fn func(store *checklist.SQLiteStore) error) error {
	store, err := a.openSQLite()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Deinit(); err != nil {
			log.LogWithError(err).Error("Failed to close checklist store")
		}
	}()
	return fn(store)
}

// addCmd appends an item, as a successful dictation would
func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add an item to the checklist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return a.withStore(func(store *checklist.SQLiteStore) error {
				if err := store.AddItem(name); err != nil {
					if errors.IsChecklistFull(err) {
						return fmt.Errorf("checklist is full (%d items)", a.cfg.Checklist.MaxItems)
					}
					return err
				}
				item, err := store.ItemByID(store.ItemCount() - 1)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successText("Added: "+item.Name))
				return nil
			})
		},
	}
}

// listCmd prints the items in the order the watch face shows them
func listCmd(a *app) *cobra.Command {
	var match string
	var checkedOnly bool
	var showAge bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist items, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var g glob.Glob
			if match != "" {
				var err error
				g, err = glob.Compile(strings.ToLower(match))
				if err != nil {
					return fmt.Errorf("invalid --match pattern %q: %w", match, err)
				}
			}

			return a.withStore(func(store *checklist.SQLiteStore) error {
				out := cmd.OutOrStdout()
				shown := 0
				for id := store.ItemCount() - 1; id >= 0; id-- {
					item, err := store.ItemByID(id)
					if err != nil {
						return err
					}
					if checkedOnly && !item.IsChecked {
						continue
					}
					if g != nil && !g.Match(strings.ToLower(item.Name)) {
						continue
					}
					line := formatItem(item)
					if showAge {
						if added, err := store.AddedAt(id); err == nil && !added.IsZero() {
							line += " " + infoText("("+humanize.Time(added)+")")
						}
					}
					fmt.Fprintln(out, line)
					shown++
				}
				if shown == 0 {
					fmt.Fprintln(out, infoText("No items"))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "only show items whose name matches a glob, e.g. '*milk*'")
	cmd.Flags().BoolVar(&checkedOnly, "checked", false, "only show checked items")
	cmd.Flags().BoolVar(&showAge, "age", false, "show when each item was added")
	return cmd
}

func formatItem(item checklist.Item) string {
	if item.IsChecked {
		return "[x] " + checkedStyle.Render(item.Name)
	}
	return "[ ] " + item.Name
}

// clearCmd deletes the checked items
func clearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete completed items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *checklist.SQLiteStore) error {
				n, err := store.DeleteCompleted()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successText(checklist.DeletedMessage(n)))
				return nil
			})
		},
	}
}
