package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/storage"
	"github.com/tgienger/stt/internal/tree"
)

func newListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task tree with estimated and spent time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, database, err := openSession(app)
			if err != nil {
				return err
			}
			defer database.Close()

			forest := session.Forest()
			if asJSON {
				data, err := storage.EncodePretty(forest)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			writeTree(cmd.OutOrStdout(), session.Store())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the forest as JSON")
	return cmd
}

// writeTree prints one line per task, collapsed subtrees included.
func writeTree(w io.Writer, store *tree.Store) {
	forest := store.Roots()
	if len(forest) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	store.Walk(func(t *models.Task, depth int) bool {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		flag := ""
		if tree.OverTime(t) {
			flag = "  over"
		}
		fmt.Fprintf(w, "%s%s %s  %s / %s%s  (%s)\n",
			strings.Repeat("  ", depth), check, t.Name,
			tree.FormatSeconds(tree.TotalActual(t)),
			tree.FormatMinutes(tree.TotalEstimated(t)),
			flag, t.ID,
		)
		return true
	})
	fmt.Fprintf(w, "\ntotal: %s / %s\n",
		tree.FormatSeconds(tree.ForestActual(forest)),
		tree.FormatMinutes(tree.ForestEstimated(forest)),
	)
}
