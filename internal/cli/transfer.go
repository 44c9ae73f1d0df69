package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tgienger/stt/internal/storage"
	"golang.org/x/term"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, database, err := openSession(app)
			if err != nil {
				return err
			}
			defer database.Close()

			path := out
			if path == "" {
				path = filepath.Join(app.Config.ExportDir, storage.ExportFileName(time.Now()))
			}
			forest := session.Forest()
			if err := storage.Export(path, forest); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d root tasks to %s\n", len(forest), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: <export_dir>/stt-export-YYYY-MM-DD.json)")
	return cmd
}

var errNotConfirmed = errors.New("import cancelled")

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all tasks with the contents of a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := storage.ReadSnapshot(args[0])
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			if !yes {
				if !isTerminal() {
					return errors.New("refusing to replace tasks without confirmation; pass --yes")
				}
				ok, err := confirmReplace(len(forest))
				if err != nil {
					return err
				}
				if !ok {
					return errNotConfirmed
				}
			}

			session, database, err := openSession(app)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := session.Import(forest); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d root tasks\n", len(forest))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace without asking")
	return cmd
}

// isTerminal checks if stdin is connected to a terminal
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form, switching to accessible mode when ACCESSIBLE is set
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if os.Getenv("ACCESSIBLE") != "" {
		form = form.WithAccessible(true)
	}
	return form
}

// confirmReplace asks before the current forest is discarded.
var confirmReplace = func(roots int) (bool, error) {
	var ok bool
	form := newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Replace all tasks with %d imported root tasks?", roots)).
				Description("Current tasks and their tracked time will be lost").
				Value(&ok).
				Affirmative("Yes, replace").
				Negative("No"),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
