package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/stt/internal/config"
	"github.com/tgienger/stt/internal/db"
	"github.com/tgienger/stt/internal/storage"
	"github.com/tgienger/stt/internal/timer"
	"github.com/tgienger/stt/internal/tracker"
	"github.com/tgienger/stt/internal/ui"
)

// Version information, set by main from ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type App struct {
	DBPath string
	Config config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "stt",
		Short:        "Simple task tracker: nested tasks, estimates and a stopwatch",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  stt

  # Print the task tree with totals
  stt list

  # Snapshot and restore
  stt export -o backup.json
  stt import backup.json --yes

  # Time a task from the terminal until ctrl+c
  stt track <task-id>
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		app.Config = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.DBPath, "db", envOr("STT_DB", ""), "Path to the SQLite database (default: config db_path, then the XDG data dir)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newTrackCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(app *App) error {
	// Anything logged while the TUI owns the terminal goes to a file.
	if dir := config.StateDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := tea.LogToFile(filepath.Join(dir, "stt.log"), "stt")
			if err == nil {
				defer f.Close()
			}
		}
	}

	session, database, err := openSession(app)
	if err != nil {
		return err
	}
	defer database.Close()

	return ui.Run(session, database, app.Config.ExportDir)
}

// openSession opens the database and loads the forest. The caller closes
// the returned database.
func openSession(app *App) (*tracker.Session, *db.DB, error) {
	path := app.DBPath
	if path == "" {
		path = app.Config.DBPath
	}
	database, err := db.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	session, err := tracker.Open(storage.NewAdapter(database), timer.WithSaveEvery(app.Config.SaveEvery))
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return session, database, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
