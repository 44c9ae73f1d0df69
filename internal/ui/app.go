package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/stt/internal/tracker"
	"github.com/tgienger/stt/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewTree View = iota
	ViewSummary
)

type App struct {
	session     *tracker.Session
	currentView View
	taskTree    *views.TaskTreeView
	summary     *views.SummaryView
	width       int
	height      int
}

// Creates a new application. settings may be nil.
func NewApp(session *tracker.Session, settings views.Settings, exportDir string) *App {
	return &App{
		session:     session,
		currentView: ViewTree,
		taskTree:    views.NewTaskTreeView(session, settings, exportDir),
		summary:     views.NewSummaryView(session),
	}
}

// CurrentView reports which view is shown
func (a *App) CurrentView() View { return a.currentView }

func (a *App) Init() tea.Cmd {
	return a.taskTree.Init()
}

func (a *App) resize() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.summary.Update(msg)
		_, cmd := a.taskTree.Update(msg)
		return a, cmd

	case views.TickMsg:
		// Ticks belong to the tree view whichever view is showing
		_, cmd := a.taskTree.Update(msg)
		if a.currentView == ViewSummary {
			a.summary.Refresh()
		}
		return a, cmd

	case views.ShowSummary:
		a.currentView = ViewSummary
		a.summary.Refresh()
		return a, a.resize()

	case views.BackToTree:
		a.currentView = ViewTree
		return a, a.resize()

	case views.QuitRequested:
		return a, a.taskTree.Quit()

	case views.SelectedRoot:
		a.currentView = ViewTree
		a.taskTree.SelectByID(msg.ID)
		return a, a.resize()
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewTree:
		_, cmd = a.taskTree.Update(msg)
	case ViewSummary:
		_, cmd = a.summary.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	if a.currentView == ViewSummary {
		return a.summary.View()
	}
	return a.taskTree.View()
}

// Run starts the interactive program and blocks until it exits. The timer is
// stopped on the way out so accumulated time is saved.
func Run(session *tracker.Session, settings views.Settings, exportDir string) error {
	defer session.StopTimer()
	p := tea.NewProgram(NewApp(session, settings, exportDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
