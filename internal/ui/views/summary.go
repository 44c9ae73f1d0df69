package views

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/tracker"
	"github.com/tgienger/stt/internal/tree"
	"github.com/tgienger/stt/internal/ui/keys"
	"github.com/tgienger/stt/internal/ui/styles"
)

type rootItem struct {
	task *models.Task
}

func (i rootItem) Title() string { return i.task.Name }

func (i rootItem) Description() string {
	done, total := tree.Progress(i.task)
	return fmt.Sprintf("estimated %s · spent %s · %d/%d done",
		tree.FormatMinutes(tree.TotalEstimated(i.task)),
		tree.FormatSeconds(tree.TotalActual(i.task)),
		done, total,
	)
}

func (i rootItem) FilterValue() string { return i.task.Name }

type rootDelegate struct {
	styles *styles.Styles
	width  int
}

func (d rootDelegate) Height() int                               { return 2 }
func (d rootDelegate) Spacing() int                              { return 1 }
func (d rootDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rootDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(rootItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	var titleStyle, descStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		descStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		descStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}
	if tree.OverTime(r.task) {
		descStyle = descStyle.Foreground(styles.Current.Error)
	}

	title := r.Title()
	if r.task.Completed {
		title = "✓ " + title
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(truncate(title, width)), descStyle.Render(r.Description()))
}

// SelectedRoot asks the app to show the tree with the given root selected
type SelectedRoot struct {
	ID string
}

// QuitRequested asks the app to quit through the tree view
type QuitRequested struct{}

// BackToTree asks the app to return to the tree view
type BackToTree struct{}

// SummaryView lists root tasks with their totals and progress
type SummaryView struct {
	session  *tracker.Session
	list     list.Model
	delegate *rootDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int
}

// NewSummaryView creates the summary view
func NewSummaryView(session *tracker.Session) *SummaryView {
	s := styles.NewStyles()
	delegate := &rootDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Summary"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	v := &SummaryView{
		session:  session,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
	}
	v.Refresh()
	return v
}

// Refresh reloads the list items from the forest, keeping the selection
func (v *SummaryView) Refresh() {
	forest := v.session.Forest()
	items := make([]list.Item, len(forest))
	for i, t := range forest {
		items[i] = rootItem{task: t}
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx < len(items) {
		v.list.Select(idx)
	}
}

// Init initializes the view
func (v *SummaryView) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (v *SummaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-8)
		return v, nil

	case tea.KeyMsg:
		// Let the list own keys while the filter is being typed
		if v.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, func() tea.Msg { return QuitRequested{} }
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Summary):
			if v.list.FilterState() == list.FilterApplied {
				v.list.ResetFilter()
				return v, nil
			}
			return v, func() tea.Msg { return BackToTree{} }
		case key.Matches(msg, v.keys.Enter):
			if item, ok := v.list.SelectedItem().(rootItem); ok {
				id := item.task.ID
				return v, func() tea.Msg { return SelectedRoot{ID: id} }
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the view
func (v *SummaryView) View() string {
	s := v.styles
	if len(v.list.Items()) == 0 {
		contentWidth := styles.ContentWidth(v.width)
		content := lipgloss.JoinVertical(lipgloss.Center,
			s.Title.Render("No Tasks"),
			"",
			s.TitleMuted.Render("Press esc to go back and 'n' to create one"),
		)
		centered := lipgloss.Place(contentWidth, v.height,
			lipgloss.Center, lipgloss.Center,
			content,
		)
		return styles.CenterView(centered, v.width, v.height)
	}

	forest := v.session.Forest()
	totals := s.TitleMuted.Render(fmt.Sprintf("%d root tasks · estimated %s · spent %s",
		len(forest),
		tree.FormatMinutes(tree.ForestEstimated(forest)),
		tree.FormatSeconds(tree.ForestActual(forest)),
	))

	help := s.Help.Render(fmt.Sprintf("%s open • %s filter • %s back • %s quit",
		s.HelpKey.Render("↵"),
		s.HelpKey.Render("/"),
		s.HelpKey.Render("esc"),
		s.HelpKey.Render("q"),
	))

	content := v.list.View() + "\n" + totals + "\n" + help
	return styles.CenterView(content, v.width, v.height)
}
