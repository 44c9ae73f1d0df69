package views

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/storage"
	"github.com/tgienger/stt/internal/timer"
	"github.com/tgienger/stt/internal/tracker"
	"github.com/tgienger/stt/internal/tree"
	"github.com/tgienger/stt/internal/ui/keys"
	"github.com/tgienger/stt/internal/ui/styles"
)

// LastTaskKey is the settings key remembering the selected task between runs
const LastTaskKey = "last_task_id"

// Settings stores small UI preferences
type Settings interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// TickMsg is one timer period for the run identified by Epoch
type TickMsg struct {
	Epoch uint64
}

func scheduleTick(epoch uint64) tea.Cmd {
	return tea.Tick(timer.Interval, func(time.Time) tea.Msg {
		return TickMsg{Epoch: epoch}
	})
}

// ShowSummary asks the app to switch to the summary view
type ShowSummary struct{}

// formKind says what the edit form will do on save
type formKind int

const (
	formNewRoot formKind = iota
	formNewChild
	formEdit
)

type row struct {
	task  *models.Task
	depth int
}

// TaskTreeView shows the task forest as an indented, foldable tree
type TaskTreeView struct {
	session   *tracker.Session
	settings  Settings
	exportDir string
	styles    *styles.Styles
	keys      keys.KeyMap

	width  int
	height int

	rows    []row
	cursor  int
	scrollY int

	// Task creation/editing
	editing      bool
	editKind     formKind
	editTargetID string // parent for new subtasks, the task itself when editing
	editName     textinput.Model
	editEstimate textinput.Model
	editFocusIdx int // 0=name, 1=estimate, 2=save
	editErr      string

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	// Import: path prompt, then confirmation
	importing        bool
	importPath       textinput.Model
	confirmingImport bool
	pendingImport    models.Forest

	showHelpPopup bool

	status      string
	statusIsErr bool
}

// NewTaskTreeView creates the tree view. settings may be nil.
func NewTaskTreeView(session *tracker.Session, settings Settings, exportDir string) *TaskTreeView {
	editName := textinput.New()
	editName.Placeholder = "Task name"
	editName.CharLimit = 200

	editEstimate := textinput.New()
	editEstimate.Placeholder = "0"
	editEstimate.CharLimit = 5

	importPath := textinput.New()
	importPath.Placeholder = "path/to/export.json"
	importPath.CharLimit = 500

	if exportDir == "" {
		exportDir = "."
	}

	v := &TaskTreeView{
		session:      session,
		settings:     settings,
		exportDir:    exportDir,
		styles:       styles.NewStyles(),
		keys:         keys.DefaultKeyMap(),
		editName:     editName,
		editEstimate: editEstimate,
		importPath:   importPath,
	}
	v.refresh()
	if settings != nil {
		if id, err := settings.GetSetting(LastTaskKey); err == nil && id != "" {
			v.SelectByID(id)
		}
	}
	return v
}

// Init initializes the view
func (v *TaskTreeView) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible rows from the forest
func (v *TaskTreeView) refresh() {
	v.rows = v.rows[:0]
	v.session.Store().Walk(func(t *models.Task, depth int) bool {
		v.rows = append(v.rows, row{task: t, depth: depth})
		return !t.Collapsed
	})
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.ensureVisible()
}

// Selected returns the task under the cursor
func (v *TaskTreeView) Selected() *models.Task {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil
	}
	return v.rows[v.cursor].task
}

// SelectByID moves the cursor to id, expanding collapsed ancestors.
func (v *TaskTreeView) SelectByID(id string) bool {
	store := v.session.Store()
	if store.Find(id) == nil {
		return false
	}
	expanded := false
	for p := store.FindParent(id); p != nil; p = store.FindParent(p.ID) {
		if p.Collapsed {
			p.Collapsed = false
			expanded = true
		}
	}
	if expanded {
		v.save()
	}
	v.refresh()
	for i, r := range v.rows {
		if r.task.ID == id {
			v.cursor = i
			v.ensureVisible()
			return true
		}
	}
	return false
}

// Quit stops the timer, remembers the selection and ends the program
func (v *TaskTreeView) Quit() tea.Cmd {
	v.session.StopTimer()
	v.RememberSelection()
	return tea.Quit
}

// RememberSelection stores the selected task id for the next run
func (v *TaskTreeView) RememberSelection() {
	if v.settings == nil {
		return
	}
	id := ""
	if t := v.Selected(); t != nil {
		id = t.ID
	}
	if err := v.settings.SetSetting(LastTaskKey, id); err != nil {
		log.Printf("warning: failed to remember selected task: %v", err)
	}
}

func (v *TaskTreeView) setStatus(msg string) {
	v.status = msg
	v.statusIsErr = false
}

func (v *TaskTreeView) setError(err error) {
	v.status = err.Error()
	v.statusIsErr = true
}

func (v *TaskTreeView) save() {
	if err := v.session.Save(); err != nil {
		v.setError(fmt.Errorf("save failed: %w", err))
	}
}

// Update handles messages
func (v *TaskTreeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editName.Width = clamp(contentWidth-12, 20, 50)
		v.importPath.Width = clamp(contentWidth-12, 20, 60)
		v.ensureVisible()
		return v, nil

	case TickMsg:
		if v.session.Tick(msg.Epoch) {
			return v, scheduleTick(msg.Epoch)
		}
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.confirmingImport {
			return v.updateConfirmImport(msg)
		}

		if v.importing {
			return v.updateImportPath(msg)
		}

		if v.editing {
			return v.updateEditing(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskTreeView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := v.Selected()

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, v.Quit()

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.rows)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Left):
		if selected == nil {
			return v, nil
		}
		if !selected.IsLeaf() && !selected.Collapsed {
			v.toggleCollapsed(selected)
			return v, nil
		}
		if parent := v.session.Store().FindParent(selected.ID); parent != nil {
			v.SelectByID(parent.ID)
		}
		return v, nil

	case key.Matches(msg, v.keys.Right):
		if selected == nil || selected.IsLeaf() {
			return v, nil
		}
		if selected.Collapsed {
			v.toggleCollapsed(selected)
		} else if v.cursor < len(v.rows)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Collapse):
		if selected != nil && !selected.IsLeaf() {
			v.toggleCollapsed(selected)
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startForm(formNewRoot, nil)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.NewChild):
		if selected == nil {
			return v, nil
		}
		v.startForm(formNewChild, selected)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Edit), key.Matches(msg, v.keys.Enter):
		if selected == nil {
			return v, nil
		}
		v.startForm(formEdit, selected)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if selected != nil {
			v.confirmingDelete = true
			v.deleteTargetID = selected.ID
			v.deleteTargetName = selected.Name
		}
		return v, nil

	case key.Matches(msg, v.keys.Complete):
		if selected == nil {
			return v, nil
		}
		if err := v.session.ToggleCompleted(selected.ID); err != nil {
			v.setError(err)
		}
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Timer):
		return v, v.toggleTimer(selected)

	case key.Matches(msg, v.keys.Stop):
		if _, running := v.session.Timer().Active(); running {
			v.session.StopTimer()
			v.setStatus("Timer stopped")
		}
		return v, nil

	case key.Matches(msg, v.keys.Export):
		v.export()
		return v, nil

	case key.Matches(msg, v.keys.Import):
		v.importing = true
		v.importPath.Reset()
		v.importPath.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Summary):
		return v, func() tea.Msg { return ShowSummary{} }

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TaskTreeView) toggleCollapsed(t *models.Task) {
	if err := v.session.ToggleCollapsed(t.ID); err != nil {
		v.setError(err)
	}
	v.refresh()
}

// toggleTimer stops the timer on the running task or starts it on a leaf.
func (v *TaskTreeView) toggleTimer(t *models.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	if v.session.Timer().IsActive(t.ID) {
		v.session.StopTimer()
		v.setStatus("Timer stopped")
		return nil
	}
	if !t.IsLeaf() {
		v.setError(errors.New("timers run on tasks without subtasks"))
		return nil
	}
	epoch, err := v.session.StartTimer(t.ID)
	if err != nil {
		v.setError(err)
		return nil
	}
	v.setStatus("Timing " + t.Name)
	return scheduleTick(epoch)
}

func (v *TaskTreeView) export() {
	path := filepath.Join(v.exportDir, storage.ExportFileName(time.Now()))
	if err := storage.Export(path, v.session.Forest()); err != nil {
		v.setError(fmt.Errorf("export failed: %w", err))
		return
	}
	v.setStatus("Exported to " + path)
}

func (v *TaskTreeView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if err := v.session.Delete(v.deleteTargetID); err != nil {
			v.setError(err)
		}
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskTreeView) updateImportPath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.importing = false
		v.importPath.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		path := strings.TrimSpace(v.importPath.Value())
		if path == "" {
			return v, nil
		}
		v.importing = false
		v.importPath.Blur()
		forest, err := storage.ReadSnapshot(path)
		if err != nil {
			v.setError(fmt.Errorf("import failed: %w", err))
			return v, nil
		}
		v.pendingImport = forest
		v.confirmingImport = true
		return v, nil
	}

	var cmd tea.Cmd
	v.importPath, cmd = v.importPath.Update(msg)
	return v, cmd
}

func (v *TaskTreeView) updateConfirmImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingImport = false
		if err := v.session.Import(v.pendingImport); err != nil {
			v.setError(err)
		} else {
			v.setStatus(fmt.Sprintf("Imported %d root tasks", len(v.pendingImport)))
		}
		v.pendingImport = nil
		v.cursor = 0
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingImport = false
		v.pendingImport = nil
		return v, nil
	}
	return v, nil
}

func (v *TaskTreeView) startForm(kind formKind, target *models.Task) {
	v.editing = true
	v.editKind = kind
	v.editFocusIdx = 0
	v.editErr = ""
	v.editTargetID = ""
	v.editName.Reset()
	v.editEstimate.Reset()
	if target != nil {
		v.editTargetID = target.ID
	}
	if kind == formEdit && target != nil {
		v.editName.SetValue(target.Name)
		v.editEstimate.SetValue(strconv.Itoa(target.EstimatedMinutes))
	}
	v.updateEditFocus()
}

func (v *TaskTreeView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case msg.String() == "ctrl+s":
		v.saveForm()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % 3
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + 2) % 3
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.editFocusIdx == 0 {
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		}
		v.saveForm()
		return v, nil
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case 0:
		v.editName, cmd = v.editName.Update(msg)
	case 1:
		v.editEstimate, cmd = v.editEstimate.Update(msg)
	}
	return v, cmd
}

func (v *TaskTreeView) updateEditFocus() {
	v.editName.Blur()
	v.editEstimate.Blur()

	switch v.editFocusIdx {
	case 0:
		v.editName.Focus()
	case 1:
		v.editEstimate.Focus()
	}
}

// parseEstimate reads the estimate field; blank means zero.
func parseEstimate(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("estimate must be a whole number of minutes")
	}
	if n < 0 {
		return 0, tracker.ErrNegativeEstimate
	}
	return n, nil
}

func (v *TaskTreeView) saveForm() {
	name := strings.TrimSpace(v.editName.Value())
	if name == "" {
		v.editErr = tracker.ErrEmptyName.Error()
		v.editFocusIdx = 0
		v.updateEditFocus()
		return
	}
	est, err := parseEstimate(v.editEstimate.Value())
	if err != nil {
		v.editErr = err.Error()
		v.editFocusIdx = 1
		v.updateEditFocus()
		return
	}

	var task *models.Task
	switch v.editKind {
	case formNewRoot:
		task, err = v.session.AddRoot(name, est)
	case formNewChild:
		task, err = v.session.AddChild(v.editTargetID, name, est)
	case formEdit:
		err = v.session.Edit(v.editTargetID, name, est)
	}
	v.editing = false
	if err != nil {
		v.setError(err)
	}
	v.refresh()
	if task != nil {
		v.SelectByID(task.ID)
	}
}

func (v *TaskTreeView) visibleRows() int {
	// Header takes 4 lines, help and status about 4 more
	return max(v.height-8, 1)
}

func (v *TaskTreeView) ensureVisible() {
	visible := v.visibleRows()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visible {
		v.scrollY = v.cursor - visible + 1
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
}

// View renders the view
func (v *TaskTreeView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderConfirm("Delete Task?", fmt.Sprintf("%q and all of its subtasks will be removed.", v.deleteTargetName))
	}

	if v.confirmingImport {
		return v.renderConfirm("Replace All Tasks?", fmt.Sprintf("Import %d root tasks. Current tasks will be lost.", len(v.pendingImport)))
	}

	if v.importing {
		return v.renderImportPrompt()
	}

	if v.editing {
		return v.renderEditForm()
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderTree())
	b.WriteString("\n")
	b.WriteString(v.renderStatus())
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskTreeView) renderHeader() string {
	s := v.styles
	forest := v.session.Forest()

	totals := fmt.Sprintf("estimated %s · spent %s",
		tree.FormatMinutes(tree.ForestEstimated(forest)),
		tree.FormatSeconds(tree.ForestActual(forest)),
	)

	running := s.TitleMuted.Render("timer idle")
	if id, ok := v.session.Timer().Active(); ok {
		if t := v.session.Find(id); t != nil {
			running = s.TaskRunning.Render("● " + t.Name + " " + tree.FormatClock(t.ActualSeconds))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Tasks"),
		s.TitleMuted.Render(totals),
		running,
	)
}

func (v *TaskTreeView) renderTree() string {
	s := v.styles
	if len(v.rows) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to create one.")
	}

	end := min(v.scrollY+v.visibleRows(), len(v.rows))
	items := make([]string, 0, end-v.scrollY)
	for i := v.scrollY; i < end; i++ {
		items = append(items, v.renderRow(v.rows[i], i == v.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskTreeView) renderRow(r row, selected bool) string {
	s := v.styles
	t := r.task
	width := max(styles.ContentWidth(v.width)-4, 30)

	indicator := "  "
	if !t.IsLeaf() {
		indicator = "▾ "
		if t.Collapsed {
			indicator = "▸ "
		}
	}
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	active := v.session.Timer().IsActive(t.ID)
	timeText := tree.FormatSeconds(tree.TotalActual(t)) + " / " + tree.FormatMinutes(tree.TotalEstimated(t))
	if active {
		timeText = "⏱ " + tree.FormatClock(t.ActualSeconds) + " / " + tree.FormatMinutes(t.EstimatedMinutes)
	}

	prefix := strings.Repeat("  ", r.depth) + indicator + check + " "
	nameWidth := width - 4 - runewidth.StringWidth(prefix) - runewidth.StringWidth(timeText) - 2
	name := truncate(t.Name, max(nameWidth, 8))
	gap := max(width-4-runewidth.StringWidth(prefix)-runewidth.StringWidth(name)-runewidth.StringWidth(timeText), 1)

	nameStyle := lipgloss.NewStyle()
	if t.Completed {
		nameStyle = s.TaskDone
	}
	timeStyle := s.TaskTime
	switch {
	case active:
		timeStyle = s.TaskRunning
	case tree.OverTime(t):
		timeStyle = s.TaskOverTime
	}

	line := s.TreeGuide.Render(prefix) + nameStyle.Render(name) + strings.Repeat(" ", gap) + timeStyle.Render(timeText)
	if selected {
		return s.ListSelected.Width(width).Render(line)
	}
	return s.ListItem.Width(width).Render(line)
}

// truncate shortens s to maxWidth cells, adding an ellipsis when cut.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

func (v *TaskTreeView) renderStatus() string {
	if v.status == "" {
		return ""
	}
	if v.statusIsErr {
		return v.styles.StatusError.Render(v.status) + "\n"
	}
	return v.styles.StatusBar.Render(v.status) + "\n"
}

func (v *TaskTreeView) helpItem(b key.Binding) string {
	h := b.Help()
	return v.styles.HelpKey.Render(h.Key) + " " + v.styles.HelpDesc.Render(h.Desc)
}

func (v *TaskTreeView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	// At narrow widths, show hint to press ? for help
	if contentWidth > 0 && contentWidth < 60 {
		return v.styles.Help.Render(v.helpItem(v.keys.Help))
	}

	k := v.keys
	items := []string{
		v.helpItem(k.New),
		v.helpItem(k.NewChild),
		v.helpItem(k.Edit),
		v.helpItem(k.Complete),
		v.helpItem(k.Timer),
		v.helpItem(k.Delete),
		v.helpItem(k.Help),
		v.helpItem(k.Quit),
	}
	return v.styles.Help.Render(strings.Join(items, " • "))
}

func (v *TaskTreeView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var lines []string
	for _, b := range []key.Binding{
		v.keys.Up, v.keys.Down, v.keys.Left, v.keys.Right,
		v.keys.New, v.keys.NewChild, v.keys.Edit, v.keys.Delete,
		v.keys.Complete, v.keys.Collapse, v.keys.Timer, v.keys.Stop,
		v.keys.Export, v.keys.Import, v.keys.Summary, v.keys.Quit,
	} {
		h := b.Help()
		lines = append(lines, s.HelpKey.Render(fmt.Sprintf("%-7s", h.Key))+" "+s.HelpDesc.Render(h.Desc))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append(append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, lines...),
			"", s.TitleMuted.Render("Press any key to close"))...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskTreeView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	switch v.editKind {
	case formNewChild:
		formTitle = "New Subtask"
		if parent := v.session.Find(v.editTargetID); parent != nil {
			formTitle = "New Subtask of " + truncate(parent.Name, 40)
		}
	case formEdit:
		formTitle = "Edit Task"
	}

	nameStyle, estStyle, btnStyle := s.Input, s.Input, s.Button
	switch v.editFocusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		estStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	errLine := ""
	if v.editErr != "" {
		errLine = s.StatusError.Render(v.editErr)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.editName.View()),
		"",
		"Estimate (minutes):",
		estStyle.Width(12).Render(v.editEstimate.View()),
		"",
		btnStyle.Render(" Save "),
		errLine,
		s.TitleMuted.Render("Tab: next • ↵/Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskTreeView) renderImportPrompt() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Import Tasks"),
		"",
		"File:",
		s.InputFocused.Render(v.importPath.View()),
		"",
		s.TitleMuted.Render("↵: load • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Modal.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskTreeView) renderConfirm(title, detail string) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(title),
		"",
		s.TitleMuted.Render(detail),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
