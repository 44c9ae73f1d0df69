package views

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/storage"
	"github.com/tgienger/stt/internal/tracker"
)

type fakeSettings map[string]string

func (f fakeSettings) GetSetting(key string) (string, error) { return f[key], nil }
func (f fakeSettings) SetSetting(key, value string) error    { f[key] = value; return nil }

type failingSettings struct{}

func (failingSettings) GetSetting(string) (string, error) { return "", nil }
func (failingSettings) SetSetting(string, string) error    { return errors.New("disk full") }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestView(t *testing.T, forest models.Forest, settings Settings) (*TaskTreeView, *tracker.Session) {
	t.Helper()
	adapter := storage.NewAdapter(storage.NewMemoryStore())
	if err := adapter.Save(forest); err != nil {
		t.Fatal(err)
	}
	session, err := tracker.Open(adapter)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	v := NewTaskTreeView(session, settings, t.TempDir())
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return v, session
}

func send(v *TaskTreeView, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = v.Update(msg)
	}
	return cmd
}

func sampleForest() models.Forest {
	return models.Forest{
		{
			ID: "report", Name: "Write report", EstimatedMinutes: 90,
			Children: []*models.Task{
				{ID: "draft", Name: "Draft", EstimatedMinutes: 60},
				{ID: "review", Name: "Review", EstimatedMinutes: 30},
			},
		},
		{ID: "email", Name: "Email", EstimatedMinutes: 5},
	}
}

func TestCreateRootThroughForm(t *testing.T) {
	v, session := newTestView(t, nil, nil)

	send(v, runes("n"), runes("Write report"), keyTab, runes("90"), keyCtrlS)

	if v.editing {
		t.Fatalf("form still open: %q", v.editErr)
	}
	forest := session.Forest()
	if len(forest) != 1 || forest[0].Name != "Write report" || forest[0].EstimatedMinutes != 90 {
		t.Fatalf("unexpected forest: %+v", forest)
	}
	if v.Selected() != forest[0] {
		t.Fatal("new task should be selected")
	}
}

func TestFormRejectsInvalidInput(t *testing.T) {
	v, session := newTestView(t, nil, nil)

	send(v, runes("n"), keyCtrlS)
	if !v.editing || v.editErr == "" {
		t.Fatal("empty name must keep the form open with an error")
	}

	send(v, runes("Task"), keyTab, runes("-5"), keyCtrlS)
	if !v.editing || v.editErr == "" {
		t.Fatal("negative estimate must keep the form open with an error")
	}

	v.editEstimate.SetValue("ten")
	send(v, keyCtrlS)
	if !v.editing {
		t.Fatal("non-numeric estimate must keep the form open")
	}
	if len(session.Forest()) != 0 {
		t.Fatal("nothing should be created from an invalid form")
	}
}

func TestAddChildAndEdit(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)

	// Cursor starts on "Write report"
	send(v, runes("a"), runes("Outline"), keyEnter, runes("15"), keyEnter)
	report := session.Find("report")
	if len(report.Children) != 3 || report.Children[2].Name != "Outline" {
		t.Fatalf("child not added: %+v", report.Children)
	}
	if v.Selected() != report.Children[2] {
		t.Fatal("new subtask should be selected")
	}

	send(v, runes("e"))
	if v.editName.Value() != "Outline" || v.editEstimate.Value() != "15" {
		t.Fatalf("edit form not prefilled: %q %q", v.editName.Value(), v.editEstimate.Value())
	}
	v.editName.SetValue("Outline v2")
	send(v, keyCtrlS)
	if report.Children[2].Name != "Outline v2" {
		t.Fatalf("edit not applied: %q", report.Children[2].Name)
	}
}

func TestNavigationAndCollapse(t *testing.T) {
	v, _ := newTestView(t, sampleForest(), nil)
	if len(v.rows) != 4 {
		t.Fatalf("expected 4 visible rows, got %d", len(v.rows))
	}

	send(v, runes("z"))
	if len(v.rows) != 2 {
		t.Fatalf("expected collapsed tree to show 2 rows, got %d", len(v.rows))
	}

	// right expands, right again steps into the first child
	send(v, runes("l"), runes("l"))
	if v.Selected().ID != "draft" {
		t.Fatalf("expected draft selected, got %s", v.Selected().ID)
	}

	// left on a leaf jumps to its parent
	send(v, runes("h"))
	if v.Selected().ID != "report" {
		t.Fatalf("expected report selected, got %s", v.Selected().ID)
	}

	send(v, runes("j"), runes("j"), runes("j"), runes("j"))
	if v.Selected().ID != "email" {
		t.Fatalf("cursor should stop on the last row, got %s", v.Selected().ID)
	}
}

func TestToggleComplete(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)

	send(v, runes("j"), keySpace, runes("j"), runes("c"))
	if !session.Find("report").Completed {
		t.Fatal("parent should complete once both children are done")
	}
}

func TestTimerTicks(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)

	send(v, runes("j"))
	cmd := send(v, runes("s"))
	if cmd == nil {
		t.Fatal("starting the timer should schedule a tick")
	}
	epoch := session.Timer().Epoch()
	if !session.Timer().IsActive("draft") {
		t.Fatal("timer should be running on draft")
	}

	for i := 0; i < 3; i++ {
		if next := send(v, TickMsg{Epoch: epoch}); next == nil {
			t.Fatal("a live tick should reschedule")
		}
	}
	if got := session.Find("draft").ActualSeconds; got != 3 {
		t.Fatalf("ActualSeconds = %d, want 3", got)
	}
	if !strings.Contains(v.View(), "00:03") {
		t.Error("running clock should be rendered")
	}

	// s again stops; the pending tick is dropped
	send(v, runes("s"))
	if next := send(v, TickMsg{Epoch: epoch}); next != nil {
		t.Fatal("a stale tick must not reschedule")
	}
	if got := session.Find("draft").ActualSeconds; got != 3 {
		t.Fatalf("stale tick changed time: %d", got)
	}
}

func TestTimerOnlyOnLeaves(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)

	if cmd := send(v, runes("s")); cmd != nil {
		t.Fatal("parent tasks must not start a timer")
	}
	if _, running := session.Timer().Active(); running {
		t.Fatal("timer should be idle")
	}
	if !v.statusIsErr {
		t.Fatal("expected an error status")
	}
}

func TestSwitchingTimerStopsPrevious(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)

	send(v, runes("j"), runes("s"))
	first := session.Timer().Epoch()
	send(v, runes("j"), runes("s"))

	if !session.Timer().IsActive("review") {
		t.Fatal("review should be the running task")
	}
	send(v, TickMsg{Epoch: first})
	if session.Find("draft").ActualSeconds != 0 {
		t.Fatal("tick from the previous run must be dropped")
	}
}

func TestDeleteConfirm(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)

	send(v, runes("d"), runes("n"))
	if session.Find("report") == nil {
		t.Fatal("declined delete removed the task")
	}

	send(v, runes("d"))
	if !strings.Contains(v.View(), "Delete Task?") {
		t.Error("confirmation should be rendered")
	}
	send(v, runes("y"))
	if session.Find("report") != nil || session.Find("draft") != nil {
		t.Fatal("task and subtree should be deleted")
	}
	if len(v.rows) != 1 {
		t.Fatalf("expected 1 row left, got %d", len(v.rows))
	}
}

func TestExportKey(t *testing.T) {
	v, _ := newTestView(t, sampleForest(), nil)

	send(v, runes("x"))
	path := filepath.Join(v.exportDir, storage.ExportFileName(time.Now()))
	forest, err := storage.ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots exported, got %d", len(forest))
	}
}

func TestImportKey(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)
	file := filepath.Join(t.TempDir(), "snap.json")
	if err := storage.Export(file, models.Forest{{ID: "new", Name: "New"}}); err != nil {
		t.Fatal(err)
	}

	send(v, runes("i"), runes(file), keyEnter)
	if !v.confirmingImport {
		t.Fatalf("expected import confirmation, status %q", v.status)
	}
	send(v, runes("y"))
	if session.Find("new") == nil || session.Find("report") != nil {
		t.Fatal("import did not replace the forest")
	}
}

func TestImportKeyRejectsInvalidFile(t *testing.T) {
	v, session := newTestView(t, sampleForest(), nil)
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte(`{"not": "a list"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	send(v, runes("i"), runes(file), keyEnter)
	if v.confirmingImport || !v.statusIsErr {
		t.Fatal("invalid snapshot should be reported, not offered")
	}
	if session.Find("report") == nil {
		t.Fatal("forest must be untouched")
	}
}

func TestRestoresAndRemembersSelection(t *testing.T) {
	forest := sampleForest()
	forest[0].Collapsed = true
	settings := fakeSettings{LastTaskKey: "review"}

	v, session := newTestView(t, forest, settings)
	if v.Selected() == nil || v.Selected().ID != "review" {
		t.Fatal("last selected task should be restored")
	}
	if session.Find("report").Collapsed {
		t.Fatal("ancestors of the restored task should be expanded")
	}

	send(v, runes("j"))
	cmd := send(v, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if settings[LastTaskKey] != "email" {
		t.Fatalf("expected email remembered, got %q", settings[LastTaskKey])
	}
}

func TestHelpPopup(t *testing.T) {
	v, _ := newTestView(t, sampleForest(), nil)
	send(v, runes("?"))
	if !strings.Contains(v.View(), "Keyboard Shortcuts") {
		t.Fatal("help popup not shown")
	}
	send(v, runes("j"))
	if v.showHelpPopup {
		t.Fatal("any key should close the popup")
	}
	if v.Selected().ID != "report" {
		t.Fatal("closing key must not move the cursor")
	}
}

func TestViewShowsOverTime(t *testing.T) {
	forest := models.Forest{{ID: "a", Name: "Late task", EstimatedMinutes: 1, ActualSeconds: 120}}
	v, _ := newTestView(t, forest, nil)
	out := v.View()
	if !strings.Contains(out, "Late task") || !strings.Contains(out, "2m / 1m") {
		t.Fatalf("unexpected view:\n%s", out)
	}
}

func TestEmptyView(t *testing.T) {
	v, _ := newTestView(t, nil, nil)
	if !strings.Contains(v.View(), "No tasks") {
		t.Fatal("expected empty hint")
	}
}

func TestRememberSelectionLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	v, _ := newTestView(t, sampleForest(), failingSettings{})
	if cmd := send(v, runes("q")); cmd == nil {
		t.Fatal("q should still quit when the setting cannot be saved")
	}
	if !strings.Contains(buf.String(), "warning: failed to remember selected task: disk full") {
		t.Fatalf("expected a warning in the log, got %q", buf.String())
	}
}
