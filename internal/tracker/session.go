// Package tracker wires the task tree, completion propagation and the timer
// into the operations the user interfaces call. Every mutating operation saves
// the forest before returning.
package tracker

import (
	"errors"
	"strings"

	"github.com/tgienger/stt/internal/debug"
	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/timer"
	"github.com/tgienger/stt/internal/tree"
)

var (
	ErrEmptyName        = errors.New("task name is required")
	ErrNegativeEstimate = errors.New("estimate cannot be negative")
	ErrUnknownTask      = timer.ErrUnknownTask
)

// Persister saves and loads the whole forest
type Persister interface {
	Save(forest models.Forest) error
	Load() (models.Forest, error)
}

// Session owns the forest and the single timer for one running application.
type Session struct {
	store   *tree.Store
	timer   *timer.Controller
	persist Persister
}

// Open loads the forest from p and returns an idle session.
func Open(p Persister, opts ...timer.Option) (*Session, error) {
	forest, err := p.Load()
	if err != nil {
		return nil, err
	}
	tree.DeriveCompletion(forest)
	s := &Session{
		store:   tree.NewStore(forest),
		persist: p,
	}
	s.timer = timer.New(s.store, s.Save, opts...)
	return s, nil
}

// Store returns the task tree
func (s *Session) Store() *tree.Store { return s.store }

// Timer returns the timer controller
func (s *Session) Timer() *timer.Controller { return s.timer }

// Forest returns the root tasks
func (s *Session) Forest() models.Forest { return s.store.Roots() }

// Find looks up a task by id
func (s *Session) Find(id string) *models.Task { return s.store.Find(id) }

// Save persists the current forest
func (s *Session) Save() error {
	return s.persist.Save(s.store.Roots())
}

func validate(name string, estimatedMinutes int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if estimatedMinutes < 0 {
		return "", ErrNegativeEstimate
	}
	return name, nil
}

// AddRoot appends a new root task.
func (s *Session) AddRoot(name string, estimatedMinutes int) (*models.Task, error) {
	name, err := validate(name, estimatedMinutes)
	if err != nil {
		return nil, err
	}
	task := models.NewTask(name, estimatedMinutes)
	s.store.InsertRoot(task)
	return task, s.Save()
}

// AddChild appends a new task under parentID. A missing parent is a no-op
// returning a nil task.
func (s *Session) AddChild(parentID, name string, estimatedMinutes int) (*models.Task, error) {
	name, err := validate(name, estimatedMinutes)
	if err != nil {
		return nil, err
	}
	parent := s.store.Find(parentID)
	if parent == nil {
		debug.Log("add child: parent %s not found", parentID)
		return nil, nil
	}
	// The parent's own time stops counting once it has children.
	if parent.IsLeaf() && s.timer.IsActive(parent.ID) {
		s.timer.Stop()
	}
	task := models.NewTask(name, estimatedMinutes)
	s.store.InsertChild(parentID, task)
	s.store.RecomputeFrom(parent)
	return task, s.Save()
}

// Edit renames a task and sets its estimate. Unknown ids are ignored.
func (s *Session) Edit(id, name string, estimatedMinutes int) error {
	name, err := validate(name, estimatedMinutes)
	if err != nil {
		return err
	}
	task := s.store.Find(id)
	if task == nil {
		return nil
	}
	task.Name = name
	task.EstimatedMinutes = estimatedMinutes
	return s.Save()
}

// ToggleCollapsed flips the collapsed view flag
func (s *Session) ToggleCollapsed(id string) error {
	task := s.store.Find(id)
	if task == nil {
		return nil
	}
	task.Collapsed = !task.Collapsed
	return s.Save()
}

// ToggleCompleted flips completion on a task, cascading to its descendants
// and re-deriving its ancestors. Completing the running task, or an ancestor
// of it, stops the timer.
func (s *Session) ToggleCompleted(id string) error {
	task := s.store.Find(id)
	if task == nil {
		return nil
	}
	value := !task.Completed
	touched := tree.SetCompleted(task, value)
	if active, running := s.timer.Active(); running && value {
		for _, tid := range touched {
			if tid == active {
				s.timer.Stop()
				break
			}
		}
	}
	s.store.RecomputeAncestors(id)
	return s.Save()
}

// Delete removes a task and its subtree. The timer is stopped when it was
// running anywhere inside the removed subtree.
func (s *Session) Delete(id string) error {
	task := s.store.Find(id)
	if task == nil {
		return nil
	}
	if active, running := s.timer.Active(); running && tree.Contains(task, active) {
		s.timer.Stop()
	}
	parent := s.store.FindParent(id)
	s.store.Remove(id)
	if parent != nil {
		s.store.RecomputeFrom(parent)
	}
	return s.Save()
}

// StartTimer starts timing id, stopping any other running task first. It
// returns the epoch that ticks must carry.
func (s *Session) StartTimer(id string) (uint64, error) {
	epoch, err := s.timer.Start(id)
	if err != nil {
		return 0, err
	}
	return epoch, s.Save()
}

// StopTimer stops the running timer, if any. The controller saves on stop.
func (s *Session) StopTimer() {
	s.timer.Stop()
}

// Tick applies one timer period; see timer.Controller.Tick.
func (s *Session) Tick(epoch uint64) bool {
	return s.timer.Tick(epoch)
}

// Import replaces the whole forest after stopping the timer. Completion of
// tasks with children is re-derived rather than taken from the snapshot.
func (s *Session) Import(forest models.Forest) error {
	s.timer.Stop()
	if forest == nil {
		forest = models.Forest{}
	}
	tree.DeriveCompletion(forest)
	s.store.Replace(forest)
	return s.Save()
}
