// Package tree holds the task forest and the operations derived from its shape:
// lookup and mutation, time aggregation and completion propagation.
package tree

import "github.com/tgienger/stt/internal/models"

// Store owns the ordered forest of tasks.
//
// Lookups are recursive depth-first searches. Depth is bounded only by the
// goroutine stack, which is far beyond any tree a person builds by hand.
type Store struct {
	roots models.Forest
}

// NewStore creates a store over the given forest
func NewStore(forest models.Forest) *Store {
	return &Store{roots: forest}
}

// Roots returns the root tasks in display order
func (s *Store) Roots() models.Forest {
	return s.roots
}

// Replace swaps the whole forest
func (s *Store) Replace(forest models.Forest) {
	s.roots = forest
}

// Len returns the number of root tasks
func (s *Store) Len() int {
	return len(s.roots)
}

// Find returns the first task with the given id, or nil.
func (s *Store) Find(id string) *models.Task {
	return find(s.roots, id)
}

func find(tasks []*models.Task, id string) *models.Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
		if found := find(t.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the direct parent of the task with the given id.
// Roots and unknown ids yield nil.
func (s *Store) FindParent(id string) *models.Task {
	return findParent(s.roots, id)
}

func findParent(tasks []*models.Task, id string) *models.Task {
	for _, t := range tasks {
		for _, c := range t.Children {
			if c.ID == id {
				return t
			}
		}
		if p := findParent(t.Children, id); p != nil {
			return p
		}
	}
	return nil
}

// InsertRoot appends a task to the end of the root list
func (s *Store) InsertRoot(task *models.Task) {
	s.roots = append(s.roots, task)
}

// InsertChild appends task to the children of parentID and expands the
// parent so the new child is visible. It reports whether the parent exists.
func (s *Store) InsertChild(parentID string, task *models.Task) bool {
	parent := s.Find(parentID)
	if parent == nil {
		return false
	}
	parent.Children = append(parent.Children, task)
	parent.Collapsed = false
	return true
}

// Remove detaches the first task matching id together with its subtree.
func (s *Store) Remove(id string) bool {
	var removed bool
	s.roots, removed = remove(s.roots, id)
	return removed
}

func remove(tasks []*models.Task, id string) ([]*models.Task, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return append(tasks[:i:i], tasks[i+1:]...), true
		}
		if children, ok := remove(t.Children, id); ok {
			t.Children = children
			return tasks, true
		}
	}
	return tasks, false
}

// Walk visits every task depth-first in display order. depth is 0 for roots.
// Returning false from fn skips the task's children.
func (s *Store) Walk(fn func(t *models.Task, depth int) bool) {
	walk(s.roots, 0, fn)
}

func walk(tasks []*models.Task, depth int, fn func(*models.Task, int) bool) {
	for _, t := range tasks {
		if fn(t, depth) {
			walk(t.Children, depth+1, fn)
		}
	}
}

// Contains reports whether id names root or one of its descendants
func Contains(root *models.Task, id string) bool {
	if root == nil {
		return false
	}
	if root.ID == id {
		return true
	}
	return find(root.Children, id) != nil
}
