package models

import "github.com/google/uuid"

// Task is a node in the task tree. Time fields are only meaningful on leaves.
type Task struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	ActualSeconds    int     `json:"actualSeconds"`
	Completed        bool    `json:"completed"`
	Collapsed        bool    `json:"collapsed"`
	Children         []*Task `json:"children"`
}

// Forest is the ordered list of root tasks
type Forest []*Task

// NewTask creates a leaf task with a fresh identifier
func NewTask(name string, estimatedMinutes int) *Task {
	return &Task{
		ID:               NewID(),
		Name:             name,
		EstimatedMinutes: estimatedMinutes,
	}
}

// NewID returns a new opaque task identifier
func NewID() string {
	return uuid.NewString()
}

// IsLeaf reports whether the task has no children
func (t *Task) IsLeaf() bool {
	return len(t.Children) == 0
}
