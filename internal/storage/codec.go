// Package storage serializes the task forest and keeps it in a string-keyed
// blob store.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/tree"
)

// ErrInvalidFormat is returned for snapshots that are not a valid forest.
var ErrInvalidFormat = errors.New("invalid format")

// Encode serializes the forest compactly
func Encode(forest models.Forest) ([]byte, error) {
	if forest == nil {
		forest = models.Forest{}
	}
	return json.Marshal(forest)
}

// EncodePretty serializes the forest indented, for export files
func EncodePretty(forest models.Forest) ([]byte, error) {
	if forest == nil {
		forest = models.Forest{}
	}
	return json.MarshalIndent(forest, "", "  ")
}

// Decode parses a serialized forest. The top-level value must be an array.
// Tasks without an id get a fresh one; duplicate ids, blank names and
// negative durations are rejected. Completion of tasks with children is
// re-derived from their leaves.
func Decode(data []byte) (models.Forest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a list of tasks", ErrInvalidFormat)
	}

	var forest models.Forest
	if err := json.Unmarshal(trimmed, &forest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := normalize(forest); err != nil {
		return nil, err
	}
	return forest, nil
}

func normalize(forest models.Forest) error {
	seen := make(map[string]bool)
	var check func(tasks []*models.Task) error
	check = func(tasks []*models.Task) error {
		for _, t := range tasks {
			if t == nil {
				return fmt.Errorf("%w: null task", ErrInvalidFormat)
			}
			if t.ID == "" {
				t.ID = models.NewID()
			}
			if seen[t.ID] {
				return fmt.Errorf("%w: duplicate task id %q", ErrInvalidFormat, t.ID)
			}
			seen[t.ID] = true
			if strings.TrimSpace(t.Name) == "" {
				return fmt.Errorf("%w: task %q has no name", ErrInvalidFormat, t.ID)
			}
			if t.EstimatedMinutes < 0 || t.ActualSeconds < 0 {
				return fmt.Errorf("%w: task %q has a negative duration", ErrInvalidFormat, t.ID)
			}
			if err := check(t.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(forest); err != nil {
		return err
	}
	tree.DeriveCompletion(forest)
	return nil
}
