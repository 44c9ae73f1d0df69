package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type notLeafError struct {
	id   string
	name string
}

func (e notLeafError) Error() string {
	return fmt.Sprintf("task %s (%s) has subtasks; time is tracked on tasks without subtasks", e.id, e.name)
}
