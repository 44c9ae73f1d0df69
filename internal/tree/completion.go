package tree

import "github.com/tgienger/stt/internal/models"

// SetCompleted sets the completion flag on t and forces the same value onto
// every descendant. It returns the ids of all tasks it touched, t first.
func SetCompleted(t *models.Task, value bool) []string {
	var touched []string
	var set func(*models.Task)
	set = func(n *models.Task) {
		n.Completed = value
		touched = append(touched, n.ID)
		for _, c := range n.Children {
			set(c)
		}
	}
	set(t)
	return touched
}

// RecomputeAncestors re-derives completion on every ancestor of id, starting
// with its parent and walking up to the root.
func (s *Store) RecomputeAncestors(id string) {
	if parent := s.FindParent(id); parent != nil {
		s.RecomputeFrom(parent)
	}
}

// RecomputeFrom re-derives completion on node and then on each of its
// ancestors. A node is complete iff it has at least one child and all of its
// children are complete, so a node left without children ends up incomplete.
func (s *Store) RecomputeFrom(node *models.Task) {
	for node != nil {
		node.Completed = allChildrenCompleted(node)
		node = s.FindParent(node.ID)
	}
}

func allChildrenCompleted(t *models.Task) bool {
	if len(t.Children) == 0 {
		return false
	}
	for _, c := range t.Children {
		if !c.Completed {
			return false
		}
	}
	return true
}

// DeriveCompletion re-derives completion bottom-up on every task that has
// children. Leaf values are kept as they are.
func DeriveCompletion(tasks []*models.Task) {
	for _, t := range tasks {
		if len(t.Children) == 0 {
			continue
		}
		DeriveCompletion(t.Children)
		t.Completed = allChildrenCompleted(t)
	}
}
