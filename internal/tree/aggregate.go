package tree

import "github.com/tgienger/stt/internal/models"

// TotalEstimated returns the estimated minutes of a subtree, summed over leaves.
func TotalEstimated(t *models.Task) int {
	if t.IsLeaf() {
		return t.EstimatedMinutes
	}
	total := 0
	for _, c := range t.Children {
		total += TotalEstimated(c)
	}
	return total
}

// TotalActual returns the tracked seconds of a subtree, summed over leaves.
func TotalActual(t *models.Task) int {
	if t.IsLeaf() {
		return t.ActualSeconds
	}
	total := 0
	for _, c := range t.Children {
		total += TotalActual(c)
	}
	return total
}

// ForestEstimated sums TotalEstimated over all roots
func ForestEstimated(forest models.Forest) int {
	total := 0
	for _, r := range forest {
		total += TotalEstimated(r)
	}
	return total
}

// ForestActual sums TotalActual over all roots
func ForestActual(forest models.Forest) int {
	total := 0
	for _, r := range forest {
		total += TotalActual(r)
	}
	return total
}

// OverTime reports whether a subtree has an estimate and has run past it.
func OverTime(t *models.Task) bool {
	est := TotalEstimated(t)
	return est > 0 && TotalActual(t) > est*60
}

// Progress counts completed leaves and all leaves under t.
func Progress(t *models.Task) (done, total int) {
	if t.IsLeaf() {
		if t.Completed {
			return 1, 1
		}
		return 0, 1
	}
	for _, c := range t.Children {
		d, n := Progress(c)
		done += d
		total += n
	}
	return done, total
}
