package selfcare

import (
	"fmt"
	"sort"
)

// Add appends t to tasks after validating it.
func Add(tasks []Task, t Task) ([]Task, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if _, ok := Find(tasks, t.ID); ok {
		return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidTask, t.ID)
	}
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, t), nil
}

// Replace swaps in t for the task with the same ID.
func Replace(tasks []Task, t Task) ([]Task, error) {
	t.RecurringDays = canonicalDays(t.RecurringDays)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return update(tasks, t.ID, func(Task) Task { return t })
}

// Toggle flips the completion flag of the task with the given ID.
func Toggle(tasks []Task, id string) ([]Task, error) {
	return update(tasks, id, func(old Task) Task {
		old.Completed = !old.Completed
		return old
	})
}

// Remove drops the task with the given ID.
func Remove(tasks []Task, id string) ([]Task, error) {
	out := make([]Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return out, nil
}

// Find returns the task with the given ID.
func Find(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func update(tasks []Task, id string, fn func(Task) Task) ([]Task, error) {
	out := make([]Task, len(tasks))
	found := false
	for i, t := range tasks {
		if t.ID == id {
			t = fn(t)
			found = true
		}
		out[i] = t
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return out, nil
}

// ForDate returns the tasks scheduled on date, earliest time first.
// Recurrence days are not expanded.
func ForDate(tasks []Task, date string) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	// HH:MM sorts lexically.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// DailyStats is the progress summary for one day.
type DailyStats struct {
	Date             string `json:"date"`
	Total            int    `json:"total"`
	Completed        int    `json:"completed"`
	PlannedMinutes   int    `json:"planned_minutes"`
	CompletedMinutes int    `json:"completed_minutes"`
	Progress         int    `json:"progress"` // percent of tasks completed, rounded down
}

// Stats summarizes the tasks scheduled on date.
func Stats(tasks []Task, date string) DailyStats {
	s := DailyStats{Date: date}
	for _, t := range ForDate(tasks, date) {
		s.Total++
		s.PlannedMinutes += t.Duration
		if t.Completed {
			s.Completed++
			s.CompletedMinutes += t.Duration
		}
	}
	if s.Total > 0 {
		s.Progress = s.Completed * 100 / s.Total
	}
	return s
}
