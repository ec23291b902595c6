// Package selfcare models scheduled self-care tasks and the daily plan
// built from them.
package selfcare

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultDuration = 30
	DefaultTime     = "09:00"
)

var (
	ErrInvalidTask  = errors.New("invalid task")
	ErrTaskNotFound = errors.New("task not found")
)

// Category is the wellness area a task supports.
type Category string

const (
	Physical  Category = "Physical"
	Mental    Category = "Mental"
	Emotional Category = "Emotional"
	Social    Category = "Social"
	Spiritual Category = "Spiritual"
	Creative  Category = "Creative"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Physical, Mental, Emotional, Social, Spiritual, Creative}
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidTask, s)
}

// Priority orders tasks by importance.
type Priority string

const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

// ParsePriority matches s case-insensitively against High, Medium and Low.
func ParsePriority(s string) (Priority, error) {
	for _, p := range []Priority{High, Medium, Low} {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, s)
}

// Weekdays are the accepted recurrence day names, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Task is one scheduled self-care activity.
type Task struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	Priority      Priority `json:"priority"`
	Duration      int      `json:"duration"` // minutes
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Completed     bool     `json:"completed"`
	Recurring     bool     `json:"recurring"`
	RecurringDays []string `json:"recurringDays"`
}

// Draft is the user-editable part of a task. Zero fields take defaults
// in NewTask.
type Draft struct {
	Title         string
	Description   string
	Category      Category
	Priority      Priority
	Duration      int
	Date          string
	Time          string
	Recurring     bool
	RecurringDays []string
}

// NewTask builds a validated, incomplete task from d. An empty date falls
// back to selectedDate.
func NewTask(id string, d Draft, selectedDate string) (Task, error) {
	t := Task{
		ID:            id,
		Title:         strings.TrimSpace(d.Title),
		Description:   d.Description,
		Category:      d.Category,
		Priority:      d.Priority,
		Duration:      d.Duration,
		Date:          d.Date,
		Time:          d.Time,
		Recurring:     d.Recurring,
		RecurringDays: canonicalDays(d.RecurringDays),
	}
	if t.Category == "" {
		t.Category = Physical
	}
	if t.Priority == "" {
		t.Priority = Medium
	}
	if t.Duration == 0 {
		t.Duration = DefaultDuration
	}
	if t.Date == "" {
		t.Date = selectedDate
	}
	if t.Time == "" {
		t.Time = DefaultTime
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks every field of the task.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTask)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if t.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidTask, t.Duration)
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidTask, t.Date)
	}
	if _, err := time.Parse(TimeLayout, t.Time); err != nil {
		return fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidTask, t.Time)
	}
	for _, day := range t.RecurringDays {
		if !isWeekday(day) {
			return fmt.Errorf("%w: unknown recurrence day %q", ErrInvalidTask, day)
		}
	}
	return nil
}

func isWeekday(s string) bool {
	_, ok := canonicalWeekday(s)
	return ok
}

// canonicalWeekday matches s case-insensitively against Weekdays.
func canonicalWeekday(s string) (string, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(d, s) {
			return d, true
		}
	}
	return "", false
}

// canonicalDays rewrites known day names in their Weekdays spelling.
// Unknown names are kept for Validate to reject.
func canonicalDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, day := range days {
		if d, ok := canonicalWeekday(day); ok {
			day = d
		}
		out = append(out, day)
	}
	return out
}
