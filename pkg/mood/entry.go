// Package mood holds mood journal entries and the analysis run over them.
package mood

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format entries are keyed by.
const DateLayout = "2006-01-02"

var (
	ErrInvalidMood = errors.New("mood must be between 1 and 5")
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

// Level is a self-reported mood on a 1-5 scale.
type Level int

const (
	VerySad Level = iota + 1
	Sad
	Neutral
	Happy
	VeryHappy
)

// Levels lists every valid mood level in ascending order.
func Levels() []Level {
	return []Level{VerySad, Sad, Neutral, Happy, VeryHappy}
}

// Valid reports whether l is within [1, 5].
func (l Level) Valid() bool { return l >= VerySad && l <= VeryHappy }

func (l Level) String() string {
	switch l {
	case VerySad:
		return "Very Sad"
	case Sad:
		return "Sad"
	case Neutral:
		return "Neutral"
	case Happy:
		return "Happy"
	case VeryHappy:
		return "Very Happy"
	default:
		return "Unknown"
	}
}

// Factors is the suggested vocabulary of mood influences. Entries may carry
// other tags as well.
var Factors = []string{
	"Sleep Quality",
	"Exercise",
	"Work/School",
	"Social Interactions",
	"Weather",
	"Health",
	"Nutrition",
	"Stress Level",
	"Relationships",
	"Accomplishments",
}

// Entry is one day of the mood journal. There is at most one entry per date.
type Entry struct {
	Date    string   `json:"date"`
	Mood    Level    `json:"mood"`
	Notes   string   `json:"notes"`
	Factors []string `json:"factors"`
}

// Validate checks the mood level and the date format.
func (e Entry) Validate() error {
	if !e.Mood.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidMood, e.Mood)
	}
	if _, err := e.Day(); err != nil {
		return err
	}
	return nil
}

// Day parses the entry date as a calendar day in UTC.
func (e Entry) Day() (time.Time, error) {
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	return d, nil
}

// Today formats now as an entry date in now's location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
