package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned when a question has no recorded answer.
	ErrIncomplete = errors.New("question not answered")
	// ErrOutOfRange is returned when an answer falls outside [0, max].
	ErrOutOfRange = errors.New("answer out of range")
	// ErrUnknownQuestion is returned when an answer references no question of the config.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrInvalidConfig wraps every ScoreConfig.Validate failure.
	ErrInvalidConfig = errors.New("invalid score config")
	// ErrWizardComplete is returned when answering after the last question.
	ErrWizardComplete = errors.New("questionnaire already complete")
)

// ValidationError names the question whose answer could not be scored.
type ValidationError struct {
	QuestionID string
	Value      int
	Max        int
	Err        error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrOutOfRange):
		return fmt.Sprintf("question %q: %v: %d not in [0, %d]", e.QuestionID, e.Err, e.Value, e.Max)
	default:
		return fmt.Sprintf("question %q: %v", e.QuestionID, e.Err)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
