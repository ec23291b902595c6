package wellness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mindwell/mindwell/internal/kvstore"
	"github.com/mindwell/mindwell/pkg/selfcare"
)

// PlannerService keeps self-care tasks under kvstore.KeySelfCareTasks.
type PlannerService struct {
	store  kvstore.Store
	logger *slog.Logger
	now    func() time.Time
	idGen  func() string
}

// NewPlannerService creates a PlannerService. A nil logger uses slog.Default().
func NewPlannerService(store kvstore.Store, logger *slog.Logger) *PlannerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlannerService{
		store:  store,
		logger: logger,
		now:    time.Now,
		idGen:  func() string { return uuid.NewString() },
	}
}

// Today is the planner's default selected date.
func (s *PlannerService) Today() string {
	return s.now().Format(selfcare.DateLayout)
}

// Tasks returns every stored task.
func (s *PlannerService) Tasks(ctx context.Context) ([]selfcare.Task, error) {
	tasks, _, err := kvstore.LoadJSON[[]selfcare.Task](ctx, s.store, kvstore.KeySelfCareTasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Add creates a task from d. A draft without a date is scheduled today.
func (s *PlannerService) Add(ctx context.Context, d selfcare.Draft) (selfcare.Task, error) {
	task, err := selfcare.NewTask(s.idGen(), d, s.Today())
	if err != nil {
		return selfcare.Task{}, err
	}
	err = s.mutate(ctx, func(tasks []selfcare.Task) ([]selfcare.Task, error) {
		return selfcare.Add(tasks, task)
	})
	if err != nil {
		return selfcare.Task{}, err
	}
	s.logger.Debug("task added", "id", task.ID, "date", task.Date)
	return task, nil
}

// Update replaces the stored task with the same ID.
func (s *PlannerService) Update(ctx context.Context, t selfcare.Task) error {
	return s.mutate(ctx, func(tasks []selfcare.Task) ([]selfcare.Task, error) {
		return selfcare.Replace(tasks, t)
	})
}

// Edit loads the task with id, applies fn and stores the result.
func (s *PlannerService) Edit(ctx context.Context, id string, fn func(*selfcare.Task)) (selfcare.Task, error) {
	var edited selfcare.Task
	err := s.mutate(ctx, func(tasks []selfcare.Task) ([]selfcare.Task, error) {
		t, ok := selfcare.Find(tasks, id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", selfcare.ErrTaskNotFound, id)
		}
		fn(&t)
		t.ID = id
		edited = t
		return selfcare.Replace(tasks, t)
	})
	return edited, err
}

// Toggle flips the completion of the task with id and returns it.
func (s *PlannerService) Toggle(ctx context.Context, id string) (selfcare.Task, error) {
	var toggled selfcare.Task
	err := s.mutate(ctx, func(tasks []selfcare.Task) ([]selfcare.Task, error) {
		out, err := selfcare.Toggle(tasks, id)
		if err != nil {
			return nil, err
		}
		toggled, _ = selfcare.Find(out, id)
		return out, nil
	})
	return toggled, err
}

// Delete removes the task with id.
func (s *PlannerService) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tasks []selfcare.Task) ([]selfcare.Task, error) {
		return selfcare.Remove(tasks, id)
	})
}

// ForDate returns the tasks on date ordered by time.
func (s *PlannerService) ForDate(ctx context.Context, date string) ([]selfcare.Task, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return selfcare.ForDate(tasks, date), nil
}

// Stats summarizes progress on date.
func (s *PlannerService) Stats(ctx context.Context, date string) (selfcare.DailyStats, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return selfcare.DailyStats{}, err
	}
	return selfcare.Stats(tasks, date), nil
}

func (s *PlannerService) mutate(ctx context.Context, fn func([]selfcare.Task) ([]selfcare.Task, error)) error {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(tasks)
	if err != nil {
		return err
	}
	if err := kvstore.SaveJSON(ctx, s.store, kvstore.KeySelfCareTasks, updated); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}
