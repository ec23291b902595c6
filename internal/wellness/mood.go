// Package wellness applies mood journal and self-care planner operations to
// stored user state. Every mutation re-reads the stored document, applies
// the change and writes the whole document back.
package wellness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindwell/mindwell/internal/kvstore"
	"github.com/mindwell/mindwell/pkg/mood"
)

// MoodService keeps the mood journal under kvstore.KeyMoodHistory.
type MoodService struct {
	store  kvstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewMoodService creates a MoodService. A nil logger uses slog.Default().
func NewMoodService(store kvstore.Store, logger *slog.Logger) *MoodService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MoodService{store: store, logger: logger, now: time.Now}
}

// History returns the journal in stored order. A missing or corrupt
// document reads as an empty journal.
func (s *MoodService) History(ctx context.Context) ([]mood.Entry, error) {
	entries, _, err := kvstore.LoadJSON[[]mood.Entry](ctx, s.store, kvstore.KeyMoodHistory)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Record saves e, replacing any entry already recorded for its date. An
// empty date means today.
func (s *MoodService) Record(ctx context.Context, e mood.Entry) (mood.Entry, error) {
	if e.Date == "" {
		e.Date = mood.Today(s.now())
	}

	history, err := s.History(ctx)
	if err != nil {
		return mood.Entry{}, err
	}
	_, replacing := mood.Find(history, e.Date)

	updated, err := mood.Upsert(history, e)
	if err != nil {
		return mood.Entry{}, err
	}
	if err := kvstore.SaveJSON(ctx, s.store, kvstore.KeyMoodHistory, updated); err != nil {
		return mood.Entry{}, fmt.Errorf("saving mood entry: %w", err)
	}

	saved, _ := mood.Find(updated, e.Date)
	s.logger.Debug("mood entry saved", "date", saved.Date, "mood", int(saved.Mood), "replaced", replacing)
	return saved, nil
}

// Trend analyses the entries of the last windowDays days.
func (s *MoodService) Trend(ctx context.Context, windowDays int, opts mood.TrendOptions) (mood.Trend, error) {
	history, err := s.History(ctx)
	if err != nil {
		return mood.Trend{}, err
	}
	return mood.ClassifyTrend(mood.Window(history, s.now(), windowDays), opts), nil
}

// Summary averages the whole journal and its most recent entries.
func (s *MoodService) Summary(ctx context.Context) (mood.Summary, error) {
	history, err := s.History(ctx)
	if err != nil {
		return mood.Summary{}, err
	}
	return mood.Summarize(history), nil
}
