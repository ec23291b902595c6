package scoring_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mindwell/mindwell/pkg/scoring"
)

func uniform(cfg *scoring.ScoreConfig, v int) scoring.Answers {
	a := scoring.Answers{}
	for _, q := range cfg.Questions {
		a[q.ID] = v
	}
	return a
}

func TestComputeScoreQuickAssessmentMidpoint(t *testing.T) {
	cfg := scoring.QuickAssessment()

	// The stress item is inverted, but 4-2 is still 2.
	result, err := scoring.ComputeScore(cfg, uniform(cfg, 2))
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if result.RawSum != 14 || result.MaxSum != 28 {
		t.Errorf("expected 14/28, got %d/%d", result.RawSum, result.MaxSum)
	}
	if result.Percentage != 50 {
		t.Errorf("expected 50%%, got %d", result.Percentage)
	}
	if result.Tier != "Moderate" {
		t.Errorf("expected Moderate, got %q", result.Tier)
	}
	if len(result.Recommendations) != 4 || result.Recommendations[0] != "Consider talking to a mental health professional" {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}
	if len(result.Breakdown) != len(cfg.Questions) {
		t.Errorf("expected %d breakdown rows, got %d", len(cfg.Questions), len(result.Breakdown))
	}
}

func TestComputeScoreStressIndicatorExtremes(t *testing.T) {
	cfg := scoring.StressIndicator()

	tests := []struct {
		name    string
		value   int
		wantRaw int
		wantPct int
		want    string
	}{
		{"all highest", 4, 20, 100, "Very High"},
		{"all lowest", 0, 0, 0, "Very Low"},
		{"all middle", 2, 10, 50, "Moderate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scoring.ComputeScore(cfg, uniform(cfg, tt.value))
			if err != nil {
				t.Fatalf("ComputeScore() error: %v", err)
			}
			if result.RawSum != tt.wantRaw {
				t.Errorf("raw sum = %d, want %d", result.RawSum, tt.wantRaw)
			}
			if result.Percentage != tt.wantPct {
				t.Errorf("percentage = %d, want %d", result.Percentage, tt.wantPct)
			}
			if result.Tier != tt.want {
				t.Errorf("tier = %q, want %q", result.Tier, tt.want)
			}
		})
	}
}

func TestComputeScoreBoundaryBelongsToUpperTier(t *testing.T) {
	cfg := scoring.StressIndicator()

	// 4 of 20 is exactly 20%, the lower bound of Low.
	answers := uniform(cfg, 0)
	answers["tension"] = 4
	result, err := scoring.ComputeScore(cfg, answers)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if result.Percentage != 20 || result.Tier != "Low" {
		t.Errorf("expected 20%% Low, got %d%% %s", result.Percentage, result.Tier)
	}

	// 3 of 20 is 15%.
	answers["tension"] = 3
	result, err = scoring.ComputeScore(cfg, answers)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if result.Tier != "Very Low" {
		t.Errorf("expected Very Low at %d%%, got %s", result.Percentage, result.Tier)
	}
}

func TestComputeScoreInvertsDisagreeingPolarity(t *testing.T) {
	cfg := scoring.QuickAssessment()

	calm := uniform(cfg, 4)
	calm["stress"] = 0
	result, err := scoring.ComputeScore(cfg, calm)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if result.Percentage != 100 {
		t.Errorf("very low stress with best answers should be 100%%, got %d", result.Percentage)
	}

	stressed := uniform(cfg, 4)
	result, err = scoring.ComputeScore(cfg, stressed)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	// 24 of 28 = 85.7%
	if result.RawSum != 24 || result.Percentage != 86 {
		t.Errorf("expected 24 raw / 86%%, got %d / %d", result.RawSum, result.Percentage)
	}
	for _, row := range result.Breakdown {
		if row.QuestionID == "stress" && (row.Answer != 4 || row.Normalized != 0) {
			t.Errorf("stress row = %+v, want answer 4 normalized 0", row)
		}
	}
}

func TestComputeScoreRounding(t *testing.T) {
	cfg := scoring.QuickAssessment()

	tests := []struct {
		raw  int
		want int
	}{
		{13, 46}, // 46.43
		{15, 54}, // 53.57
		{7, 25},
	}
	for _, tt := range tests {
		answers := uniform(cfg, 0)
		answers["stress"] = 4 // contributes 0
		left := tt.raw
		for _, q := range cfg.Questions {
			if q.ID == "stress" {
				continue
			}
			v := min(left, 4)
			answers[q.ID] = v
			left -= v
		}
		result, err := scoring.ComputeScore(cfg, answers)
		if err != nil {
			t.Fatalf("ComputeScore() error: %v", err)
		}
		if result.RawSum != tt.raw {
			t.Fatalf("raw sum = %d, want %d", result.RawSum, tt.raw)
		}
		if result.Percentage != tt.want {
			t.Errorf("raw %d: percentage = %d, want %d", tt.raw, result.Percentage, tt.want)
		}
	}
}

func TestComputeScoreMentalAnalysisWeights(t *testing.T) {
	cfg := scoring.MentalAnalysis()

	best := scoring.Answers{
		"focusLevel": 4, "cognitiveLoad": 0,
		"emotionalStability": 4, "socialConnection": 4,
		"sleepQuality": 4, "stressLevel": 0,
	}
	result, err := scoring.ComputeScore(cfg, best)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if result.MaxSum != 32 || result.Percentage != 100 || result.Tier != "Excellent" {
		t.Errorf("expected 32 max, 100%% Excellent; got %d, %d%% %s", result.MaxSum, result.Percentage, result.Tier)
	}
	if len(result.Concerns) != 0 {
		t.Errorf("expected no concerns, got %v", result.Concerns)
	}

	// Best positives with worst negatives lands exactly half way.
	mixed := scoring.Answers{
		"focusLevel": 4, "cognitiveLoad": 4,
		"emotionalStability": 4, "socialConnection": 4,
		"sleepQuality": 4, "stressLevel": 4,
	}
	result, err = scoring.ComputeScore(cfg, mixed)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if result.Percentage != 50 || result.Tier != "Moderate" {
		t.Errorf("expected 50%% Moderate, got %d%% %s", result.Percentage, result.Tier)
	}
	want := []string{"Moderate stress levels", "Some areas need attention"}
	if !reflect.DeepEqual(result.Concerns, want) {
		t.Errorf("concerns = %v, want %v", result.Concerns, want)
	}
}

func TestComputeScoreValidationErrors(t *testing.T) {
	cfg := scoring.StressIndicator()

	tests := []struct {
		name    string
		answers scoring.Answers
		wantID  string
		wantErr error
	}{
		{
			name:    "missing answer",
			answers: scoring.Answers{"tension": 1, "overwhelm": 1, "relaxation": 1, "anxiety": 1},
			wantID:  "management",
			wantErr: scoring.ErrIncomplete,
		},
		{
			name:    "above max",
			answers: scoring.Answers{"tension": 5, "overwhelm": 1, "relaxation": 1, "anxiety": 1, "management": 1},
			wantID:  "tension",
			wantErr: scoring.ErrOutOfRange,
		},
		{
			name:    "negative",
			answers: scoring.Answers{"tension": 1, "overwhelm": -1, "relaxation": 1, "anxiety": 1, "management": 1},
			wantID:  "overwhelm",
			wantErr: scoring.ErrOutOfRange,
		},
		{
			name:    "unknown question",
			answers: scoring.Answers{"tension": 1, "overwhelm": 1, "relaxation": 1, "anxiety": 1, "management": 1, "sleep": 2},
			wantID:  "sleep",
			wantErr: scoring.ErrUnknownQuestion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.ComputeScore(cfg, tt.answers)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var verr *scoring.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.QuestionID != tt.wantID {
				t.Errorf("question = %q, want %q", verr.QuestionID, tt.wantID)
			}
		})
	}
}

func TestComputeScoreIsDeterministic(t *testing.T) {
	cfg := scoring.MentalAnalysis()
	answers := scoring.Answers{
		"focusLevel": 1, "cognitiveLoad": 3,
		"emotionalStability": 2, "socialConnection": 0,
		"sleepQuality": 3, "stressLevel": 1,
	}
	first, err := scoring.ComputeScore(cfg, answers)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	second, err := scoring.ComputeScore(cfg, answers)
	if err != nil {
		t.Fatalf("ComputeScore() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
	if first.Percentage < 0 || first.Percentage > 100 {
		t.Errorf("percentage %d outside [0, 100]", first.Percentage)
	}
}

func TestComputeScoreRejectsInvalidConfig(t *testing.T) {
	cfg := scoring.QuickAssessment()
	cfg.Tiers[0].LowerBound = 10

	_, err := scoring.ComputeScore(cfg, uniform(cfg, 2))
	if !errors.Is(err, scoring.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
