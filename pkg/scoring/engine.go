package scoring

import (
	"fmt"
	"math"
)

// ComputeScore scores a complete answer set against cfg.
//
// Each answer is checked against [0, max]. Answers whose question polarity
// disagrees with the config's orientation are inverted (max - value) before
// they are summed, so the percentage always reads in the config's
// orientation. The percentage is round(rawSum / maxSum * 100) and selects
// the tier whose range contains it.
func ComputeScore(cfg *ScoreConfig, answers Answers) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for id := range answers {
		if _, ok := cfg.Question(id); !ok {
			return nil, &ValidationError{QuestionID: id, Err: ErrUnknownQuestion}
		}
	}

	result := &Result{
		Instrument:  cfg.Key,
		Name:        cfg.Name,
		Orientation: cfg.orientation(),
		Breakdown:   make([]QuestionScore, 0, len(cfg.Questions)),
	}

	for _, q := range cfg.Questions {
		v, ok := answers[q.ID]
		if !ok {
			return nil, &ValidationError{QuestionID: q.ID, Max: q.Max, Err: ErrIncomplete}
		}
		if v < 0 || v > q.Max {
			return nil, &ValidationError{QuestionID: q.ID, Value: v, Max: q.Max, Err: ErrOutOfRange}
		}

		n := normalize(q, v, result.Orientation)
		w := q.weight()
		result.RawSum += w * n
		result.MaxSum += w * q.Max
		result.Breakdown = append(result.Breakdown, QuestionScore{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Section:    q.Section,
			Answer:     v,
			Normalized: n,
			Max:        q.Max,
			Weight:     w,
		})
	}

	result.Percentage = percentage(result.RawSum, result.MaxSum)

	tier, err := LookupTier(cfg.Tiers, result.Percentage)
	if err != nil {
		return nil, fmt.Errorf("scoring %s: %w", cfg.Key, err)
	}
	result.Tier = tier.Label
	result.Description = tier.Description
	result.Recommendations = append([]string(nil), tier.Recommendations...)
	result.Concerns = append([]string(nil), tier.Concerns...)

	return result, nil
}

// normalize flips v when the question's healthy end disagrees with the
// direction the score is reported in.
func normalize(q Question, v int, o Orientation) int {
	polarity := q.Polarity
	if polarity == "" {
		polarity = HigherIsBetter
	}
	aligned := (polarity == HigherIsBetter) == (o == OrientWellness)
	if aligned {
		return v
	}
	return q.Max - v
}

func percentage(raw, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(raw) / float64(total) * 100))
	// Clamp to [0, 100]
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
