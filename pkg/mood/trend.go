package mood

import (
	"fmt"
	"math"
	"sort"
)

// InsightKind classifies an insight for display.
type InsightKind string

const (
	InsightPositive InsightKind = "positive"
	InsightNeutral  InsightKind = "neutral"
	InsightConcern  InsightKind = "concern"
	InsightInfo     InsightKind = "info"
)

// Insight is a short templated message about a trend.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// Thresholds pick the average-mood insight. An average (rounded to one
// decimal) at or above Positive is positive, at or above Neutral is
// neutral, anything lower is a concern.
type Thresholds struct {
	Positive float64 `json:"positive" yaml:"positive"`
	Neutral  float64 `json:"neutral" yaml:"neutral"`
}

// TrendOptions configures ClassifyTrend.
type TrendOptions struct {
	Thresholds Thresholds
	TopK       int // number of factors reported; 0 means DefaultTopK
}

// DefaultTopK is the number of most frequent factors reported.
const DefaultTopK = 5

// DefaultTrendOptions returns the standard thresholds (4 and 3) and top-5 factors.
func DefaultTrendOptions() TrendOptions {
	return TrendOptions{
		Thresholds: Thresholds{Positive: 4, Neutral: 3},
		TopK:       DefaultTopK,
	}
}

// FactorCount is how often a factor was tagged.
type FactorCount struct {
	Factor string `json:"factor"`
	Count  int    `json:"count"`
}

// Point is one plotted day of the trend.
type Point struct {
	Date string `json:"date"`
	Mood Level  `json:"mood"`
}

// Trend summarizes a window of mood entries. Empty is set, and every other
// field left zero, when there were no entries to analyse.
type Trend struct {
	Empty      bool          `json:"empty"`
	Entries    int           `json:"entries"`
	Average    float64       `json:"average"`
	Highest    Level         `json:"highest"`
	Lowest     Level         `json:"lowest"`
	Counts     [5]int        `json:"counts"` // Counts[l-1] is the number of entries at level l
	TopFactors []FactorCount `json:"top_factors"`
	Series     []Point       `json:"series"`
	Insights   []Insight     `json:"insights"`
}

// Count returns the number of entries at level l.
func (t Trend) Count(l Level) int {
	if !l.Valid() {
		return 0
	}
	return t.Counts[l-1]
}

// RoundedAverage is the average to one decimal, the precision insights use.
func (t Trend) RoundedAverage() float64 {
	return math.Round(t.Average*10) / 10
}

// ClassifyTrend computes mean, extremes, per-level counts and the most
// frequent factors of entries and picks the matching insights. Entries with
// a mood outside [1, 5] are ignored. A factor counts once per entry and
// factor ties keep first-seen order.
func ClassifyTrend(entries []Entry, opts TrendOptions) Trend {
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}

	var t Trend
	sum := 0
	factorCounts := make(map[string]int)
	var factorOrder []string

	for _, e := range entries {
		if !e.Mood.Valid() {
			continue
		}
		if t.Entries == 0 || e.Mood > t.Highest {
			t.Highest = e.Mood
		}
		if t.Entries == 0 || e.Mood < t.Lowest {
			t.Lowest = e.Mood
		}
		t.Entries++
		sum += int(e.Mood)
		t.Counts[e.Mood-1]++
		t.Series = append(t.Series, Point{Date: e.Date, Mood: e.Mood})

		for _, f := range uniqueFactors(e.Factors) {
			if _, ok := factorCounts[f]; !ok {
				factorOrder = append(factorOrder, f)
			}
			factorCounts[f]++
		}
	}

	if t.Entries == 0 {
		return Trend{Empty: true}
	}
	t.Average = float64(sum) / float64(t.Entries)

	for _, f := range factorOrder {
		t.TopFactors = append(t.TopFactors, FactorCount{Factor: f, Count: factorCounts[f]})
	}
	sort.SliceStable(t.TopFactors, func(i, j int) bool {
		return t.TopFactors[i].Count > t.TopFactors[j].Count
	})
	if len(t.TopFactors) > opts.TopK {
		t.TopFactors = t.TopFactors[:opts.TopK]
	}

	t.Insights = insights(t, opts.Thresholds)
	return t
}

func insights(t Trend, th Thresholds) []Insight {
	avg := t.RoundedAverage()
	shown := fmt.Sprintf("%.1f", avg)

	var out []Insight
	switch {
	case avg >= th.Positive:
		out = append(out, Insight{
			Kind:    InsightPositive,
			Title:   "Great Mood Trend!",
			Message: fmt.Sprintf("Your average mood is %s/5. You're maintaining excellent emotional wellness!", shown),
		})
	case avg >= th.Neutral:
		out = append(out, Insight{
			Kind:    InsightNeutral,
			Title:   "Stable Mood Pattern",
			Message: fmt.Sprintf("Your average mood is %s/5. You're managing well with room for improvement.", shown),
		})
	default:
		out = append(out, Insight{
			Kind:    InsightConcern,
			Title:   "Focus on Self-Care",
			Message: fmt.Sprintf("Your average mood is %s/5. Consider focusing on activities that boost your mood.", shown),
		})
	}

	if len(t.TopFactors) > 0 {
		top := t.TopFactors[0]
		out = append(out, Insight{
			Kind:    InsightInfo,
			Title:   "Key Mood Influencer",
			Message: fmt.Sprintf("%q appears most frequently in your mood entries (%d times).", top.Factor, top.Count),
		})
	}
	return out
}
