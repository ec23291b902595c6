// Package scoring implements the MindWell questionnaire scoring engine.
// It turns a completed answer set into a normalized percentage, a tier and
// the tier's recommendations.
package scoring

// Polarity states which end of a question's scale is the healthy one.
type Polarity string

const (
	HigherIsBetter Polarity = "higher_is_better"
	HigherIsWorse  Polarity = "higher_is_worse"
)

// Orientation is the direction a ScoreConfig reports its percentage in.
// A wellness score reads "higher is healthier", a distress score reads
// "higher is more distressed".
type Orientation string

const (
	OrientWellness Orientation = "wellness"
	OrientDistress Orientation = "distress"
)

// Option is one selectable answer of a question.
type Option struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Question is a single item of a questionnaire.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Section  string   `json:"section,omitempty" yaml:"section,omitempty"` // grouping shown by the wizard
	Polarity Polarity `json:"polarity" yaml:"polarity"`
	Max      int      `json:"max" yaml:"max"`
	Weight   int      `json:"weight,omitempty" yaml:"weight,omitempty"` // 0 means 1
	Options  []Option `json:"options" yaml:"options"`
}

func (q Question) weight() int {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

// Tier is a labelled band of the [0,100] percentage scale. A tier covers
// [LowerBound, next tier's LowerBound); the last tier runs up to 100.
type Tier struct {
	LowerBound      int      `json:"lower_bound" yaml:"lower_bound"`
	Label           string   `json:"label" yaml:"label"`
	Description     string   `json:"description" yaml:"description"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	Concerns        []string `json:"concerns,omitempty" yaml:"concerns,omitempty"`
}

// ScoreConfig fully describes one questionnaire instrument.
type ScoreConfig struct {
	Key         string      `json:"key" yaml:"key"`
	Name        string      `json:"name" yaml:"name"`
	Summary     string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Questions   []Question  `json:"questions" yaml:"questions"`
	Tiers       []Tier      `json:"tiers" yaml:"tiers"`
}

func (c *ScoreConfig) orientation() Orientation {
	if c.Orientation == "" {
		return OrientWellness
	}
	return c.Orientation
}

// Answers maps question ID to the chosen option value.
type Answers map[string]int

// QuestionScore is the per-question contribution, already flipped into the
// config's orientation.
type QuestionScore struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Section    string `json:"section,omitempty"`
	Answer     int    `json:"answer"`     // value as chosen
	Normalized int    `json:"normalized"` // value after polarity inversion
	Max        int    `json:"max"`
	Weight     int    `json:"weight"`
}

// Result is the outcome of scoring a completed questionnaire.
// Immutable once computed.
type Result struct {
	Instrument      string          `json:"instrument"`
	Name            string          `json:"name"`
	Orientation     Orientation     `json:"orientation"`
	RawSum          int             `json:"raw_sum"`
	MaxSum          int             `json:"max_sum"`
	Percentage      int             `json:"percentage"`
	Tier            string          `json:"tier"`
	Description     string          `json:"description"`
	Recommendations []string        `json:"recommendations"`
	Concerns        []string        `json:"concerns,omitempty"`
	Breakdown       []QuestionScore `json:"breakdown"`
}
