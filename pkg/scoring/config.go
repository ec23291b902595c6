package scoring

// Validate checks that the config can be scored: questions are present with
// unique IDs and a positive max, options sit inside [0, max], and the tiers
// partition [0, 100] in ascending order starting at 0.
func (c *ScoreConfig) Validate() error {
	if c == nil {
		return invalidConfig("config is nil")
	}
	switch c.orientation() {
	case OrientWellness, OrientDistress:
	default:
		return invalidConfig("unknown orientation %q", c.Orientation)
	}
	if len(c.Questions) == 0 {
		return invalidConfig("%s: no questions", c.Key)
	}

	seen := make(map[string]bool, len(c.Questions))
	for i, q := range c.Questions {
		if q.ID == "" {
			return invalidConfig("%s: question %d has no id", c.Key, i)
		}
		if seen[q.ID] {
			return invalidConfig("%s: duplicate question id %q", c.Key, q.ID)
		}
		seen[q.ID] = true

		if q.Max <= 0 {
			return invalidConfig("%s: question %q: max must be positive", c.Key, q.ID)
		}
		switch q.Polarity {
		case "", HigherIsBetter, HigherIsWorse:
		default:
			return invalidConfig("%s: question %q: unknown polarity %q", c.Key, q.ID, q.Polarity)
		}
		for _, o := range q.Options {
			if o.Value < 0 || o.Value > q.Max {
				return invalidConfig("%s: question %q: option %q value %d outside [0, %d]",
					c.Key, q.ID, o.Label, o.Value, q.Max)
			}
		}
	}

	return validateTiers(c.Key, c.Tiers)
}

func validateTiers(key string, tiers []Tier) error {
	if len(tiers) == 0 {
		return invalidConfig("%s: no tiers", key)
	}
	if tiers[0].LowerBound != 0 {
		return invalidConfig("%s: first tier must start at 0, starts at %d", key, tiers[0].LowerBound)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].LowerBound <= tiers[i-1].LowerBound {
			return invalidConfig("%s: tier %q must start above %d", key, tiers[i].Label, tiers[i-1].LowerBound)
		}
		if tiers[i].LowerBound > 100 {
			return invalidConfig("%s: tier %q starts above 100", key, tiers[i].Label)
		}
	}
	return nil
}

// WithTiers returns a copy of the config using the given tier table.
// The copy is validated before it is returned.
func (c *ScoreConfig) WithTiers(tiers []Tier) (*ScoreConfig, error) {
	cp := *c
	cp.Tiers = append([]Tier(nil), tiers...)
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return &cp, nil
}

// Question returns the question with the given ID.
func (c *ScoreConfig) Question(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
