package scoring

// Wizard walks a respondent through a questionnaire one question at a time.
// It is either positioned at a question or complete; completing the last
// question scores the answer set.
type Wizard struct {
	cfg     *ScoreConfig
	index   int
	answers Answers
	result  *Result
}

// NewWizard validates cfg and positions a wizard at its first question.
func NewWizard(cfg *ScoreConfig) (*Wizard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Wizard{cfg: cfg, answers: Answers{}}, nil
}

// Config returns the questionnaire being answered.
func (w *Wizard) Config() *ScoreConfig { return w.cfg }

// Index is the zero-based position of the current question.
func (w *Wizard) Index() int { return w.index }

// Len is the number of questions.
func (w *Wizard) Len() int { return len(w.cfg.Questions) }

// Complete reports whether every question has been answered and scored.
func (w *Wizard) Complete() bool { return w.result != nil }

// Current returns the question awaiting an answer. ok is false once the
// wizard is complete.
func (w *Wizard) Current() (q Question, ok bool) {
	if w.Complete() {
		return Question{}, false
	}
	return w.cfg.Questions[w.index], true
}

// Selected returns the answer already recorded for the current question,
// if the respondent has been here before.
func (w *Wizard) Selected() (int, bool) {
	q, ok := w.Current()
	if !ok {
		return 0, false
	}
	v, ok := w.answers[q.ID]
	return v, ok
}

// Answer records value for the current question and advances. Answering the
// last question completes the wizard and returns the score. An out-of-range
// value is rejected and the wizard stays where it is.
func (w *Wizard) Answer(value int) (*Result, error) {
	q, ok := w.Current()
	if !ok {
		return nil, ErrWizardComplete
	}
	if value < 0 || value > q.Max {
		return nil, &ValidationError{QuestionID: q.ID, Value: value, Max: q.Max, Err: ErrOutOfRange}
	}
	w.answers[q.ID] = value

	if w.index < len(w.cfg.Questions)-1 {
		w.index++
		return nil, nil
	}

	result, err := ComputeScore(w.cfg, w.answers)
	if err != nil {
		return nil, err
	}
	w.result = result
	return result, nil
}

// Previous steps back one question, keeping recorded answers. It does
// nothing at the first question or once the wizard is complete.
func (w *Wizard) Previous() {
	if w.Complete() || w.index == 0 {
		return
	}
	w.index--
}

// Reset clears every answer and any result and returns to the first question.
func (w *Wizard) Reset() {
	w.index = 0
	w.answers = Answers{}
	w.result = nil
}

// Answers returns a copy of the answers recorded so far.
func (w *Wizard) Answers() Answers {
	out := make(Answers, len(w.answers))
	for k, v := range w.answers {
		out[k] = v
	}
	return out
}

// Result returns the score once the wizard is complete, nil before.
func (w *Wizard) Result() *Result { return w.result }
