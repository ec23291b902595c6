package scoring

import "sort"

// Instrument keys of the built-in questionnaires.
const (
	QuickAssessmentKey = "quick-assessment"
	StressIndicatorKey = "stress-indicator"
	MentalAnalysisKey  = "mental-analysis"
)

// Instruments returns the built-in questionnaires, ordered by key.
func Instruments() []*ScoreConfig {
	all := []*ScoreConfig{QuickAssessment(), StressIndicator(), MentalAnalysis()}
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })
	return all
}

// Lookup returns the built-in questionnaire with the given key.
func Lookup(key string) (*ScoreConfig, bool) {
	for _, c := range Instruments() {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

func scale(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Value: i, Label: l}
	}
	return opts
}

// descending lists labels from the highest value down, the way distress
// items read most naturally.
func descending(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Value: len(labels) - 1 - i, Label: l}
	}
	return opts
}

// wellnessTiers is the four-band table shared by the wellness instruments.
func wellnessTiers() []Tier {
	return []Tier{
		{
			LowerBound:  0,
			Label:       "Needs Attention",
			Description: "You may be experiencing significant challenges. Please consider seeking professional support.",
			Recommendations: []string{
				"Speak with a mental health professional as soon as possible",
				"Contact a crisis helpline if you're in immediate distress",
				"Reach out to trusted friends, family, or support groups",
				"Focus on basic self-care: sleep, nutrition, and gentle movement",
			},
		},
		{
			LowerBound:  40,
			Label:       "Moderate",
			Description: "You may be experiencing some challenges that warrant attention.",
			Recommendations: []string{
				"Consider talking to a mental health professional",
				"Prioritize self-care activities",
				"Reach out to trusted friends or family",
				"Establish a consistent daily routine",
			},
		},
		{
			LowerBound:  60,
			Label:       "Good",
			Description: "You're managing well overall, with some areas that could use attention.",
			Recommendations: []string{
				"Focus on improving sleep quality",
				"Incorporate regular exercise into your routine",
				"Practice stress management techniques",
				"Consider mindfulness or meditation practices",
			},
		},
		{
			LowerBound:  80,
			Label:       "Excellent",
			Description: "You're doing great! Your mental wellness appears to be in excellent shape.",
			Recommendations: []string{
				"Continue your current healthy habits",
				"Share your wellness strategies with others",
				"Consider helping others who might be struggling",
				"Maintain regular check-ins with yourself",
			},
		},
	}
}

// QuickAssessment is the seven-question general wellness check.
func QuickAssessment() *ScoreConfig {
	return &ScoreConfig{
		Key:         QuickAssessmentKey,
		Name:        "Quick Assessment",
		Summary:     "Seven questions about how your week has been.",
		Orientation: OrientWellness,
		Questions: []Question{
			{
				ID: "sleep", Prompt: "How would you rate your sleep quality over the past week?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very poor - I rarely get quality sleep",
					"Poor - I often have trouble sleeping",
					"Fair - Some nights are better than others",
					"Good - I usually sleep well",
					"Excellent - I consistently get great sleep",
				),
			},
			{
				ID: "energy", Prompt: "How has your energy level been recently?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very low - I feel exhausted most of the time",
					"Low - I often feel tired and drained",
					"Moderate - Some days are better than others",
					"High - I usually feel energetic",
					"Very high - I feel vibrant and energized",
				),
			},
			{
				ID: "mood", Prompt: "How would you describe your overall mood this week?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very negative - I feel sad or down most days",
					"Somewhat negative - I have more bad days than good",
					"Neutral - My mood is neither particularly good nor bad",
					"Positive - I feel good most of the time",
					"Very positive - I feel happy and optimistic",
				),
			},
			{
				ID: "stress", Prompt: "How would you rate your current stress level?",
				Polarity: HigherIsWorse, Max: 4,
				Options: descending(
					"Very high - I feel overwhelmed and unable to cope",
					"High - I feel stressed frequently",
					"Moderate - I have some stress but it's manageable",
					"Low - I feel calm most of the time",
					"Very low - I feel very relaxed and peaceful",
				),
			},
			{
				ID: "concentration", Prompt: "How well have you been able to concentrate and focus?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very poor - I can barely focus on anything",
					"Poor - I have significant difficulty concentrating",
					"Fair - I can focus sometimes but it's challenging",
					"Good - I can usually focus when I need to",
					"Excellent - I have no trouble concentrating",
				),
			},
			{
				ID: "social", Prompt: "How satisfied are you with your social connections?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very unsatisfied - I feel isolated and lonely",
					"Unsatisfied - I wish I had better connections",
					"Neutral - My social life is okay",
					"Satisfied - I have good relationships",
					"Very satisfied - I have strong, supportive relationships",
				),
			},
			{
				ID: "coping", Prompt: "How well are you managing daily challenges?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very poorly - I feel unable to handle daily tasks",
					"Poorly - I struggle with everyday challenges",
					"Somewhat - I manage but it's difficult",
					"Well - I handle most challenges effectively",
					"Very well - I feel confident managing daily life",
				),
			},
		},
		Tiers: wellnessTiers(),
	}
}

// StressIndicator is the five-question momentary stress check. Its
// percentage reads as distress: higher means more stressed.
func StressIndicator() *ScoreConfig {
	return &ScoreConfig{
		Key:         StressIndicatorKey,
		Name:        "Stress Level Indicator",
		Summary:     "Five quick questions about how stressed you feel right now.",
		Orientation: OrientDistress,
		Questions: []Question{
			{
				ID: "tension", Prompt: "How tense do you feel right now?",
				Polarity: HigherIsWorse, Max: 4,
				Options: scale("Very relaxed", "Somewhat relaxed", "Neutral", "Somewhat tense", "Very tense"),
			},
			{
				ID: "overwhelm", Prompt: "How overwhelmed do you feel with your current responsibilities?",
				Polarity: HigherIsWorse, Max: 4,
				Options: scale("Not at all", "A little", "Moderately", "Quite a bit", "Extremely"),
			},
			{
				ID: "relaxation", Prompt: "How difficult is it for you to relax right now?",
				Polarity: HigherIsWorse, Max: 4,
				Options: scale("Very easy", "Easy", "Moderate", "Difficult", "Very difficult"),
			},
			{
				ID: "anxiety", Prompt: "How often have you felt nervous or anxious today?",
				Polarity: HigherIsWorse, Max: 4,
				Options: scale("Never", "Rarely", "Sometimes", "Often", "Very often"),
			},
			{
				ID: "management", Prompt: "How well are you managing your current stress?",
				Polarity: HigherIsWorse, Max: 4,
				Options: scale("Very well", "Well", "Moderately", "Poorly", "Very poorly"),
			},
		},
		Tiers: []Tier{
			{
				LowerBound:  0,
				Label:       "Very Low",
				Description: "You're in a very relaxed state. This is excellent for your mental and physical health.",
				Recommendations: []string{
					"Maintain your current stress management practices",
					"Continue regular relaxation activities",
					"Consider sharing your strategies with others",
					"Stay mindful of potential stressors",
				},
			},
			{
				LowerBound:  20,
				Label:       "Low",
				Description: "You're managing stress well overall. Some minor stress is normal and can even be beneficial.",
				Recommendations: []string{
					"Keep up your current coping strategies",
					"Monitor your stress levels regularly",
					"Practice preventive stress management",
					"Maintain healthy lifestyle habits",
				},
			},
			{
				LowerBound:  40,
				Label:       "Moderate",
				Description: "You're experiencing moderate stress levels. This is manageable but worth addressing.",
				Recommendations: []string{
					"Try deep breathing exercises",
					"Take regular breaks from stressful activities",
					"Consider meditation or mindfulness practices",
					"Evaluate and adjust your daily schedule",
				},
			},
			{
				LowerBound:  60,
				Label:       "High",
				Description: "You're experiencing high stress levels. It's important to take action to reduce stress.",
				Recommendations: []string{
					"Practice stress reduction techniques immediately",
					"Remove or delegate non-essential tasks",
					"Talk to someone you trust about your stress",
					"Consider professional stress management resources",
				},
			},
			{
				LowerBound:  80,
				Label:       "Very High",
				Description: "You're experiencing very high stress levels. Immediate action is recommended.",
				Recommendations: []string{
					"Take immediate steps to reduce stress",
					"Consider speaking with a mental health professional",
					"Remove yourself from stressful situations if possible",
					"Focus on basic self-care: rest, hydration, and nutrition",
				},
			},
		},
	}
}

// MentalAnalysis is the three-section wellness check.
// Its two higher-is-worse items carry double weight so they make up half
// of the score, like the four positive items together.
func MentalAnalysis() *ScoreConfig {
	const (
		cognitive = "Cognitive Assessment"
		emotional = "Emotional Wellness"
		physical  = "Physical Wellness"
	)
	return &ScoreConfig{
		Key:         MentalAnalysisKey,
		Name:        "Mental Analysis",
		Summary:     "A three-section look at how your mind and body are doing.",
		Orientation: OrientWellness,
		Questions: []Question{
			{
				ID: "focusLevel", Section: cognitive, Prompt: "How would you rate your ability to concentrate today?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very poor - I can't focus at all",
					"Poor - I struggle to maintain focus",
					"Fair - I can focus with effort",
					"Good - I can focus on most tasks",
					"Excellent - I feel very focused and clear",
				),
			},
			{
				ID: "cognitiveLoad", Section: cognitive, Prompt: "How overwhelming do your thoughts feel right now?",
				Polarity: HigherIsWorse, Max: 4, Weight: 2,
				Options: descending(
					"Extremely overwhelming - racing thoughts",
					"Very overwhelming - hard to manage",
					"Moderately overwhelming - manageable",
					"Slightly overwhelming - mostly clear",
					"Not overwhelming - thoughts are clear",
				),
			},
			{
				ID: "emotionalStability", Section: emotional, Prompt: "How stable do your emotions feel today?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very unstable - emotions are all over the place",
					"Unstable - frequent mood changes",
					"Somewhat stable - minor fluctuations",
					"Stable - emotions feel balanced",
					"Very stable - I feel emotionally grounded",
				),
			},
			{
				ID: "socialConnection", Section: emotional, Prompt: "How connected do you feel to others?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very disconnected - I feel isolated",
					"Disconnected - limited social connection",
					"Somewhat connected - average social interaction",
					"Connected - good social relationships",
					"Very connected - strong social support",
				),
			},
			{
				ID: "sleepQuality", Section: physical, Prompt: "How would you rate your sleep quality recently?",
				Polarity: HigherIsBetter, Max: 4,
				Options: scale(
					"Very poor - I rarely sleep well",
					"Poor - I often have trouble sleeping",
					"Fair - some good nights, some bad",
					"Good - I usually sleep well",
					"Excellent - I consistently sleep great",
				),
			},
			{
				ID: "stressLevel", Section: physical, Prompt: "What's your current stress level?",
				Polarity: HigherIsWorse, Max: 4, Weight: 2,
				Options: descending(
					"Extremely high - I feel overwhelmed",
					"High - significant stress",
					"Moderate - manageable stress",
					"Low - minimal stress",
					"Very low - I feel very relaxed",
				),
			},
		},
		Tiers: []Tier{
			{
				LowerBound:  0,
				Label:       "Needs Attention",
				Description: "Several areas are under strain right now.",
				Recommendations: []string{
					"Strongly consider professional mental health support",
					"Focus on immediate stress relief techniques",
					"Prioritize basic self-care: sleep, nutrition, movement",
				},
				Concerns: []string{"High stress levels", "Multiple areas of concern"},
			},
			{
				LowerBound:  40,
				Label:       "Moderate",
				Description: "Some areas are holding up while others need attention.",
				Recommendations: []string{
					"Consider professional mental health support",
					"Implement stress reduction techniques",
					"Focus on building social connections",
				},
				Concerns: []string{"Moderate stress levels", "Some areas need attention"},
			},
			{
				LowerBound:  60,
				Label:       "Good",
				Description: "Most areas look healthy, with room to strengthen a few.",
				Recommendations: []string{
					"Focus on areas that scored lower",
					"Consider adding meditation or mindfulness practices",
					"Prioritize consistent sleep schedule",
				},
			},
			{
				LowerBound:  80,
				Label:       "Excellent",
				Description: "All assessed areas look strong.",
				Recommendations: []string{
					"Continue your current wellness practices",
					"Consider mentoring others on their wellness journey",
					"Maintain regular check-ins with yourself",
				},
			},
		},
	}
}
