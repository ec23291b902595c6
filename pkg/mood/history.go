package mood

import "time"

// Upsert returns history with e stored under its date. An existing entry for
// the same date is replaced in place; a new date is appended. history is not
// modified.
func Upsert(history []Entry, e Entry) ([]Entry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.Factors = uniqueFactors(e.Factors)

	out := make([]Entry, 0, len(history)+1)
	replaced := false
	for _, h := range history {
		if h.Date == e.Date {
			if !replaced {
				out = append(out, e)
				replaced = true
			}
			continue
		}
		out = append(out, h)
	}
	if !replaced {
		out = append(out, e)
	}
	return out, nil
}

// uniqueFactors drops repeated tags, keeping first-seen order. The result
// is never nil.
func uniqueFactors(factors []string) []string {
	out := make([]string, 0, len(factors))
	seen := make(map[string]bool, len(factors))
	for _, f := range factors {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// Find returns the entry recorded for date.
func Find(history []Entry, date string) (Entry, bool) {
	for _, h := range history {
		if h.Date == date {
			return h, true
		}
	}
	return Entry{}, false
}

// Window keeps the entries dated no earlier than days calendar days before
// today. Entries with unparseable dates are dropped. A non-positive days
// keeps everything parseable.
func Window(entries []Entry, today time.Time, days int) []Entry {
	cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		d, err := e.Day()
		if err != nil {
			continue
		}
		if days > 0 && d.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summary is the at-a-glance view of the whole journal.
type Summary struct {
	Entries       int     `json:"entries"`
	Average       float64 `json:"average"`        // over all entries
	RecentAverage float64 `json:"recent_average"` // over the last RecentCount entries
	Latest        *Entry  `json:"latest,omitempty"`
}

// RecentCount is how many trailing entries the recent average covers.
const RecentCount = 7

// Summarize averages the journal overall and over its most recent entries,
// in stored order.
func Summarize(history []Entry) Summary {
	s := Summary{Entries: len(history)}
	if len(history) == 0 {
		return s
	}
	s.Average = mean(history)
	recent := history
	if len(recent) > RecentCount {
		recent = recent[len(recent)-RecentCount:]
	}
	s.RecentAverage = mean(recent)
	latest := history[len(history)-1]
	s.Latest = &latest
	return s
}

func mean(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += int(e.Mood)
	}
	return float64(sum) / float64(len(entries))
}
