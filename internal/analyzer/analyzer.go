// Package analyzer turns free-text symptom descriptions into structured
// clinical-style tags without any external API or learned model. It is a
// keyword matcher over a fixed, ordered rule list plus word-list
// sentiment scoring and simple duration/frequency pattern extraction.
package analyzer

import (
	"regexp"
	"strings"
)

// KeywordRule maps one keyword phrase to its classification. Keywords
// may be multi-word phrases; matching is substring containment against
// the lowercased input, so "chest pain" must appear contiguously.
type KeywordRule struct {
	Keyword     string
	Category    string
	BodySystem  string
	Urgency     int // 1-9
	Specialties []string
}

// Result is the structured analysis of one symptom text.
type Result struct {
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	BodySystem  string   `json:"bodySystem"`
	Urgency     int      `json:"urgency"`
	Specialists []string `json:"specialists"`
	Sentiment   float64  `json:"sentiment"`
	Duration    string   `json:"duration,omitempty"`
	Frequency   string   `json:"frequency,omitempty"`
}

// Defaults applied when no keyword matches.
const (
	defaultCategory   = "General"
	defaultBodySystem = "General"
	defaultUrgency    = 3
)

var negativeWords = []string{
	"pain", "bad", "worse", "terrible", "severe", "awful", "horrible",
	"can't", "difficulty", "hard", "struggling",
}

var positiveWords = []string{
	"good", "better", "improving", "great", "excellent", "normal",
	"fine", "well",
}

var (
	durationPattern  = regexp.MustCompile(`\d+\s*(?:hours?|minutes?|days?|weeks?|months?)`)
	frequencyPattern = regexp.MustCompile(`daily|weekly|monthly|constantly|occasionally|sometimes|always|never|often|rarely|every\s+\w+`)
)

// Analyzer evaluates an ordered rule list. The zero value is unusable;
// construct with New.
type Analyzer struct {
	rules []KeywordRule
}

// New returns an Analyzer over the given rules. Rule order matters: when
// two matched keywords tie on urgency, the later rule wins the reported
// category and body system.
func New(rules []KeywordRule) *Analyzer {
	return &Analyzer{rules: rules}
}

// Analyze maps raw symptom text to a Result. It is a pure function of
// its input and the rule list: it never fails, and blank input yields
// the "unspecified"/General default result. Rejecting blank input is the
// caller's job.
func (a *Analyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)

	res := Result{
		Category:   defaultCategory,
		BodySystem: defaultBodySystem,
		Urgency:    defaultUrgency,
	}

	seen := make(map[string]bool)
	for _, rule := range a.rules {
		if !strings.Contains(lower, rule.Keyword) {
			continue
		}
		res.Tags = append(res.Tags, rule.Keyword)
		for _, s := range rule.Specialties {
			if !seen[s] {
				seen[s] = true
				res.Specialists = append(res.Specialists, s)
			}
		}
		// Equal-or-greater urgency overwrites: the last matched rule at
		// the current maximum decides category and body system.
		if rule.Urgency >= res.Urgency {
			res.Urgency = rule.Urgency
			res.Category = rule.Category
			res.BodySystem = rule.BodySystem
		}
	}

	if len(res.Tags) == 0 {
		for _, w := range strings.Fields(lower) {
			if len(w) > 4 {
				res.Tags = append(res.Tags, w)
				if len(res.Tags) == 3 {
					break
				}
			}
		}
	}
	if len(res.Tags) == 0 {
		res.Tags = []string{"unspecified"}
	}

	// One decrement/increment per distinct word present, not per
	// occurrence.
	sentiment := 0.0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			sentiment -= 0.2
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			sentiment += 0.2
		}
	}
	res.Sentiment = clamp(sentiment, -1, 1)

	res.Duration = durationPattern.FindString(lower)
	res.Frequency = frequencyPattern.FindString(lower)

	return res
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
