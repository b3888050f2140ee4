package analyzer

import (
	"reflect"
	"testing"
)

var rules = []KeywordRule{
	{Keyword: "fatigue", Category: "Energy", BodySystem: "Endocrine/Metabolic", Urgency: 5, Specialties: []string{"Internal Medicine", "Endocrinology"}},
	{Keyword: "headache", Category: "Neurological", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Neurology", "Internal Medicine"}},
	{Keyword: "migraine", Category: "Neurological", BodySystem: "Nervous System", Urgency: 7, Specialties: []string{"Neurology"}},
	{Keyword: "chest pain", Category: "Cardiovascular", BodySystem: "Cardiovascular", Urgency: 9, Specialties: []string{"Cardiology", "Emergency Medicine"}},
	{Keyword: "sleep", Category: "Sleep", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Sleep Medicine"}},
	{Keyword: "pain", Category: "Pain", BodySystem: "Musculoskeletal", Urgency: 5, Specialties: []string{"Rheumatology", "Pain Management"}},
}

func TestAnalyze_SevereHeadachesScenario(t *testing.T) {
	a := New(rules)

	res := a.Analyze("I've had severe headaches for 3 days, worse in the morning")

	if !containsString(res.Tags, "headache") {
		t.Errorf("expected 'headache' tag, got %v", res.Tags)
	}
	if res.Category != "Neurological" {
		t.Errorf("expected category Neurological, got %s", res.Category)
	}
	if res.BodySystem != "Nervous System" {
		t.Errorf("expected body system Nervous System, got %s", res.BodySystem)
	}
	if res.Urgency != 5 {
		t.Errorf("expected urgency 5, got %d", res.Urgency)
	}
	if res.Duration != "3 days" {
		t.Errorf("expected duration '3 days', got %q", res.Duration)
	}
	// "severe" and "worse" both present.
	if res.Sentiment > -0.2 {
		t.Errorf("expected sentiment <= -0.2, got %f", res.Sentiment)
	}
}

func TestAnalyze_MultiWordKeyword(t *testing.T) {
	a := New(rules)

	res := a.Analyze("sudden chest pain while climbing stairs")

	// Both "chest pain" and the shorter "pain" match.
	if !containsString(res.Tags, "chest pain") || !containsString(res.Tags, "pain") {
		t.Errorf("expected both pain tags, got %v", res.Tags)
	}
	if res.Urgency != 9 || res.Category != "Cardiovascular" {
		t.Errorf("expected cardiovascular urgency 9, got %s/%d", res.Category, res.Urgency)
	}
}

func TestAnalyze_TieBreakLastMatchWins(t *testing.T) {
	a := New(rules)

	// headache (5) then sleep (5): equal urgency, later rule decides.
	res := a.Analyze("headache and no sleep")

	if res.Urgency != 5 {
		t.Fatalf("expected urgency 5, got %d", res.Urgency)
	}
	if res.Category != "Pain" && res.Category != "Sleep" {
		t.Fatalf("unexpected category %s", res.Category)
	}
	// "pain" is not in this text, so the sleep rule is the last equal
	// match and must win over the earlier headache rule.
	if res.Category != "Sleep" {
		t.Errorf("expected later equal-urgency match to win, got %s", res.Category)
	}
}

func TestAnalyze_HigherUrgencyNotOverwrittenByLower(t *testing.T) {
	a := New(rules)

	// migraine (7) matches before sleep (5); the lower later match must
	// not take over.
	res := a.Analyze("migraine ruining my sleep")

	if res.Category != "Neurological" || res.Urgency != 7 {
		t.Errorf("expected Neurological/7, got %s/%d", res.Category, res.Urgency)
	}
}

func TestAnalyze_TagsInRuleOrder(t *testing.T) {
	a := New(rules)

	res := a.Analyze("sleep problems and constant fatigue with headache")

	want := []string{"fatigue", "headache", "sleep"}
	if !reflect.DeepEqual(res.Tags, want) {
		t.Errorf("expected tags %v, got %v", want, res.Tags)
	}
}

func TestAnalyze_SpecialistsDeduplicated(t *testing.T) {
	a := New(rules)

	// fatigue and headache both contribute Internal Medicine.
	res := a.Analyze("fatigue and headache")

	count := 0
	for _, s := range res.Specialists {
		if s == "Internal Medicine" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Internal Medicine exactly once, got %v", res.Specialists)
	}
}

func TestAnalyze_NoMatchFallbackTags(t *testing.T) {
	a := New(rules)

	res := a.Analyze("weird fluttery feeling behind ribs today")

	want := []string{"weird", "fluttery", "feeling"}
	if !reflect.DeepEqual(res.Tags, want) {
		t.Errorf("expected first three long words %v, got %v", want, res.Tags)
	}
	if res.Category != "General" || res.BodySystem != "General" || res.Urgency != 3 {
		t.Errorf("expected General/General/3, got %s/%s/%d", res.Category, res.BodySystem, res.Urgency)
	}
}

func TestAnalyze_ShortWordsOnly_Unspecified(t *testing.T) {
	a := New(rules)

	res := a.Analyze("not ok at all")

	if !reflect.DeepEqual(res.Tags, []string{"unspecified"}) {
		t.Errorf("expected [unspecified], got %v", res.Tags)
	}
}

func TestAnalyze_BlankInput(t *testing.T) {
	a := New(rules)

	res := a.Analyze("")

	if !reflect.DeepEqual(res.Tags, []string{"unspecified"}) {
		t.Errorf("expected [unspecified], got %v", res.Tags)
	}
	if res.Urgency != 3 {
		t.Errorf("expected default urgency 3, got %d", res.Urgency)
	}
}

func TestAnalyze_SentimentClampsAtNegativeOne(t *testing.T) {
	a := New(rules)

	res := a.Analyze("terrible awful horrible pain bad worse severe")

	if res.Sentiment != -1 {
		t.Errorf("expected sentiment clamped to -1, got %f", res.Sentiment)
	}
}

func TestAnalyze_SentimentCountsDistinctWordsOnce(t *testing.T) {
	a := New(rules)

	res := a.Analyze("bad bad bad")

	if res.Sentiment != -0.2 {
		t.Errorf("expected -0.2 for one distinct negative word, got %f", res.Sentiment)
	}
}

func TestAnalyze_SentimentMixed(t *testing.T) {
	a := New(rules)

	res := a.Analyze("sleeping better but still feeling bad")

	if res.Sentiment != 0 {
		t.Errorf("expected 0 for one positive and one negative, got %f", res.Sentiment)
	}
}

func TestAnalyze_FrequencyExtraction(t *testing.T) {
	a := New(rules)

	cases := []struct {
		text string
		want string
	}{
		{"headache daily since monday", "daily"},
		{"it happens every evening", "every evening"},
		{"occasionally dizzy", "occasionally"},
		{"no pattern at all", ""},
	}
	for _, tc := range cases {
		if got := a.Analyze(tc.text).Frequency; got != tc.want {
			t.Errorf("%q: expected frequency %q, got %q", tc.text, tc.want, got)
		}
	}
}

func TestAnalyze_DurationExtraction(t *testing.T) {
	a := New(rules)

	cases := []struct {
		text string
		want string
	}{
		{"numb for 2 weeks now", "2 weeks"},
		{"about 30 minutes each time", "30 minutes"},
		{"started 1 month ago", "1 month"},
		{"since last spring", ""},
	}
	for _, tc := range cases {
		if got := a.Analyze(tc.text).Duration; got != tc.want {
			t.Errorf("%q: expected duration %q, got %q", tc.text, tc.want, got)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := New(rules)
	text := "severe headaches for 3 days, sleeping badly"

	first := a.Analyze(text)
	second := a.Analyze(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differed:\n%+v\n%+v", first, second)
	}
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
