package similarity

import "testing"

func fitted() *Model {
	return Fit(map[string]string{
		"data scientist":  "statistical modeling machine learning python data analysis",
		"web developer":   "javascript react html css frontend web applications",
		"devops engineer": "kubernetes docker ci cd infrastructure automation cloud",
	})
}

func TestScoreBounds(t *testing.T) {
	m := fitted()
	texts := []string{
		"python machine learning statistics",
		"javascript react frontend",
		"completely unrelated gardening hobby",
		"",
	}
	for _, text := range texts {
		for _, key := range []string{"data scientist", "web developer", "devops engineer"} {
			got := m.Score(text, key)
			if got < 0 || got > 1 {
				t.Errorf("Score(%q, %q) = %v, out of [0,1]", text, key, got)
			}
		}
	}
}

func TestScoreRanksRelevantDocHigher(t *testing.T) {
	m := fitted()
	text := "python machine learning and statistical analysis"
	ds := m.Score(text, "data scientist")
	web := m.Score(text, "web developer")
	if ds <= web {
		t.Errorf("data scientist (%v) should outrank web developer (%v)", ds, web)
	}
	if ds == 0 {
		t.Error("overlapping text should score above zero")
	}
}

func TestScoreUnknownDocKey(t *testing.T) {
	if got := fitted().Score("python", "nonexistent"); got != 0 {
		t.Errorf("unknown doc key = %v, want 0", got)
	}
}

func TestScoreIdenticalTextIsNearOne(t *testing.T) {
	corpus := map[string]string{
		"a": "python machine learning statistics",
		"b": "javascript react frontend",
	}
	m := Fit(corpus)
	got := m.Score(corpus["a"], "a")
	if got < 0.99 {
		t.Errorf("self similarity = %v, want ~1", got)
	}
}

func TestFitIsDeterministic(t *testing.T) {
	corpus := map[string]string{
		"x": "alpha beta gamma delta",
		"y": "beta gamma epsilon",
		"z": "zeta alpha theta",
	}
	a := Fit(corpus)
	b := Fit(corpus)
	text := "alpha beta unseen"
	for _, key := range []string{"x", "y", "z"} {
		if a.Score(text, key) != b.Score(text, key) {
			t.Errorf("nondeterministic score for %q", key)
		}
	}
}
