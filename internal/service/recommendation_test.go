package service

import "testing"

func TestRecommend_FiresStrictlyAboveThreshold(t *testing.T) {
	recs := Recommend(map[string]float64{
		"TechDomain": 4.0,
		"Ability":    3.5, // at the threshold, must not fire
		"Creative":   1.0,
	})

	if len(recs) != 1 {
		t.Fatalf("expected exactly one recommendation, got %d", len(recs))
	}
	if recs[0].Domain != "Technology" {
		t.Fatalf("expected Technology, got %q", recs[0].Domain)
	}
}

func TestRecommend_OrderFollowsRuleTable(t *testing.T) {
	recs := Recommend(map[string]float64{
		"Social":     5,
		"TechDomain": 4,
		"Business":   4.2,
	})

	want := []string{"Technology", "Business", "Education"}
	if len(recs) != len(want) {
		t.Fatalf("expected %d recommendations, got %d", len(want), len(recs))
	}
	for i, w := range want {
		if recs[i].Domain != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, recs[i].Domain)
		}
	}
}

func TestRecommend_UnknownCategoriesIgnored(t *testing.T) {
	recs := Recommend(map[string]float64{"Astrology": 10})
	if len(recs) != 0 {
		t.Fatalf("unknown category must not produce recommendations, got %v", recs)
	}
}

func TestRecommend_EmptyScores(t *testing.T) {
	if recs := Recommend(nil); len(recs) != 0 {
		t.Fatalf("expected no recommendations for empty scores, got %v", recs)
	}
}
