package service

import (
	"testing"

	"skillpath_backend/internal/model"
)

func TestScoreAnswer_MultipleChoice(t *testing.T) {
	q := mcq(1, "TechDomain", 2, "Linked list", "Hash map", "Binary tree")

	correct, points := ScoreAnswer(&q, "c2")
	if !correct || points != 1 {
		t.Fatalf("expected correct with 1 point, got %v/%v", correct, points)
	}

	correct, points = ScoreAnswer(&q, "c1")
	if correct || points != 0 {
		t.Fatalf("expected incorrect with 0 points, got %v/%v", correct, points)
	}
}

func TestScoreAnswer_MultipleChoiceMalformedOptionsFailsClosed(t *testing.T) {
	q := model.Question{
		Type:          model.QuestionMultipleChoice,
		Options:       []byte(`{"not":"an array"}`),
		CorrectOption: 1,
	}
	if correct, points := ScoreAnswer(&q, "c1"); correct || points != 0 {
		t.Fatalf("malformed options must score as incorrect, got %v/%v", correct, points)
	}

	outOfRange := mcq(2, "TechDomain", 5, "a", "b")
	if correct, _ := ScoreAnswer(&outOfRange, "c5"); correct {
		t.Fatalf("out-of-range correct index must score as incorrect")
	}
}

func TestScoreAnswer_Scale(t *testing.T) {
	q := scaleQ(3, "Ability")

	correct, points := ScoreAnswer(&q, "8")
	if !correct || points != 8 {
		t.Fatalf("scale 8 should be correct with 8 points, got %v/%v", correct, points)
	}

	correct, points = ScoreAnswer(&q, "5")
	if correct || points != 5 {
		t.Fatalf("scale 5 should be incorrect with 5 points, got %v/%v", correct, points)
	}

	if correct, points := ScoreAnswer(&q, "not a number"); correct || points != 0 {
		t.Fatalf("unparsable scale answer should be 0, got %v/%v", correct, points)
	}
}

func TestScoreAnswer_FallbackPartialCredit(t *testing.T) {
	q := model.Question{Type: model.QuestionFreeText}

	if correct, points := ScoreAnswer(&q, "some essay"); !correct || points != 0.5 {
		t.Fatalf("non-blank free text should earn partial credit, got %v/%v", correct, points)
	}
	if correct, points := ScoreAnswer(&q, "   "); correct || points != 0 {
		t.Fatalf("blank free text should earn nothing, got %v/%v", correct, points)
	}
}

func TestAggregateCategoryScores_AveragesPerCategory(t *testing.T) {
	tech1 := mcq(1, "TechDomain", 1, "a", "b")
	tech2 := scaleQ(2, "TechDomain")
	ability := scaleQ(3, "Ability")

	scores := AggregateCategoryScores([]ScoredResponse{
		{Question: &tech1, Answer: "c1"}, // 1 point
		{Question: &tech2, Answer: "7"},  // 7 points
		{Question: &ability, Answer: "4"},
	})

	if got := scores["TechDomain"]; got != 4 {
		t.Fatalf("expected TechDomain average 4, got %v", got)
	}
	if got := scores["Ability"]; got != 4 {
		t.Fatalf("expected Ability average 4, got %v", got)
	}
}

func TestAggregateCategoryScores_SkipsUnknownQuestions(t *testing.T) {
	q := scaleQ(1, "Ability")

	scores := AggregateCategoryScores([]ScoredResponse{
		{Question: &q, Answer: "6"},
		{Question: nil, Answer: "9"},
	})

	if got := scores["Ability"]; got != 6 {
		t.Fatalf("nil question must not affect the average, got %v", got)
	}
	if len(scores) != 1 {
		t.Fatalf("expected a single category, got %v", scores)
	}
}
