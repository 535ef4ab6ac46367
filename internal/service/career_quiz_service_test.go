package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
)

func careerBank(n int) []model.Question {
	var bank []model.Question
	for i := 1; i <= n; i++ {
		bank = append(bank, scaleQ(uint(i), "TechDomain"))
	}
	return bank
}

func TestSelectQuestions_ExcludesAnsweredHistory(t *testing.T) {
	questions := newFakeQuestionSource(careerBank(8)...)
	history := newFakeAnswerHistory()
	svc := NewCareerQuizService(questions, history, &fakeCompletion{})

	history.Record("u1", 1)
	history.Record("u1", 2)
	history.Record("u1", 3)

	picked, err := svc.SelectQuestions(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(picked) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(picked))
	}
	for _, q := range picked {
		if q.ID <= 3 {
			t.Fatalf("answered question %d selected again", q.ID)
		}
	}
}

func TestSelectQuestions_ShrinksWhenPoolSmallerThanLimit(t *testing.T) {
	questions := newFakeQuestionSource(careerBank(6)...)
	history := newFakeAnswerHistory()
	svc := NewCareerQuizService(questions, history, &fakeCompletion{})

	for id := uint(1); id <= 4; id++ {
		history.Record("u1", id)
	}

	picked, err := svc.SelectQuestions(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(picked) != 2 {
		t.Fatalf("expected the 2 remaining questions, got %d", len(picked))
	}
}

func TestSelectQuestions_ResetsHistoryOnExhaustion(t *testing.T) {
	questions := newFakeQuestionSource(careerBank(4)...)
	history := newFakeAnswerHistory()
	svc := NewCareerQuizService(questions, history, &fakeCompletion{})

	for id := uint(1); id <= 4; id++ {
		history.Record("u1", id)
	}

	picked, err := svc.SelectQuestions(context.Background(), "u1", 3)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if history.clears != 1 {
		t.Fatalf("expected one history reset, got %d", history.clears)
	}
	if len(picked) != 3 {
		t.Fatalf("expected full selection from reset bank, got %d", len(picked))
	}

	// the reset wiped the old records, so the next run draws from the
	// whole bank again
	ids, _ := history.ListAnsweredQuestionIDs("u1")
	if len(ids) != 0 {
		t.Fatalf("history not cleared, %d records remain", len(ids))
	}
}

func TestSelectQuestions_OtherUsersUnaffectedByReset(t *testing.T) {
	questions := newFakeQuestionSource(careerBank(2)...)
	history := newFakeAnswerHistory()
	svc := NewCareerQuizService(questions, history, &fakeCompletion{})

	history.Record("u1", 1)
	history.Record("u1", 2)
	history.Record("u2", 1)

	if _, err := svc.SelectQuestions(context.Background(), "u1", 2); err != nil {
		t.Fatalf("select: %v", err)
	}

	ids, _ := history.ListAnsweredQuestionIDs("u2")
	if len(ids) != 1 {
		t.Fatalf("u2's history must survive u1's reset, got %d records", len(ids))
	}
}

func completedSession(t *testing.T) *model.QuizSession {
	t.Helper()
	results := SessionResults{
		Answered:       5,
		TotalQuestions: 5,
		CategoryScores: map[string]float64{"TechDomain": 4.2},
		Recommendations: []Recommendation{
			{Domain: "Technology", MatchLevel: "high"},
		},
	}
	raw, err := json.Marshal(&results)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return &model.QuizSession{
		UUIDBase: model.UUIDBase{ID: "s1"},
		Status:   model.SessionCompleted,
		Results:  raw,
	}
}

func TestSessionAdvice_IncludesNarrative(t *testing.T) {
	ai := &fakeCompletion{reply: "lean into backend work"}
	svc := NewCareerQuizService(newFakeQuestionSource(), newFakeAnswerHistory(), ai)

	out, err := svc.SessionAdvice(context.Background(), completedSession(t))
	if err != nil {
		t.Fatalf("advice: %v", err)
	}
	if out.Advice != "lean into backend work" {
		t.Fatalf("unexpected advice %q", out.Advice)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0].Domain != "Technology" {
		t.Fatalf("recommendations not carried through: %+v", out.Recommendations)
	}
}

func TestSessionAdvice_DegradesWhenCompletionFails(t *testing.T) {
	ai := &fakeCompletion{err: fmt.Errorf("%w: timeout", util.ErrUpstream)}
	svc := NewCareerQuizService(newFakeQuestionSource(), newFakeAnswerHistory(), ai)

	out, err := svc.SessionAdvice(context.Background(), completedSession(t))
	if err != nil {
		t.Fatalf("advice should degrade, not fail: %v", err)
	}
	if out.Advice != "" {
		t.Fatalf("expected no narrative on upstream failure, got %q", out.Advice)
	}
	if len(out.Recommendations) != 1 {
		t.Fatalf("rule-based recommendations must survive the failure")
	}
}

func TestSessionAdvice_RejectsActiveSession(t *testing.T) {
	svc := NewCareerQuizService(newFakeQuestionSource(), newFakeAnswerHistory(), &fakeCompletion{})

	s := &model.QuizSession{Status: model.SessionActive}
	if _, err := svc.SessionAdvice(context.Background(), s); !errors.Is(err, util.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for active session, got %v", err)
	}
}
