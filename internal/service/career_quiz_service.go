package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"go.uber.org/zap"
)

// careerPoolSize is how many questions a career session serves per run.
// Smaller banks degrade to min(careerPoolSize, |pool|).
const careerPoolSize = 20

// CareerQuizService selects career quiz questions adaptively: questions
// the user already answered in earlier runs are excluded, and once the
// bank is exhausted the user's history is cleared so the rotation starts
// over.
type CareerQuizService struct {
	Questions QuestionSource
	History   AnswerHistory
	AI        CompletionProvider
}

func NewCareerQuizService(questions QuestionSource, history AnswerHistory, ai CompletionProvider) *CareerQuizService {
	return &CareerQuizService{Questions: questions, History: history, AI: ai}
}

// SelectQuestions returns up to limit unanswered career questions for the
// user, in randomized order. When every question in the bank has been
// answered the history is reset and selection runs against the full bank.
func (s *CareerQuizService) SelectQuestions(ctx context.Context, userID string, limit int) ([]model.Question, error) {
	bank, err := s.Questions.FindCareerQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, nil
	}

	answered, err := s.History.ListAnsweredQuestionIDs(userID)
	if err != nil {
		return nil, err
	}
	answeredSet := make(map[uint]struct{}, len(answered))
	for _, id := range answered {
		answeredSet[id] = struct{}{}
	}

	var pool []model.Question
	for _, q := range bank {
		if _, seen := answeredSet[q.ID]; !seen {
			pool = append(pool, q)
		}
	}

	if len(pool) == 0 {
		logger.Log.Info("career question bank exhausted, resetting answer history",
			zap.String("userId", userID),
		)
		if err := s.History.ClearForUser(userID); err != nil {
			return nil, err
		}
		pool = bank
	}

	return sampleQuestions(pool, limit), nil
}

// sampleQuestions picks min(limit, len(pool)) questions via a partial
// Fisher-Yates shuffle of a copied slice.
func sampleQuestions(pool []model.Question, limit int) []model.Question {
	picked := make([]model.Question, len(pool))
	copy(picked, pool)
	if limit > len(picked) {
		limit = len(picked)
	}
	for i := 0; i < limit; i++ {
		j := i + rand.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:limit]
}

type CareerAdviceResult struct {
	SessionID       string           `json:"sessionId"`
	Recommendations []Recommendation `json:"recommendations"`
	// Advice is the AI narrative; empty when the completion call failed
	// and the result degraded to recommendations only.
	Advice string `json:"advice,omitempty"`
}

// SessionAdvice builds narrative career advice from a completed session's
// results. A completion failure is logged and the rule-based
// recommendations are returned without the narrative.
func (s *CareerQuizService) SessionAdvice(ctx context.Context, session *model.QuizSession) (*CareerAdviceResult, error) {
	if session.Status != model.SessionCompleted {
		return nil, fmt.Errorf("%w: session is not completed", util.ErrInvalidInput)
	}

	var results SessionResults
	if err := json.Unmarshal(session.Results, &results); err != nil {
		return nil, fmt.Errorf("parsing session results: %w", err)
	}

	out := &CareerAdviceResult{
		SessionID:       session.ID,
		Recommendations: results.Recommendations,
	}

	var b strings.Builder
	b.WriteString("You are a pragmatic career advisor. A candidate completed a career quiz.\n")
	b.WriteString("Averaged category scores:\n")
	for category, score := range results.CategoryScores {
		fmt.Fprintf(&b, "- %s: %.2f\n", category, score)
	}
	if len(results.Recommendations) > 0 {
		b.WriteString("Matched directions: ")
		for i, rec := range results.Recommendations {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(rec.Domain)
		}
		b.WriteString("\n")
	}
	b.WriteString("Write 3-5 sentences of concrete, encouraging guidance on next steps.")

	advice, err := s.AI.Complete(ctx, b.String())
	if err != nil {
		logger.Log.Warn("career advice completion failed, returning recommendations only",
			zap.String("sessionId", session.ID),
			zap.Error(err),
		)
		return out, nil
	}
	out.Advice = advice
	return out, nil
}
