package service

import (
	"strconv"
	"strings"

	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	// scaleCorrectThreshold marks a rating answer as "correct" on the
	// assumed 1-10 scale.
	scaleCorrectThreshold = 7

	// partialCreditPoints is the flat score a non-blank answer of an
	// unrecognized question type contributes to category averages.
	partialCreditPoints = 0.5
)

// ChoiceID derives the canonical choice identifier for a 1-based option
// index. Identifiers are positional: option 1 is "c1", option 2 "c2", ...
func ChoiceID(index int) string {
	return "c" + strconv.Itoa(index)
}

// ScoreAnswer applies the per-type scoring rules to one submitted answer.
// It returns the correctness flag and the point value used for category
// averaging. It never panics on malformed question data: multiple choice
// questions with unparsable options or an out-of-range correct index fail
// closed as incorrect.
func ScoreAnswer(q *model.Question, submitted string) (isCorrect bool, points float64) {
	switch q.Type {
	case model.QuestionMultipleChoice:
		labels, err := q.OptionLabels()
		if err != nil || q.CorrectOption < 1 || q.CorrectOption > len(labels) {
			return false, 0
		}
		if submitted == ChoiceID(q.CorrectOption) {
			return true, 1
		}
		return false, 0

	case model.QuestionScale:
		v, err := strconv.Atoi(strings.TrimSpace(submitted))
		if err != nil {
			return false, 0
		}
		return v >= scaleCorrectThreshold, float64(v)

	default:
		if strings.TrimSpace(submitted) == "" {
			return false, 0
		}
		return true, partialCreditPoints
	}
}

// ScoredResponse pairs a submitted answer with its question definition. A
// nil Question marks an unresolvable reference.
type ScoredResponse struct {
	Question *model.Question
	Answer   string
}

// AggregateCategoryScores averages point values per question category.
// Responses whose question could not be resolved are logged and excluded
// from both the numerator and the denominator.
func AggregateCategoryScores(responses []ScoredResponse) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range responses {
		if r.Question == nil {
			logger.Log.Warn("skipping response with unknown question reference")
			continue
		}
		_, points := ScoreAnswer(r.Question, r.Answer)
		sums[r.Question.Category] += points
		counts[r.Question.Category]++
	}

	scores := make(map[string]float64, len(sums))
	for category, sum := range sums {
		scores[category] = sum / float64(counts[category])
	}
	return scores
}

func warnUnknownQuestion(context string, id uint) {
	logger.Log.Warn("unknown question reference skipped",
		zap.String("context", context),
		zap.Uint("questionId", id),
	)
}
