package service

import (
	"context"
	"encoding/json"
	"time"

	"skillpath_backend/internal/model"
)

// The services talk to the durable store through these narrow interfaces;
// the gorm repositories satisfy them in production and the tests use
// in-memory fakes.

type QuestionSource interface {
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	ListByDomain(domainID uint) ([]model.Question, error)
	FindCareerQuestions(ctx context.Context) ([]model.Question, error)
}

type AssessmentStore interface {
	Create(a *model.Assessment) error
	FindByIDWithItems(id uint) (*model.Assessment, error)
	SealWithItems(assessmentID uint, items []model.AssessmentItem, score float64, submittedAt time.Time) error
}

type SessionStore interface {
	Create(s *model.QuizSession) error
	FindByID(id string) (*model.QuizSession, error)
	RecordAnswer(id string, step int, responses model.ResponseMap) error
	Complete(id string, results json.RawMessage, completedAt time.Time) error
}

type AnswerHistory interface {
	ListAnsweredQuestionIDs(userID string) ([]uint, error)
	Record(userID string, questionID uint) error
	ClearForUser(userID string) error
}
