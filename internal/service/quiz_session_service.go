package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionTypeCareer sessions draw their questions from the adaptive
// career pool; any other session type walks its category bank in order.
const SessionTypeCareer = "career"

type QuizSessionService struct {
	Sessions  SessionStore
	Questions QuestionSource
	History   AnswerHistory
	Pool      *CareerQuizService
}

func NewQuizSessionService(sessions SessionStore, questions QuestionSource, history AnswerHistory, pool *CareerQuizService) *QuizSessionService {
	return &QuizSessionService{
		Sessions:  sessions,
		Questions: questions,
		History:   history,
		Pool:      pool,
	}
}

type StartSessionResult struct {
	SessionID      string `json:"sessionId"`
	SessionType    string `json:"sessionType"`
	TotalQuestions int    `json:"totalQuestions"`
}

// Start creates an active session at step 0 with an empty response map.
func (s *QuizSessionService) Start(ctx context.Context, userID, sessionType string) (*StartSessionResult, error) {
	if sessionType == "" {
		return nil, fmt.Errorf("%w: session type is required", util.ErrInvalidInput)
	}
	if userID == "" {
		userID = model.AnonymousUser
	}

	var (
		questions []model.Question
		err       error
	)
	if sessionType == SessionTypeCareer {
		questions, err = s.Pool.SelectQuestions(ctx, userID, careerPoolSize)
	} else {
		questions, err = s.questionsByCategory(sessionType)
	}
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions for session type %q", util.ErrInvalidInput, sessionType)
	}

	ids := make(model.IDList, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	session := &model.QuizSession{
		UserID:      userID,
		SessionType: sessionType,
		Status:      model.SessionActive,
		CurrentStep: 0,
		QuestionIDs: ids,
		Responses:   model.ResponseMap{},
	}
	if err := s.Sessions.Create(session); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz session started",
		zap.String("sessionId", session.ID),
		zap.String("sessionType", sessionType),
		zap.Int("questions", len(ids)),
	)

	return &StartSessionResult{
		SessionID:      session.ID,
		SessionType:    sessionType,
		TotalQuestions: len(ids),
	}, nil
}

func (s *QuizSessionService) questionsByCategory(category string) ([]model.Question, error) {
	all, err := s.Questions.FindCareerQuestions(context.Background())
	if err != nil {
		return nil, err
	}
	var qs []model.Question
	for _, q := range all {
		if q.Category == category {
			qs = append(qs, q)
		}
	}
	return qs, nil
}

// SessionQuestionView is the next-question payload; the correct answer
// never leaves the server.
type SessionQuestionView struct {
	Index    int                `json:"index"`
	Type     model.QuestionType `json:"type"`
	Category string             `json:"category"`
	Content  string             `json:"content"`
	Options  json.RawMessage    `json:"options,omitempty"`
	Progress float64            `json:"progress"`
}

// SessionResults is the payload persisted on completion.
type SessionResults struct {
	Answered        int                `json:"answered"`
	TotalQuestions  int                `json:"totalQuestions"`
	CategoryScores  map[string]float64 `json:"categoryScores"`
	Recommendations []Recommendation   `json:"recommendations"`
}

type AdvanceResult struct {
	SessionID   string               `json:"sessionId"`
	Completed   bool                 `json:"completed"`
	CurrentStep int                  `json:"currentStep"`
	Question    *SessionQuestionView `json:"question,omitempty"`
	Results     json.RawMessage      `json:"results,omitempty"`
}

// Advance records the supplied answer (if any) at questionIndex, then
// either returns the next question or completes the session. The answer
// write is persisted before the next question is computed: a resumed
// session never re-asks a durably recorded answer. Advancing a completed
// session is an idempotent no-op that returns the stored results.
func (s *QuizSessionService) Advance(ctx context.Context, sessionID string, answer *string, questionIndex int) (*AdvanceResult, error) {
	session, err := s.Sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status == model.SessionCompleted {
		return &AdvanceResult{
			SessionID:   session.ID,
			Completed:   true,
			CurrentStep: session.CurrentStep,
			Results:     session.Results,
		}, nil
	}

	total := len(session.QuestionIDs)
	if questionIndex < 0 || questionIndex >= total {
		return nil, fmt.Errorf("%w: question index %d out of range", util.ErrInvalidInput, questionIndex)
	}

	nextIndex := questionIndex
	if answer != nil {
		if session.Responses == nil {
			session.Responses = model.ResponseMap{}
		}
		session.Responses[questionIndex] = *answer

		// the step counter never moves backwards
		step := questionIndex + 1
		if step < session.CurrentStep {
			step = session.CurrentStep
		}
		if err := s.Sessions.RecordAnswer(session.ID, step, session.Responses); err != nil {
			return nil, err
		}
		session.CurrentStep = step

		if session.SessionType == SessionTypeCareer {
			if err := s.History.Record(session.UserID, session.QuestionIDs[questionIndex]); err != nil {
				logger.Log.Warn("failed to record career answer history",
					zap.String("sessionId", session.ID),
					zap.Error(err),
				)
			}
		}

		nextIndex = questionIndex + 1
	}

	if nextIndex >= total {
		return s.complete(ctx, session)
	}

	q, err := s.Questions.FindByID(session.QuestionIDs[nextIndex])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	return &AdvanceResult{
		SessionID:   session.ID,
		Completed:   false,
		CurrentStep: session.CurrentStep,
		Question: &SessionQuestionView{
			Index:    nextIndex,
			Type:     q.Type,
			Category: q.Category,
			Content:  q.Content,
			Options:  q.Options,
			Progress: 100 * float64(nextIndex+1) / float64(total),
		},
	}, nil
}

func (s *QuizSessionService) complete(ctx context.Context, session *model.QuizSession) (*AdvanceResult, error) {
	results, err := s.buildResults(ctx, session)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	if err := s.Sessions.Complete(session.ID, raw, completedAt); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz session completed",
		zap.String("sessionId", session.ID),
		zap.Int("answered", results.Answered),
	)

	return &AdvanceResult{
		SessionID:   session.ID,
		Completed:   true,
		CurrentStep: session.CurrentStep,
		Results:     raw,
	}, nil
}

// buildResults fails rather than persisting an empty payload when the
// question bank cannot be loaded; the session stays active and the
// client's next advance retries completion.
func (s *QuizSessionService) buildResults(ctx context.Context, session *model.QuizSession) (*SessionResults, error) {
	questions, err := s.Questions.FindByIDs(session.QuestionIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	var responses []ScoredResponse
	for index, answer := range session.Responses {
		if index < 0 || index >= len(session.QuestionIDs) {
			continue
		}
		q := byID[session.QuestionIDs[index]]
		if q == nil {
			warnUnknownQuestion("session results", session.QuestionIDs[index])
			continue
		}
		responses = append(responses, ScoredResponse{Question: q, Answer: answer})
	}

	scores := AggregateCategoryScores(responses)
	return &SessionResults{
		Answered:        len(responses),
		TotalQuestions:  len(session.QuestionIDs),
		CategoryScores:  scores,
		Recommendations: Recommend(scores),
	}, nil
}

// Get returns the raw session for status/result reads. Sessions owned by
// a logged-in user are only readable by that user; anonymous sessions
// have no owner to enforce.
func (s *QuizSessionService) Get(sessionID, requesterID string) (*model.QuizSession, error) {
	session, err := s.Sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != model.AnonymousUser && session.UserID != requesterID {
		return nil, util.ErrNotOwner
	}
	return session, nil
}
