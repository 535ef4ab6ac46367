package service

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultAssessmentSize = 10

type AssessmentService struct {
	Store     AssessmentStore
	Questions QuestionSource
}

func NewAssessmentService(store AssessmentStore, questions QuestionSource) *AssessmentService {
	return &AssessmentService{Store: store, Questions: questions}
}

type StartAssessmentRequest struct {
	DomainID      uint `json:"domainId" binding:"required"`
	QuestionCount int  `json:"questionCount"`
}

// AssessmentQuestionView is the client-facing question shape: no correct
// answer leaks out of it.
type AssessmentQuestionView struct {
	ItemID   uint               `json:"itemId"`
	Type     model.QuestionType `json:"type"`
	Category string             `json:"category"`
	Content  string             `json:"content"`
	Options  json.RawMessage    `json:"options,omitempty"`
}

type StartAssessmentResult struct {
	AssessmentID uint                     `json:"assessmentId"`
	DomainID     uint                     `json:"domainId"`
	Questions    []AssessmentQuestionView `json:"questions"`
}

// Start instantiates an assessment with its item set for the domain's
// question bank. A nil userID creates an anonymous assessment.
func (s *AssessmentService) Start(userID *uint, req StartAssessmentRequest) (*StartAssessmentResult, error) {
	questions, err := s.Questions.ListByDomain(req.DomainID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrDomainNotFound
	}

	count := req.QuestionCount
	if count <= 0 {
		count = defaultAssessmentSize
	}
	if count > len(questions) {
		count = len(questions)
	}
	questions = questions[:count]

	a := &model.Assessment{
		UserID:   userID,
		DomainID: req.DomainID,
	}
	for _, q := range questions {
		a.Items = append(a.Items, model.AssessmentItem{QuestionID: q.ID})
	}
	if err := s.Store.Create(a); err != nil {
		return nil, err
	}

	res := &StartAssessmentResult{AssessmentID: a.ID, DomainID: a.DomainID}
	for i, q := range questions {
		res.Questions = append(res.Questions, AssessmentQuestionView{
			ItemID:   a.Items[i].ID,
			Type:     q.Type,
			Category: q.Category,
			Content:  q.Content,
			Options:  q.Options,
		})
	}
	return res, nil
}

type AnswerSubmission struct {
	ItemID         uint   `json:"itemId" binding:"required"`
	SelectedChoice string `json:"selectedChoice"`
	ResponseTimeMs int    `json:"responseTimeMs"`
}

type SubmissionResult struct {
	AssessmentID   uint      `json:"assessmentId"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	OverallPercent float64   `json:"overallPercent"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// Submit scores a whole assessment in one shot and seals it. It is the
// only writer of the submission timestamp. Answers that do not match an
// item of this assessment, and items whose question no longer resolves,
// are skipped and excluded from both correct and total counts.
func (s *AssessmentService) Submit(assessmentID uint, requesterID *uint, answers []AnswerSubmission) (*SubmissionResult, error) {
	if len(answers) == 0 {
		return nil, util.ErrEmptyAnswers
	}

	a, err := s.Store.FindByIDWithItems(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	if a.Sealed() {
		monitoring.AssessmentSubmissions.WithLabelValues("conflict").Inc()
		return nil, util.ErrAlreadySubmitted
	}
	if requesterID != nil && a.UserID != nil && *requesterID != *a.UserID {
		return nil, util.ErrNotOwner
	}

	itemsByID := make(map[uint]*model.AssessmentItem, len(a.Items))
	for i := range a.Items {
		itemsByID[a.Items[i].ID] = &a.Items[i]
	}

	var (
		scored  []model.AssessmentItem
		correct int
		total   int
	)
	for _, ans := range answers {
		item, ok := itemsByID[ans.ItemID]
		if !ok {
			continue
		}
		// each item is scored at most once, duplicates in the payload lose
		delete(itemsByID, ans.ItemID)

		q, err := s.Questions.FindByID(item.QuestionID)
		if err != nil {
			// only an unresolvable id is recoverable; anything else
			// aborts before the seal
			if errors.Is(err, gorm.ErrRecordNotFound) {
				warnUnknownQuestion("assessment submit", item.QuestionID)
				continue
			}
			return nil, err
		}

		isCorrect, _ := ScoreAnswer(q, ans.SelectedChoice)
		choice := ans.SelectedChoice
		responseTime := ans.ResponseTimeMs
		item.SelectedChoice = &choice
		item.IsCorrect = &isCorrect
		item.ResponseTimeMs = &responseTime
		scored = append(scored, *item)

		total++
		if isCorrect {
			correct++
		}
	}

	percent := 0.0
	if total > 0 {
		percent = math.Round(float64(correct)/float64(total)*10000) / 100
	}

	submittedAt := time.Now()
	if err := s.Store.SealWithItems(assessmentID, scored, percent, submittedAt); err != nil {
		if errors.Is(err, util.ErrAlreadySubmitted) {
			monitoring.AssessmentSubmissions.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	monitoring.AssessmentSubmissions.WithLabelValues("ok").Inc()
	logger.Log.Info("assessment submitted",
		zap.Uint("assessmentId", assessmentID),
		zap.Int("correct", correct),
		zap.Int("total", total),
		zap.Float64("percent", percent),
	)

	return &SubmissionResult{
		AssessmentID:   assessmentID,
		CorrectAnswers: correct,
		TotalQuestions: total,
		OverallPercent: percent,
		SubmittedAt:    submittedAt,
	}, nil
}

// Result returns the sealed (or in-progress) assessment, enforcing the
// same ownership rule as Submit.
func (s *AssessmentService) Result(assessmentID uint, requesterID *uint) (*model.Assessment, error) {
	a, err := s.Store.FindByIDWithItems(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	if requesterID != nil && a.UserID != nil && *requesterID != *a.UserID {
		return nil, util.ErrNotOwner
	}
	return a, nil
}
