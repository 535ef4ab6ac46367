package service

import (
	"context"
	"encoding/json"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"

	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories.

type fakeQuestionSource struct {
	questions    map[uint]model.Question
	order        []uint
	findByIDErr  error
	findByIDsErr error
}

func newFakeQuestionSource(qs ...model.Question) *fakeQuestionSource {
	f := &fakeQuestionSource{questions: make(map[uint]model.Question)}
	for _, q := range qs {
		f.questions[q.ID] = q
		f.order = append(f.order, q.ID)
	}
	return f
}

func (f *fakeQuestionSource) FindByID(id uint) (*model.Question, error) {
	if f.findByIDErr != nil {
		return nil, f.findByIDErr
	}
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (f *fakeQuestionSource) FindByIDs(ids []uint) ([]model.Question, error) {
	if f.findByIDsErr != nil {
		return nil, f.findByIDsErr
	}
	var out []model.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionSource) ListByDomain(domainID uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range f.order {
		q := f.questions[id]
		if domainID == 0 || q.DomainID == domainID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionSource) FindCareerQuestions(ctx context.Context) ([]model.Question, error) {
	var out []model.Question
	for _, id := range f.order {
		out = append(out, f.questions[id])
	}
	return out, nil
}

type fakeAssessmentStore struct {
	assessments map[uint]*model.Assessment
	nextID      uint
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{assessments: make(map[uint]*model.Assessment), nextID: 1}
}

func (f *fakeAssessmentStore) Create(a *model.Assessment) error {
	a.ID = f.nextID
	f.nextID++
	for i := range a.Items {
		a.Items[i].ID = f.nextID
		a.Items[i].AssessmentID = a.ID
		f.nextID++
	}
	f.assessments[a.ID] = a
	return nil
}

func (f *fakeAssessmentStore) FindByIDWithItems(id uint) (*model.Assessment, error) {
	a, ok := f.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	cp.Items = append([]model.AssessmentItem(nil), a.Items...)
	return &cp, nil
}

func (f *fakeAssessmentStore) SealWithItems(assessmentID uint, items []model.AssessmentItem, score float64, submittedAt time.Time) error {
	a, ok := f.assessments[assessmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if a.SubmittedAt != nil {
		return util.ErrAlreadySubmitted
	}
	ts := submittedAt
	a.SubmittedAt = &ts
	a.Score = &score
	for _, scored := range items {
		for i := range a.Items {
			if a.Items[i].ID == scored.ID {
				a.Items[i].SelectedChoice = scored.SelectedChoice
				a.Items[i].IsCorrect = scored.IsCorrect
				a.Items[i].ResponseTimeMs = scored.ResponseTimeMs
			}
		}
	}
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*model.QuizSession
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*model.QuizSession)}
}

func (f *fakeSessionStore) Create(s *model.QuizSession) error {
	f.nextID++
	s.ID = "session-" + string(rune('a'+f.nextID-1))
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionStore) FindByID(id string) (*model.QuizSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	cp.Responses = make(model.ResponseMap, len(s.Responses))
	for k, v := range s.Responses {
		cp.Responses[k] = v
	}
	return &cp, nil
}

func (f *fakeSessionStore) RecordAnswer(id string, step int, responses model.ResponseMap) error {
	s, ok := f.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.CurrentStep = step
	s.Responses = make(model.ResponseMap, len(responses))
	for k, v := range responses {
		s.Responses[k] = v
	}
	return nil
}

func (f *fakeSessionStore) Complete(id string, results json.RawMessage, completedAt time.Time) error {
	s, ok := f.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if s.Status == model.SessionCompleted {
		return nil
	}
	s.Status = model.SessionCompleted
	s.Results = results
	ts := completedAt
	s.CompletedAt = &ts
	return nil
}

type fakeAnswerHistory struct {
	answered map[string]map[uint]bool
	clears   int
}

func newFakeAnswerHistory() *fakeAnswerHistory {
	return &fakeAnswerHistory{answered: make(map[string]map[uint]bool)}
}

func (f *fakeAnswerHistory) ListAnsweredQuestionIDs(userID string) ([]uint, error) {
	var ids []uint
	for id := range f.answered[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeAnswerHistory) Record(userID string, questionID uint) error {
	if f.answered[userID] == nil {
		f.answered[userID] = make(map[uint]bool)
	}
	f.answered[userID][questionID] = true
	return nil
}

func (f *fakeAnswerHistory) ClearForUser(userID string) error {
	f.clears++
	delete(f.answered, userID)
	return nil
}

type fakeCompletion struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func mcq(id uint, category string, correct int, labels ...string) model.Question {
	raw, _ := json.Marshal(labels)
	return model.Question{
		BaseModel:     model.BaseModel{ID: id},
		Category:      category,
		Type:          model.QuestionMultipleChoice,
		Content:       "q",
		Options:       raw,
		CorrectOption: correct,
	}
}

func scaleQ(id uint, category string) model.Question {
	return model.Question{
		BaseModel: model.BaseModel{ID: id},
		Category:  category,
		Type:      model.QuestionScale,
		Content:   "rate",
	}
}
