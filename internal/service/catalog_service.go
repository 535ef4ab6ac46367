package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService is the admin surface over the question and domain banks.
type CatalogService struct {
	Questions QuestionAdmin
	Domains   DomainStore
}

type QuestionAdmin interface {
	QuestionSource
	List(page, limit int) ([]model.Question, int64, error)
	Create(q *model.Question) error
	Update(q *model.Question) error
	Delete(id uint) error
}

type DomainStore interface {
	Create(d *model.CareerDomain) error
	FindByID(id uint) (*model.CareerDomain, error)
	List() ([]model.CareerDomain, error)
	Update(d *model.CareerDomain) error
	Delete(id uint) error
}

func NewCatalogService(questions QuestionAdmin, domains DomainStore) *CatalogService {
	return &CatalogService{Questions: questions, Domains: domains}
}

type QuestionInput struct {
	Category      string             `json:"category" binding:"required"`
	DomainID      uint               `json:"domainId"`
	Type          model.QuestionType `json:"type" binding:"required"`
	Content       string             `json:"content" binding:"required"`
	Options       json.RawMessage    `json:"options"`
	CorrectOption int                `json:"correctOption"`
	Order         int                `json:"order"`
}

func (in QuestionInput) validate() error {
	switch in.Type {
	case model.QuestionMultipleChoice:
		q := model.Question{Options: in.Options}
		labels, err := q.OptionLabels()
		if err != nil {
			return fmt.Errorf("%w: options must be a JSON string array", util.ErrInvalidInput)
		}
		if len(labels) < 2 {
			return fmt.Errorf("%w: multiple choice questions need at least two options", util.ErrInvalidInput)
		}
		if in.CorrectOption < 1 || in.CorrectOption > len(labels) {
			return fmt.Errorf("%w: correct option %d out of range", util.ErrInvalidInput, in.CorrectOption)
		}
	case model.QuestionScale, model.QuestionFreeText:
	default:
		return fmt.Errorf("%w: unknown question type %q", util.ErrInvalidInput, in.Type)
	}
	return nil
}

func (s *CatalogService) CreateQuestion(in QuestionInput) (*model.Question, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	q := &model.Question{
		Category:      in.Category,
		DomainID:      in.DomainID,
		Type:          in.Type,
		Content:       in.Content,
		Options:       in.Options,
		CorrectOption: in.CorrectOption,
		Order:         in.Order,
	}
	if err := s.Questions.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *CatalogService) UpdateQuestion(id uint, in QuestionInput) (*model.Question, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	q, err := s.Questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	q.Category = in.Category
	q.DomainID = in.DomainID
	q.Type = in.Type
	q.Content = in.Content
	q.Options = in.Options
	q.CorrectOption = in.CorrectOption
	q.Order = in.Order
	if err := s.Questions.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *CatalogService) DeleteQuestion(id uint) error {
	if _, err := s.Questions.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.Questions.Delete(id)
}

func (s *CatalogService) ListQuestions(page, limit int) ([]model.Question, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.Questions.List(page, limit)
}

type DomainInput struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Enabled     *bool  `json:"enabled"`
}

func (s *CatalogService) CreateDomain(in DomainInput) (*model.CareerDomain, error) {
	d := &model.CareerDomain{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Enabled:     true,
	}
	if in.Enabled != nil {
		d.Enabled = *in.Enabled
	}
	if err := s.Domains.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *CatalogService) UpdateDomain(id uint, in DomainInput) (*model.CareerDomain, error) {
	d, err := s.Domains.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDomainNotFound
		}
		return nil, err
	}
	d.Code = in.Code
	d.Name = in.Name
	d.Description = in.Description
	if in.Enabled != nil {
		d.Enabled = *in.Enabled
	}
	if err := s.Domains.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *CatalogService) DeleteDomain(id uint) error {
	if _, err := s.Domains.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDomainNotFound
		}
		return err
	}
	return s.Domains.Delete(id)
}

func (s *CatalogService) ListDomains() ([]model.CareerDomain, error) {
	return s.Domains.List()
}
