package model

import (
	"encoding/json"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionScale          QuestionType = "scale"
	QuestionFreeText       QuestionType = "free_text"
)

// Question is immutable from the quiz-taking flows; only the admin
// endpoints create or modify rows.
type Question struct {
	BaseModel
	Category string       `gorm:"size:50;index;not null" json:"category"`
	DomainID uint         `gorm:"index" json:"domainId"`
	Type     QuestionType `gorm:"size:30;not null" json:"type"`
	Content  string       `gorm:"type:text;not null" json:"content"`
	// Options is an ordered JSON array of choice labels, multiple choice only.
	Options json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	// CorrectOption is the 1-based index into Options, multiple choice only.
	CorrectOption int `gorm:"default:0" json:"-"`
	Order         int `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionLabels decodes the stored options array. Malformed data is the
// caller's problem to treat as "no options".
func (q *Question) OptionLabels() ([]string, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var labels []string
	if err := json.Unmarshal(q.Options, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}
