package model

import (
	"time"
)

// Assessment is a one-shot scored question set. A nil UserID means an
// anonymous run. Once SubmittedAt is set the row is sealed: no scoring
// mutation may touch it or its items again.
type Assessment struct {
	BaseModel
	UserID      *uint            `gorm:"index" json:"userId,omitempty"`
	DomainID    uint             `gorm:"index" json:"domainId"`
	SubmittedAt *time.Time       `json:"submittedAt,omitempty"`
	Score       *float64         `json:"score,omitempty"`
	Items       []AssessmentItem `gorm:"foreignKey:AssessmentID" json:"items,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// Sealed reports whether the assessment has been submitted.
func (a *Assessment) Sealed() bool {
	return a.SubmittedAt != nil
}

// AssessmentItem is created together with its assessment and mutated
// exactly once, when the answer for it is scored.
type AssessmentItem struct {
	BaseModel
	AssessmentID   uint    `gorm:"index;not null" json:"assessmentId"`
	QuestionID     uint    `gorm:"index;not null" json:"questionId"`
	SelectedChoice *string `gorm:"size:255" json:"selectedChoice,omitempty"`
	IsCorrect      *bool   `json:"isCorrect,omitempty"`
	ResponseTimeMs *int    `json:"responseTimeMs,omitempty"`
}

func (AssessmentItem) TableName() string {
	return "assessment_items"
}
