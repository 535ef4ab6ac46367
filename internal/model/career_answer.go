package model

// CareerAnswerRecord tracks which career-quiz questions a user has already
// answered, so the pool selector never re-presents a question until the
// whole bank is exhausted and the history is reset.
type CareerAnswerRecord struct {
	BaseModel
	UserID     string `gorm:"size:64;uniqueIndex:idx_career_answer_user_question;not null" json:"userId"`
	QuestionID uint   `gorm:"uniqueIndex:idx_career_answer_user_question;not null" json:"questionId"`
}

func (CareerAnswerRecord) TableName() string {
	return "career_answer_records"
}
