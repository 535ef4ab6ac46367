package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type CareerAnswerRepository struct {
	DB *gorm.DB
}

func NewCareerAnswerRepository(db *gorm.DB) *CareerAnswerRepository {
	return &CareerAnswerRepository{DB: db}
}

func (r *CareerAnswerRepository) ListAnsweredQuestionIDs(userID string) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.CareerAnswerRecord{}).
		Where("user_id = ?", userID).
		Pluck("question_id", &ids).Error
	return ids, err
}

// Record is idempotent per (user, question).
func (r *CareerAnswerRepository) Record(userID string, questionID uint) error {
	rec := model.CareerAnswerRecord{UserID: userID, QuestionID: questionID}
	return r.DB.Where("user_id = ? AND question_id = ?", userID, questionID).
		FirstOrCreate(&rec).Error
}

// ClearForUser wipes the user's answer history. The delete is hard, not
// soft: the unique (user, question) index would otherwise block the next
// round of inserts.
func (r *CareerAnswerRepository) ClearForUser(userID string) error {
	return r.DB.Unscoped().
		Where("user_id = ?", userID).
		Delete(&model.CareerAnswerRecord{}).Error
}
