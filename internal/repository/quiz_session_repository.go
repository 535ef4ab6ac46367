package repository

import (
	"encoding/json"
	"time"

	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type QuizSessionRepository struct {
	DB *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) *QuizSessionRepository {
	return &QuizSessionRepository{DB: db}
}

func (r *QuizSessionRepository) Create(s *model.QuizSession) error {
	return r.DB.Create(s).Error
}

func (r *QuizSessionRepository) FindByID(id string) (*model.QuizSession, error) {
	var s model.QuizSession
	err := r.DB.Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RecordAnswer persists the response map and step counter. This runs
// before the next question is computed so a crash never loses a recorded
// answer while leaving the step behind.
func (r *QuizSessionRepository) RecordAnswer(id string, step int, responses model.ResponseMap) error {
	return r.DB.Model(&model.QuizSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_step": step,
			"responses":    responses,
		}).Error
}

// Complete transitions an active session to completed with its results
// payload. Completed sessions are left untouched.
func (r *QuizSessionRepository) Complete(id string, results json.RawMessage, completedAt time.Time) error {
	return r.DB.Model(&model.QuizSession{}).
		Where("id = ? AND status = ?", id, model.SessionActive).
		Updates(map[string]interface{}{
			"status":       model.SessionCompleted,
			"results":      results,
			"completed_at": completedAt,
		}).Error
}
