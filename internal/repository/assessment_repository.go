package repository

import (
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// Create inserts the assessment together with its item set.
func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByIDWithItems(id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Items").First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) ListByUser(userID uint, page, limit int) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64
	query := r.DB.Model(&model.Assessment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

// SealWithItems applies the scored item mutations and sets the submission
// timestamp and overall score in one transaction. The timestamp write is a
// compare-and-set on submitted_at IS NULL: the loser of a concurrent
// double submit sees zero rows updated and the whole transaction rolls
// back with ErrAlreadySubmitted, leaving the assessment unsealed items
// untouched.
func (r *AssessmentRepository) SealWithItems(assessmentID uint, items []model.AssessmentItem, score float64, submittedAt time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Assessment{}).
			Where("id = ? AND submitted_at IS NULL", assessmentID).
			Updates(map[string]interface{}{
				"submitted_at": submittedAt,
				"score":        score,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrAlreadySubmitted
		}

		for i := range items {
			err := tx.Model(&model.AssessmentItem{}).
				Where("id = ?", items[i].ID).
				Updates(map[string]interface{}{
					"selected_choice":  items[i].SelectedChoice,
					"is_correct":       items[i].IsCorrect,
					"response_time_ms": items[i].ResponseTimeMs,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
