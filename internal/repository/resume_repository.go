package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

func (r *ResumeRepository) Create(a *model.ResumeAnalysis) error {
	return r.DB.Create(a).Error
}

func (r *ResumeRepository) FindByID(id uint) (*model.ResumeAnalysis, error) {
	var a model.ResumeAnalysis
	err := r.DB.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ResumeRepository) ListByUser(userID uint, page, limit int) ([]model.ResumeAnalysis, int64, error) {
	var as []model.ResumeAnalysis
	var total int64
	query := r.DB.Model(&model.ResumeAnalysis{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}
