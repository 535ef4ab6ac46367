package repository

import (
	"context"
	"encoding/json"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	careerQuestionsCacheKey = "skillpath:career:questions"
	careerQuestionsCacheTTL = 5 * time.Minute
)

type QuestionRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewQuestionRepository(db *gorm.DB, rdb *redis.Client) *QuestionRepository {
	return &QuestionRepository{DB: db, RDB: rdb}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	if err := r.DB.Create(q).Error; err != nil {
		return err
	}
	r.invalidateCache(context.Background())
	return nil
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var qs []model.Question
	if len(ids) == 0 {
		return qs, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) ListByDomain(domainID uint) ([]model.Question, error) {
	var qs []model.Question
	query := r.DB.Model(&model.Question{})
	if domainID > 0 {
		query = query.Where("domain_id = ?", domainID)
	}
	err := query.Order("`order` asc, created_at desc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) List(page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64
	query := r.DB.Model(&model.Question{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("`order` asc, created_at desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

// FindCareerQuestions returns the whole career question bank, cached in
// Redis. Cache failures fall through to the database.
func (r *QuestionRepository) FindCareerQuestions(ctx context.Context) ([]model.Question, error) {
	if r.RDB != nil {
		cached, err := r.RDB.Get(ctx, careerQuestionsCacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			var qs []model.Question
			if err := json.Unmarshal(cached, &qs); err == nil {
				return qs, nil
			}
			logger.Log.Warn("corrupt career question cache, refetching", zap.Error(err))
		}
	}

	var qs []model.Question
	if err := r.DB.Order("`order` asc, id asc").Find(&qs).Error; err != nil {
		return nil, err
	}

	if r.RDB != nil {
		if raw, err := json.Marshal(qs); err == nil {
			if err := r.RDB.Set(ctx, careerQuestionsCacheKey, raw, careerQuestionsCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache career questions", zap.Error(err))
			}
		}
	}

	return qs, nil
}

func (r *QuestionRepository) Update(q *model.Question) error {
	if err := r.DB.Save(q).Error; err != nil {
		return err
	}
	r.invalidateCache(context.Background())
	return nil
}

func (r *QuestionRepository) Delete(id uint) error {
	if err := r.DB.Delete(&model.Question{}, id).Error; err != nil {
		return err
	}
	r.invalidateCache(context.Background())
	return nil
}

func (r *QuestionRepository) invalidateCache(ctx context.Context) {
	if r.RDB == nil {
		return
	}
	if err := r.RDB.Del(ctx, careerQuestionsCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate career question cache", zap.Error(err))
	}
}
