package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type CareerDomainRepository struct {
	DB *gorm.DB
}

func NewCareerDomainRepository(db *gorm.DB) *CareerDomainRepository {
	return &CareerDomainRepository{DB: db}
}

func (r *CareerDomainRepository) Create(d *model.CareerDomain) error {
	return r.DB.Create(d).Error
}

func (r *CareerDomainRepository) FindByID(id uint) (*model.CareerDomain, error) {
	var d model.CareerDomain
	err := r.DB.First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CareerDomainRepository) List() ([]model.CareerDomain, error) {
	var ds []model.CareerDomain
	err := r.DB.Where("enabled = ?", true).Order("id asc").Find(&ds).Error
	return ds, err
}

func (r *CareerDomainRepository) Update(d *model.CareerDomain) error {
	return r.DB.Save(d).Error
}

func (r *CareerDomainRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CareerDomain{}, id).Error
}
