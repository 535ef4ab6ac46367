package model

// CareerDomain groups questions and assessments for score aggregation.
type CareerDomain struct {
	BaseModel
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
}

func (CareerDomain) TableName() string {
	return "career_domains"
}
