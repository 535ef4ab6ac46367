package model

// ResumeAnalysis stores one AI analysis run for a user's resume.
type ResumeAnalysis struct {
	BaseModel
	UserID     *uint  `gorm:"index" json:"userId,omitempty"`
	FileURL    string `gorm:"size:255" json:"fileUrl,omitempty"`
	TargetRole string `gorm:"size:100" json:"targetRole,omitempty"`
	Content    string `gorm:"type:text" json:"content"`
	Analysis   string `gorm:"type:text" json:"analysis"`
	Model      string `gorm:"size:100" json:"model"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}
