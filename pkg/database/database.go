package database

import (
	"encoding/json"
	"fmt"
	"log"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release deployments migrate only when explicitly asked to
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.CareerDomain{},
			&model.Question{},
			&model.Assessment{},
			&model.AssessmentItem{},
			&model.QuizSession{},
			&model.CareerAnswerRecord{},
			&model.ResumeAnalysis{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		seedDefaults(db)
	}

	return db, nil
}

// seedDefaults inserts the default career domains and a starter career
// question bank when the tables are empty.
func seedDefaults(db *gorm.DB) {
	var domainCount int64
	db.Model(&model.CareerDomain{}).Count(&domainCount)
	if domainCount == 0 {
		defaultDomains := []model.CareerDomain{
			{Code: "technology", Name: "Technology", Description: "Software, data and IT careers", Enabled: true},
			{Code: "problem_solving", Name: "Problem Solving", Description: "Analytical and engineering careers", Enabled: true},
			{Code: "creative", Name: "Creative", Description: "Design and content careers", Enabled: true},
			{Code: "business", Name: "Business", Description: "Management and commercial careers", Enabled: true},
			{Code: "social", Name: "Social", Description: "Education, support and people careers", Enabled: true},
		}
		for _, d := range defaultDomains {
			db.Create(&d)
		}
	}

	var questionCount int64
	db.Model(&model.Question{}).Count(&questionCount)
	if questionCount == 0 {
		mustOptions := func(labels ...string) json.RawMessage {
			raw, _ := json.Marshal(labels)
			return raw
		}
		defaultQuestions := []model.Question{
			{Category: "TechDomain", Type: model.QuestionMultipleChoice, Content: "Which data structure gives O(1) average lookup by key?",
				Options: mustOptions("Linked list", "Hash map", "Binary tree", "Stack"), CorrectOption: 2, Order: 1},
			{Category: "TechDomain", Type: model.QuestionMultipleChoice, Content: "What does HTTP status 404 mean?",
				Options: mustOptions("Server error", "Unauthorized", "Not found", "Moved permanently"), CorrectOption: 3, Order: 2},
			{Category: "TechDomain", Type: model.QuestionScale, Content: "How comfortable are you reading unfamiliar code? (1-10)", Order: 3},
			{Category: "Ability", Type: model.QuestionScale, Content: "Rate your confidence breaking a large problem into steps (1-10)", Order: 4},
			{Category: "Ability", Type: model.QuestionMultipleChoice, Content: "A process fails intermittently. What do you check first?",
				Options: mustOptions("Rewrite it", "Logs around the failures", "Restart the host", "Ignore it"), CorrectOption: 2, Order: 5},
			{Category: "Creative", Type: model.QuestionScale, Content: "How often do you sketch or prototype ideas before building? (1-10)", Order: 6},
			{Category: "Creative", Type: model.QuestionFreeText, Content: "Describe a project you designed from scratch.", Order: 7},
			{Category: "Business", Type: model.QuestionScale, Content: "Rate your comfort presenting a plan to stakeholders (1-10)", Order: 8},
			{Category: "Business", Type: model.QuestionFreeText, Content: "How would you prioritize two conflicting deadlines?", Order: 9},
			{Category: "Social", Type: model.QuestionScale, Content: "How much do you enjoy mentoring others? (1-10)", Order: 10},
		}
		for _, q := range defaultQuestions {
			db.Create(&q)
		}
	}
}
