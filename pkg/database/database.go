package database

import (
	"fmt"
	"log"

	"lernraum_backend/internal/config"
	"lernraum_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	SeedDefaults(db)

	return db, nil
}

// Migrate legt das Schema an bzw. zieht es nach.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.InviteCode{},
		&model.News{},
		&model.Week{},
		&model.WeekFile{},
		&model.ForumCategory{},
		&model.ForumTopic{},
		&model.ForumPost{},
		&model.QAQuestion{},
		&model.QAAnswer{},
		&model.QAAttachment{},
		&model.Project{},
		&model.ProjectParticipant{},
		&model.ProjectComment{},
		&model.Tool{},
		&model.ToolLike{},
		&model.ToolComment{},
		&model.FeaturedTool{},
		&model.PresentationSlot{},
		&model.Survey{},
		&model.SurveyQuestion{},
		&model.SurveyResponse{},
		&model.SurveyAnswer{},
	)
}

// SeedDefaults füllt leere Stammtabellen mit Startdaten.
func SeedDefaults(db *gorm.DB) {
	// Standard-Forenkategorien
	var count int64
	db.Model(&model.ForumCategory{}).Count(&count)
	if count == 0 {
		defaultCategories := []model.ForumCategory{
			{Slug: "allgemein", Name: "Allgemein", Description: "Alles rund um den Kurs", SortOrder: 1},
			{Slug: "technik", Name: "Technik", Description: "Tools, Setup und technische Fragen", SortOrder: 2},
			{Slug: "projekte", Name: "Projekte", Description: "Austausch zu laufenden Projekten", SortOrder: 3},
			{Slug: "off-topic", Name: "Off-Topic", Description: "Alles, was sonst nirgends passt", SortOrder: 4},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}
	}
}
