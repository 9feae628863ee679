package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/models"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the API relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.ChallengeCompletion{},
		&models.WeeklyChallenge{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Course{},
		&models.SubCourse{},
		&models.UserCourse{},
		&models.Group{},
		&models.GroupMember{},
		&models.Exercise{},
		&models.UserExercise{},
		&models.GroupExercise{},
		&models.Stat{},
		&models.ProfilePicture{},
	)
}
