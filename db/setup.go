package db

import (
	"github.com/raya-dev/raya/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey so handlers can treat them as client errors.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.InvestorProfile{},
		&models.StartupProfile{},
		&models.IndividualProfile{},
		&models.Deal{},
		&models.DealInterest{},
		&models.DealCommitment{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
