package database

import (
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Question{},
	&models.Survey{},
	&models.SurveyTemplate{},
	&models.Department{},
	&models.Account{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Response{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
