package services

import (
	"fmt"

	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

func ListSurveys(take int, offset int) ([]models.Survey, error) {
	var surveys []models.Survey
	err := database.C.
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&surveys).Error

	return surveys, err
}

func GetSurvey(id string) (models.Survey, error) {
	var survey models.Survey
	if err := database.C.Where("id = ?", id).First(&survey).Error; err != nil {
		return survey, err
	}
	return survey, nil
}

func NewSurvey(survey models.Survey) (models.Survey, error) {
	if len(survey.Name) == 0 {
		survey.Name = "Untitled Survey"
	}
	if len(survey.Status) == 0 {
		survey.Status = models.SurveyStatusDraft
	}
	if survey.QuestionIDs == nil {
		survey.QuestionIDs = datatypes.NewJSONSlice([]string{})
	}

	if err := database.C.Create(&survey).Error; err != nil {
		return survey, err
	}
	return survey, nil
}

func UpdateSurvey(survey models.Survey) (models.Survey, error) {
	if err := database.C.Save(&survey).Error; err != nil {
		return survey, err
	}
	return survey, nil
}

// DeleteSurvey removes the survey record only. Its responses are kept
// for historical reporting; asking for analytics on the deleted id then
// fails at the survey lookup, not with a half-empty report.
func DeleteSurvey(survey models.Survey) error {
	return database.C.Delete(&survey).Error
}

func PublishSurvey(survey models.Survey) (models.Survey, error) {
	survey.Status = models.SurveyStatusActive
	return UpdateSurvey(survey)
}

func CloseSurvey(survey models.Survey) (models.Survey, error) {
	survey.Status = models.SurveyStatusCompleted
	return UpdateSurvey(survey)
}

func AddSurveyQuestion(survey models.Survey, questionID string) (models.Survey, error) {
	if _, err := GetQuestion(questionID); err != nil {
		return survey, fmt.Errorf("question %s does not exist", questionID)
	}

	survey.QuestionIDs = append(survey.QuestionIDs, questionID)
	return UpdateSurvey(survey)
}

func RemoveSurveyQuestion(survey models.Survey, questionID string) (models.Survey, error) {
	survey.QuestionIDs = lo.Filter(survey.QuestionIDs, func(item string, index int) bool {
		return item != questionID
	})
	return UpdateSurvey(survey)
}

func SetSurveyQuestions(survey models.Survey, questionIDs []string) (models.Survey, error) {
	survey.QuestionIDs = datatypes.NewJSONSlice(questionIDs)
	return UpdateSurvey(survey)
}
