package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListResponses(surveyID string) ([]models.Response, error) {
	var responses []models.Response
	err := database.C.
		Where("survey_id = ?", surveyID).
		Order("submitted_at ASC").
		Find(&responses).Error

	return responses, err
}

func CountResponses(surveyID string) (int64, error) {
	var count int64
	err := database.C.Model(&models.Response{}).
		Where("survey_id = ?", surveyID).
		Count(&count).Error

	return count, err
}

// AddResponse appends a submission and bumps the owning survey's cached
// counter. The two writes are not transactional; a crash in between
// leaves a drifted counter that the reconciler repairs and that the
// analytics engine never trusts in the first place.
func AddResponse(survey models.Survey, answers map[string]any, metadata models.ResponseMetadata) (models.Response, error) {
	var response models.Response
	if survey.Status != models.SurveyStatusActive {
		return response, fmt.Errorf("survey is not accepting responses")
	}

	questions, err := GetQuestionsByIDs(survey.QuestionIDs)
	if err != nil {
		return response, err
	}
	for _, question := range questions {
		if !question.Required {
			continue
		}
		if value, ok := answers[question.ID]; !ok || value == nil {
			return response, fmt.Errorf("question %s requires an answer", question.ID)
		}
	}

	response = models.Response{
		ID:          uuid.NewString(),
		SurveyID:    survey.ID,
		Answers:     answers,
		Metadata:    datatypes.NewJSONType(metadata),
		SubmittedAt: time.Now(),
	}

	if err := database.C.Create(&response).Error; err != nil {
		return response, err
	}

	if err := database.C.Model(&models.Survey{}).
		Where("id = ?", survey.ID).
		Update("response_count", gorm.Expr("response_count + 1")).Error; err != nil {
		log.Warn().Err(err).Str("survey", survey.ID).
			Msg("Response stored but counter bump failed, waiting for reconciler...")
	}

	return response, nil
}
