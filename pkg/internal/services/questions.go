package services

import (
	"fmt"

	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/samber/lo"
)

func ListQuestions(take int, offset int) ([]models.Question, error) {
	var questions []models.Question
	err := database.C.Offset(offset).Limit(take).Find(&questions).Error

	return questions, err
}

func ListQuestionsByCategory(category string) ([]models.Question, error) {
	var questions []models.Question
	err := database.C.Where("category = ?", category).Find(&questions).Error

	return questions, err
}

func GetQuestion(id string) (models.Question, error) {
	var question models.Question
	if err := database.C.Where("id = ?", id).First(&question).Error; err != nil {
		return question, err
	}
	return question, nil
}

// GetQuestionsByIDs resolves ids in the given order and silently omits
// the ones that no longer exist. Survey loading and analytics both rely
// on stale references being dropped here instead of raised.
func GetQuestionsByIDs(ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return []models.Question{}, nil
	}

	var questions []models.Question
	if err := database.C.Where("id IN ?", []string(ids)).Find(&questions).Error; err != nil {
		return nil, err
	}

	index := lo.SliceToMap(questions, func(item models.Question) (string, models.Question) {
		return item.ID, item
	})

	out := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if question, ok := index[id]; ok {
			out = append(out, question)
		}
	}

	return out, nil
}

func NewQuestion(question models.Question) (models.Question, error) {
	if question.Type == models.QuestionTypeMultipleChoice && len(question.Options) == 0 {
		return question, fmt.Errorf("multiple-choice questions need at least one option")
	}

	if err := database.C.Create(&question).Error; err != nil {
		return question, err
	}
	return question, nil
}

func UpdateQuestion(question models.Question) (models.Question, error) {
	if question.Type == models.QuestionTypeMultipleChoice && len(question.Options) == 0 {
		return question, fmt.Errorf("multiple-choice questions need at least one option")
	}

	if err := database.C.Save(&question).Error; err != nil {
		return question, err
	}
	return question, nil
}

// DeleteQuestion refuses while any survey still references the question;
// historical responses keep their answer keys either way and analytics
// will drop them once the reference goes stale.
func DeleteQuestion(question models.Question) error {
	var surveys []models.Survey
	if err := database.C.Find(&surveys).Error; err != nil {
		return err
	}
	for _, survey := range surveys {
		if lo.Contains(survey.QuestionIDs, question.ID) {
			return fmt.Errorf("question is still used by survey %s", survey.ID)
		}
	}

	return database.C.Delete(&question).Error
}
