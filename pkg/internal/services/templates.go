package services

import (
	"fmt"

	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"gorm.io/datatypes"
)

func ListTemplates() ([]models.SurveyTemplate, error) {
	var templates []models.SurveyTemplate
	err := database.C.
		Order("is_built_in DESC, created_at ASC").
		Find(&templates).Error

	return templates, err
}

func GetTemplate(id string) (models.SurveyTemplate, error) {
	var template models.SurveyTemplate
	if err := database.C.Where("id = ?", id).First(&template).Error; err != nil {
		return template, err
	}
	return template, nil
}

func NewTemplate(template models.SurveyTemplate) (models.SurveyTemplate, error) {
	if len(template.Name) == 0 {
		template.Name = "Untitled Template"
	}
	if template.QuestionIDs == nil {
		template.QuestionIDs = datatypes.NewJSONSlice([]string{})
	}
	template.IsBuiltIn = false

	if err := database.C.Create(&template).Error; err != nil {
		return template, err
	}
	return template, nil
}

func UpdateTemplate(template models.SurveyTemplate) (models.SurveyTemplate, error) {
	if err := database.C.Save(&template).Error; err != nil {
		return template, err
	}
	return template, nil
}

// DeleteTemplate lets anyone drop their custom templates, but the
// shipped built-ins can only be removed by a super admin.
func DeleteTemplate(template models.SurveyTemplate, operator models.Account) error {
	if template.IsBuiltIn && !operator.IsSuperAdmin {
		return fmt.Errorf("only super admins can delete built-in templates")
	}

	return database.C.Delete(&template).Error
}

// CopyTemplateToSurvey spins a draft survey off a template; the new
// survey owns an independent copy of the question list.
func CopyTemplateToSurvey(template models.SurveyTemplate, name string, description string) (models.Survey, error) {
	if len(name) == 0 {
		name = template.Name
	}
	if len(description) == 0 {
		description = template.Description
	}

	return NewSurvey(models.Survey{
		Name:        name,
		Description: description,
		Status:      models.SurveyStatusDraft,
		QuestionIDs: datatypes.NewJSONSlice([]string(template.QuestionIDs)),
	})
}
