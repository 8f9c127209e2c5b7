package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
	"gorm.io/datatypes"
)

func listTemplates(c *fiber.Ctx) error {
	templates, err := services.ListTemplates()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(templates)
}

func getTemplate(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	template, err := services.GetTemplate(templateId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(template)
}

func createTemplate(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		QuestionIDs []string `json:"question_ids"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	template, err := services.NewTemplate(models.SurveyTemplate{
		Name:        data.Name,
		Description: data.Description,
		QuestionIDs: datatypes.NewJSONSlice(data.QuestionIDs),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(template)
}

func updateTemplate(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		QuestionIDs []string `json:"question_ids"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	template, err := services.GetTemplate(templateId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	template.Name = data.Name
	template.Description = data.Description
	template.QuestionIDs = datatypes.NewJSONSlice(data.QuestionIDs)

	if template, err = services.UpdateTemplate(template); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(template)
}

func deleteTemplate(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	template, err := services.GetTemplate(templateId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteTemplate(template, user); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	return c.JSON(template)
}

func copyTemplateToSurvey(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	template, err := services.GetTemplate(templateId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	survey, err := services.CopyTemplateToSurvey(template, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}
