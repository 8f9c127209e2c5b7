package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
	"gorm.io/datatypes"
)

func listSurveys(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	surveys, err := services.ListSurveys(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(surveys)
}

func getSurvey(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(survey)
}

func createSurvey(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		QuestionIDs []string `json:"question_ids"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.NewSurvey(models.Survey{
		Name:        data.Name,
		Description: data.Description,
		QuestionIDs: datatypes.NewJSONSlice(data.QuestionIDs),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func updateSurvey(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	survey.Name = data.Name
	survey.Description = data.Description

	if survey, err = services.UpdateSurvey(survey); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func deleteSurvey(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteSurvey(survey); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func publishSurvey(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if survey, err = services.PublishSurvey(survey); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func closeSurvey(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if survey, err = services.CloseSurvey(survey); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func getSurveyQuestions(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	questions, err := services.GetQuestionsByIDs(survey.QuestionIDs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(questions)
}

func setSurveyQuestions(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		QuestionIDs []string `json:"question_ids" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if survey, err = services.SetSurveyQuestions(survey, data.QuestionIDs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func addSurveyQuestion(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")
	questionId := c.Params("questionId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if survey, err = services.AddSurveyQuestion(survey, questionId); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func removeSurveyQuestion(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")
	questionId := c.Params("questionId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if survey, err = services.RemoveSurveyQuestion(survey, questionId); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}
