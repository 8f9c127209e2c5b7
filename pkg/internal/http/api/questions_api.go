package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
	"gorm.io/datatypes"
)

func listQuestions(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	if category := c.Query("category"); len(category) > 0 {
		questions, err := services.ListQuestionsByCategory(category)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(questions)
	}

	questions, err := services.ListQuestions(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(questions)
}

func getQuestion(c *fiber.Ctx) error {
	questionId := c.Params("questionId")

	question, err := services.GetQuestion(questionId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(question)
}

func createQuestion(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Text     string   `json:"text" validate:"required"`
		Type     string   `json:"type" validate:"required,oneof=rating multiple-choice text"`
		Required bool     `json:"required"`
		Category string   `json:"category"`
		Options  []string `json:"options"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	question, err := services.NewQuestion(models.Question{
		Text:     data.Text,
		Type:     data.Type,
		Required: data.Required,
		Category: data.Category,
		Options:  datatypes.NewJSONSlice(data.Options),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(question)
}

func updateQuestion(c *fiber.Ctx) error {
	questionId := c.Params("questionId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Text     string   `json:"text" validate:"required"`
		Type     string   `json:"type" validate:"required,oneof=rating multiple-choice text"`
		Required bool     `json:"required"`
		Category string   `json:"category"`
		Options  []string `json:"options"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	question, err := services.GetQuestion(questionId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	question.Text = data.Text
	question.Type = data.Type
	question.Required = data.Required
	question.Category = data.Category
	question.Options = datatypes.NewJSONSlice(data.Options)

	if question, err = services.UpdateQuestion(question); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(question)
}

func deleteQuestion(c *fiber.Ctx) error {
	questionId := c.Params("questionId")

	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	question, err := services.GetQuestion(questionId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteQuestion(question); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(question)
}
