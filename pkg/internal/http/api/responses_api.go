package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
)

func listResponses(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	responses, err := services.ListResponses(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(responses)
}

// Submission is open to unauthenticated callers so anonymous pulse
// checks stay anonymous end to end.
func submitResponse(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	var data struct {
		Answers  map[string]any          `json:"answers" validate:"required"`
		Metadata models.ResponseMetadata `json:"metadata"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.GetSurvey(surveyId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	response, err := services.AddResponse(survey, data.Answers, data.Metadata)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(response)
}
