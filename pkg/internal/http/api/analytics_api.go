package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
)

func getSurveyAnalytics(c *fiber.Ctx) error {
	surveyId := c.Params("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	analytics, err := services.GetSurveyAnalytics(surveyId)
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(analytics)
}
