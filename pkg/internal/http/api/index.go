package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		surveys := api.Group("/surveys")
		{
			surveys.Get("/", listSurveys)
			surveys.Post("/", createSurvey)
			surveys.Get("/:surveyId", getSurvey)
			surveys.Put("/:surveyId", updateSurvey)
			surveys.Delete("/:surveyId", deleteSurvey)
			surveys.Post("/:surveyId/publish", publishSurvey)
			surveys.Post("/:surveyId/close", closeSurvey)

			surveys.Get("/:surveyId/questions", getSurveyQuestions)
			surveys.Put("/:surveyId/questions", setSurveyQuestions)
			surveys.Post("/:surveyId/questions/:questionId", addSurveyQuestion)
			surveys.Delete("/:surveyId/questions/:questionId", removeSurveyQuestion)

			surveys.Get("/:surveyId/responses", listResponses)
			surveys.Post("/:surveyId/responses", submitResponse)

			surveys.Get("/:surveyId/analytics", getSurveyAnalytics)
		}

		questions := api.Group("/questions")
		{
			questions.Get("/", listQuestions)
			questions.Post("/", createQuestion)
			questions.Get("/:questionId", getQuestion)
			questions.Put("/:questionId", updateQuestion)
			questions.Delete("/:questionId", deleteQuestion)
		}

		templates := api.Group("/templates")
		{
			templates.Get("/", listTemplates)
			templates.Post("/", createTemplate)
			templates.Get("/:templateId", getTemplate)
			templates.Put("/:templateId", updateTemplate)
			templates.Delete("/:templateId", deleteTemplate)
			templates.Post("/:templateId/copy", copyTemplateToSurvey)
		}
	}
}
