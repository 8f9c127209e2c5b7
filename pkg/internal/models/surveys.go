package models

import "gorm.io/datatypes"

const (
	SurveyStatusDraft     = "draft"
	SurveyStatusActive    = "active"
	SurveyStatusCompleted = "completed"
)

type Survey struct {
	BaseModel

	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Status      string                      `json:"status"`
	QuestionIDs datatypes.JSONSlice[string] `json:"question_ids"`

	// ResponseCount mirrors the number of rows in the responses table.
	// It is bumped on each submission without a transaction, so it can
	// drift; anything that needs the real number must count the rows.
	ResponseCount int64 `json:"response_count"`
}
