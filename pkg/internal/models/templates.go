package models

import "gorm.io/datatypes"

type SurveyTemplate struct {
	BaseModel

	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	QuestionIDs datatypes.JSONSlice[string] `json:"question_ids"`
	IsBuiltIn   bool                        `json:"is_built_in"`
}
