package models

import (
	"time"

	"gorm.io/datatypes"
)

// Response rows are append-only: they are never updated after submission
// and they deliberately outlive their survey, so there is no foreign key
// back to the surveys table.
type Response struct {
	ID          string                               `json:"id" gorm:"primaryKey"`
	SurveyID    string                               `json:"survey_id" gorm:"index"`
	Answers     datatypes.JSONMap                    `json:"answers"`
	Metadata    datatypes.JSONType[ResponseMetadata] `json:"metadata"`
	SubmittedAt time.Time                            `json:"submitted_at"`
}

type ResponseMetadata struct {
	IsAnonymous bool   `json:"isAnonymous"`
	Email       string `json:"email,omitempty"`
	SendCopy    bool   `json:"sendCopy,omitempty"`
	Department  string `json:"department,omitempty"`
}
