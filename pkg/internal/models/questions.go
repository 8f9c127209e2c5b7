package models

import "gorm.io/datatypes"

const (
	QuestionTypeRating         = "rating"
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeText           = "text"
)

// FallbackCategory groups questions that carry no category tag.
const FallbackCategory = "Uncategorized"

type Question struct {
	BaseModel

	Text      string                      `json:"text"`
	Type      string                      `json:"type"`
	Required  bool                        `json:"required"`
	Category  string                      `json:"category"`
	Options   datatypes.JSONSlice[string] `json:"options"`
	IsBuiltIn bool                        `json:"is_built_in"`
}

// CategoryOrFallback is what analytics and category listings group by.
func (v Question) CategoryOrFallback() string {
	if len(v.Category) == 0 {
		return FallbackCategory
	}
	return v.Category
}
