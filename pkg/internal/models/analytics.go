package models

// AnalyticsResult is derived on every request and never persisted. The
// camelCase field names below are the dashboard contract; do not rename
// them without versioning the endpoint.
type AnalyticsResult struct {
	TotalResponses       int                         `json:"totalResponses"`
	TotalQuestions       int                         `json:"totalQuestions"`
	ResponseRate         float64                     `json:"responseRate"`
	DepartmentAnalytics  map[string]*DepartmentStats `json:"departmentAnalytics"`
	CategoryDistribution map[string]*CategoryStats   `json:"categoryDistribution"`
	QuestionAnalytics    map[string]*QuestionStats   `json:"questionAnalytics"`
	Trends               AnalyticsTrends             `json:"trends"`
}

type DepartmentStats struct {
	Responses         int     `json:"responses"`
	TotalEmployees    int     `json:"totalEmployees"`
	ParticipationRate float64 `json:"participationRate"`
}

type CategoryStats struct {
	QuestionCount        int      `json:"questionCount"`
	TotalAnswersReceived int      `json:"totalAnswersReceived"`
	AverageRating        *float64 `json:"averageRating,omitempty"`
}

// QuestionStats.Results holds []RatingBucket for rating questions,
// []OptionTally for multiple-choice ones and stays empty for text
// questions, whose verbatim answers land in Responses instead.
type QuestionStats struct {
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Results   any      `json:"results"`
	Average   *float64 `json:"average,omitempty"`
	Responses []string `json:"responses,omitempty"`
}

type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type OptionTally struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type AnalyticsTrends struct {
	Daily []DailyTrendPoint `json:"daily"`
}

type DailyTrendPoint struct {
	Date      string `json:"date"`
	Responses int    `json:"responses"`
}
