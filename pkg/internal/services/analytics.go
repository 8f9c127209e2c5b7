package services

import (
	"errors"
	"math"
	"time"

	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var ErrSurveyNotFound = errors.New("survey not found")

const (
	fallbackHeadcount = 50
	fallbackTrendDays = 30
)

// AnalyticsOptions carries the policy knobs of the aggregation. Zero
// values fall back to the documented defaults, so callers outside the
// HTTP layer (tests, exports) can pass a partially filled struct.
type AnalyticsOptions struct {
	// Now anchors the trailing trend window; the last entry of the
	// daily series is Now's calendar date.
	Now time.Time
	// TrendDays is the length of the daily series (default 30).
	TrendDays int
	// DefaultHeadcount is assumed for departments missing from the
	// headcount table (default 50, see analytics.default_headcount).
	DefaultHeadcount int
}

func (v AnalyticsOptions) normalized() AnalyticsOptions {
	if v.Now.IsZero() {
		v.Now = time.Now()
	}
	if v.TrendDays <= 0 {
		v.TrendDays = fallbackTrendDays
	}
	if v.DefaultHeadcount <= 0 {
		v.DefaultHeadcount = fallbackHeadcount
	}
	return v
}

// ComputeAnalytics folds a survey's responses into the dashboard report.
// It is a pure function of its arguments: no store access, no clock reads
// beyond opts.Now, and identical inputs produce identical output.
//
// Two policies here are deliberate and load bearing:
//   - an answer keyed by a question id that is absent from the given
//     question set is dropped without error, so a stale or edited catalog
//     can never poison a whole survey's report;
//   - TotalResponses is always the length of the responses slice, never
//     the survey's cached ResponseCount, which may have drifted.
func ComputeAnalytics(
	survey *models.Survey,
	questions []models.Question,
	responses []models.Response,
	departmentSizes map[string]int,
	opts AnalyticsOptions,
) (*models.AnalyticsResult, error) {
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	opts = opts.normalized()

	result := &models.AnalyticsResult{
		TotalResponses:       len(responses),
		TotalQuestions:       len(questions),
		DepartmentAnalytics:  make(map[string]*models.DepartmentStats),
		CategoryDistribution: make(map[string]*models.CategoryStats),
		QuestionAnalytics:    make(map[string]*models.QuestionStats),
	}

	// Seed every category present in the current question set, so the
	// distribution lists them even with zero answers received.
	questionIndex := make(map[string]models.Question, len(questions))
	for _, question := range questions {
		questionIndex[question.ID] = question
		category := question.CategoryOrFallback()
		if _, ok := result.CategoryDistribution[category]; !ok {
			result.CategoryDistribution[category] = &models.CategoryStats{}
		}
		result.CategoryDistribution[category].QuestionCount++
	}

	// Departments are discovered from submissions only. A department no
	// one has responded from stays invisible here even when the headcount
	// table knows it; that inflates ResponseRate (see below).
	for _, response := range responses {
		if department := response.Metadata.Data().Department; len(department) > 0 {
			if _, ok := result.DepartmentAnalytics[department]; !ok {
				result.DepartmentAnalytics[department] = &models.DepartmentStats{}
			}
		}
	}

	accumulators := make(map[string]*questionAccumulator)
	dailyCounts := make(map[string]int)

	for _, response := range responses {
		if department := response.Metadata.Data().Department; len(department) > 0 {
			if stats, ok := result.DepartmentAnalytics[department]; ok {
				stats.Responses++
			}
		}

		dailyCounts[response.SubmittedAt.Format(time.DateOnly)]++

		for questionID, answer := range response.Answers {
			question, ok := questionIndex[questionID]
			if !ok {
				// Stale reference: the answer counts nowhere.
				continue
			}

			result.CategoryDistribution[question.CategoryOrFallback()].TotalAnswersReceived++

			acc, ok := accumulators[questionID]
			if !ok {
				acc = newQuestionAccumulator(question)
				accumulators[questionID] = acc
			}
			acc.take(answer)
		}
	}

	for questionID, acc := range accumulators {
		result.QuestionAnalytics[questionID] = acc.materialize()
	}

	companyHeadcount := 0
	for department, stats := range result.DepartmentAnalytics {
		headcount, ok := departmentSizes[department]
		if !ok {
			headcount = opts.DefaultHeadcount
		}
		stats.TotalEmployees = headcount
		if headcount > 0 {
			stats.ParticipationRate = float64(stats.Responses) / float64(headcount) * 100
		}
		companyHeadcount += headcount
	}
	if companyHeadcount > 0 {
		result.ResponseRate = float64(len(responses)) / float64(companyHeadcount) * 100
	}

	result.Trends.Daily = buildDailyTrend(dailyCounts, opts.Now, opts.TrendDays)

	return result, nil
}

// buildDailyTrend renders a fixed trailing window ending at the anchor
// date, ascending, one entry per calendar day with zero fill.
func buildDailyTrend(dailyCounts map[string]int, now time.Time, days int) []models.DailyTrendPoint {
	daily := make([]models.DailyTrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(time.DateOnly)
		daily = append(daily, models.DailyTrendPoint{
			Date:      date,
			Responses: dailyCounts[date],
		})
	}
	return daily
}

// questionAccumulator collects the per-question tallies during the fold
// and renders them into the presentation shape afterwards. Malformed
// answers (wrong type for the question, non-integral or out-of-range
// ratings, undeclared choice values) are skipped so a single bad record
// cannot abort the aggregation.
type questionAccumulator struct {
	question models.Question
	ratings  [5]int
	options  map[string]int
	texts    []string
}

func newQuestionAccumulator(question models.Question) *questionAccumulator {
	acc := &questionAccumulator{question: question}
	if question.Type == models.QuestionTypeMultipleChoice {
		acc.options = make(map[string]int, len(question.Options))
	}
	return acc
}

func (v *questionAccumulator) take(answer any) {
	switch v.question.Type {
	case models.QuestionTypeRating:
		if rating, ok := ratingValue(answer); ok {
			v.ratings[rating-1]++
		}
	case models.QuestionTypeMultipleChoice:
		if option, ok := answer.(string); ok {
			for _, declared := range v.question.Options {
				if declared == option {
					v.options[option]++
					break
				}
			}
		}
	case models.QuestionTypeText:
		if text, ok := answer.(string); ok {
			v.texts = append(v.texts, text)
		}
	}
}

func (v *questionAccumulator) materialize() *models.QuestionStats {
	stats := &models.QuestionStats{
		Type:     v.question.Type,
		Category: v.question.CategoryOrFallback(),
		Results:  []any{},
	}

	switch v.question.Type {
	case models.QuestionTypeRating:
		buckets := make([]models.RatingBucket, 0, len(v.ratings))
		totalCount, totalScore := 0, 0
		for i, count := range v.ratings {
			buckets = append(buckets, models.RatingBucket{Rating: i + 1, Count: count})
			totalCount += count
			totalScore += (i + 1) * count
		}
		average := 0.0
		if totalCount > 0 {
			average = float64(totalScore) / float64(totalCount)
		}
		stats.Results = buckets
		stats.Average = &average
	case models.QuestionTypeMultipleChoice:
		tallies := make([]models.OptionTally, 0, len(v.question.Options))
		for _, option := range v.question.Options {
			tallies = append(tallies, models.OptionTally{Name: option, Value: v.options[option]})
		}
		stats.Results = tallies
	case models.QuestionTypeText:
		stats.Responses = v.texts
	}

	return stats
}

// ratingValue accepts the numeric shapes an answer can arrive in (raw
// ints from in-process callers, float64 after a JSON round trip) and
// validates it is a whole number on the 1..5 scale.
func ratingValue(answer any) (int, bool) {
	var rating float64
	switch value := answer.(type) {
	case float64:
		rating = value
	case float32:
		rating = float64(value)
	case int:
		rating = float64(value)
	case int64:
		rating = float64(value)
	default:
		return 0, false
	}
	if rating != math.Trunc(rating) || rating < 1 || rating > 5 {
		return 0, false
	}
	return int(rating), true
}

// GetSurveyAnalytics resolves a survey's current questions, its full
// response set and the department headcounts, then runs the pure fold.
// Every call recomputes from scratch.
func GetSurveyAnalytics(surveyID string) (*models.AnalyticsResult, error) {
	survey, err := GetSurvey(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	responses, err := ListResponses(surveyID)
	if err != nil {
		return nil, err
	}
	questions, err := GetQuestionsByIDs(survey.QuestionIDs)
	if err != nil {
		return nil, err
	}
	departmentSizes, err := GetDepartmentSizes()
	if err != nil {
		return nil, err
	}

	return ComputeAnalytics(&survey, questions, responses, departmentSizes, AnalyticsOptions{
		TrendDays:        viper.GetInt("analytics.trend_days"),
		DefaultHeadcount: viper.GetInt("analytics.default_headcount"),
	})
}
