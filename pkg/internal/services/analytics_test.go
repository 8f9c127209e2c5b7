package services

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"gorm.io/datatypes"
)

func ratingQuestion(id, category string) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: id},
		Text:      "How are things going?",
		Type:      models.QuestionTypeRating,
		Required:  false,
		Category:  category,
	}
}

func choiceQuestion(id, category string, options ...string) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: id},
		Text:      "Pick one.",
		Type:      models.QuestionTypeMultipleChoice,
		Category:  category,
		Options:   datatypes.NewJSONSlice(options),
	}
}

func textQuestion(id, category string) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: id},
		Text:      "Anything else?",
		Type:      models.QuestionTypeText,
		Category:  category,
	}
}

func submission(submittedAt time.Time, department string, answers map[string]any) models.Response {
	return models.Response{
		ID:       "r-" + submittedAt.Format("20060102150405.000000000"),
		SurveyID: "survey-1",
		Answers:  answers,
		Metadata: datatypes.NewJSONType(models.ResponseMetadata{
			IsAnonymous: len(department) == 0,
			Department:  department,
		}),
		SubmittedAt: submittedAt,
	}
}

func surveyWith(questions ...models.Question) *models.Survey {
	ids := make([]string, 0, len(questions))
	for _, question := range questions {
		ids = append(ids, question.ID)
	}
	return &models.Survey{
		BaseModel:   models.BaseModel{ID: "survey-1"},
		Name:        "Pulse",
		Status:      models.SurveyStatusActive,
		QuestionIDs: datatypes.NewJSONSlice(ids),
		// Deliberately wrong: analytics must never trust this.
		ResponseCount: 9999,
	}
}

func ratingBuckets(t *testing.T, stats *models.QuestionStats) []models.RatingBucket {
	t.Helper()
	buckets, ok := stats.Results.([]models.RatingBucket)
	if !ok {
		t.Fatalf("expected rating buckets, got %T", stats.Results)
	}
	return buckets
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var testOpts = AnalyticsOptions{Now: time.Date(2024, 11, 12, 15, 4, 5, 0, time.UTC)}

func TestComputeAnalyticsRatingsAndCategories(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	q2 := ratingQuestion("q2", "Y")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	responses := []models.Response{
		submission(day, "", map[string]any{"q1": 5, "q2": 3}),
		submission(day.Add(time.Hour), "", map[string]any{"q1": 5}),
		submission(day.Add(2*time.Hour), "", map[string]any{"q1": 1, "q2": 3}),
	}

	result, err := ComputeAnalytics(surveyWith(q1, q2), []models.Question{q1, q2}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	if result.TotalResponses != 3 {
		t.Fatalf("expected 3 total responses regardless of cached counter, got %d", result.TotalResponses)
	}
	if result.TotalQuestions != 2 {
		t.Fatalf("expected 2 total questions, got %d", result.TotalQuestions)
	}

	buckets := ratingBuckets(t, result.QuestionAnalytics["q1"])
	expected := []models.RatingBucket{
		{Rating: 1, Count: 1},
		{Rating: 2, Count: 0},
		{Rating: 3, Count: 0},
		{Rating: 4, Count: 0},
		{Rating: 5, Count: 2},
	}
	if !reflect.DeepEqual(buckets, expected) {
		t.Fatalf("unexpected q1 buckets: %+v", buckets)
	}
	if avg := *result.QuestionAnalytics["q1"].Average; !almostEqual(avg, 11.0/3.0) {
		t.Fatalf("unexpected q1 average: %v", avg)
	}
	if avg := *result.QuestionAnalytics["q2"].Average; !almostEqual(avg, 3) {
		t.Fatalf("unexpected q2 average: %v", avg)
	}

	if got := result.CategoryDistribution["X"]; got.QuestionCount != 1 || got.TotalAnswersReceived != 3 {
		t.Fatalf("unexpected category X stats: %+v", got)
	}
	if got := result.CategoryDistribution["Y"]; got.QuestionCount != 1 || got.TotalAnswersReceived != 2 {
		t.Fatalf("unexpected category Y stats: %+v", got)
	}
}

func TestComputeAnalyticsBucketConservation(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	// Only three of these answers are valid 1..5 ratings.
	responses := []models.Response{
		submission(day, "", map[string]any{"q1": 4}),
		submission(day.Add(1*time.Minute), "", map[string]any{"q1": 0}),
		submission(day.Add(2*time.Minute), "", map[string]any{"q1": 6}),
		submission(day.Add(3*time.Minute), "", map[string]any{"q1": 4.5}),
		submission(day.Add(4*time.Minute), "", map[string]any{"q1": "great"}),
		submission(day.Add(5*time.Minute), "", map[string]any{"q1": 2.0}),
		submission(day.Add(6*time.Minute), "", map[string]any{"q1": 1}),
	}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	total := 0
	for _, bucket := range ratingBuckets(t, result.QuestionAnalytics["q1"]) {
		total += bucket.Count
	}
	if total != 3 {
		t.Fatalf("expected 3 valid ratings counted, got %d", total)
	}
	// Malformed values still count as received answers for the category.
	if got := result.CategoryDistribution["X"].TotalAnswersReceived; got != 7 {
		t.Fatalf("expected 7 answers received, got %d", got)
	}
	if avg := *result.QuestionAnalytics["q1"].Average; !almostEqual(avg, 7.0/3.0) {
		t.Fatalf("unexpected average: %v", avg)
	}
}

func TestComputeAnalyticsAverageBounds(t *testing.T) {
	q1 := ratingQuestion("q1", "X")

	// No responses at all: average must be exactly zero, not NaN.
	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, nil, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}
	if _, ok := result.QuestionAnalytics["q1"]; ok {
		t.Fatal("question with no answers should have no analytics entry")
	}

	// A question seen only through malformed answers keeps average zero.
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	responses := []models.Response{submission(day, "", map[string]any{"q1": "broken"})}
	result, err = ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}
	if avg := *result.QuestionAnalytics["q1"].Average; avg != 0 {
		t.Fatalf("expected average 0 for zero tallies, got %v", avg)
	}
}

func TestComputeAnalyticsDepartments(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	responses := []models.Response{
		submission(day, "Eng", map[string]any{"q1": 5}),
		submission(day.Add(1*time.Minute), "Eng", map[string]any{"q1": 4}),
		submission(day.Add(2*time.Minute), "", map[string]any{"q1": 3}),
		submission(day.Add(3*time.Minute), "", map[string]any{"q1": 3}),
		submission(day.Add(4*time.Minute), "", map[string]any{"q1": 3}),
	}
	sizes := map[string]int{"Eng": 10, "Unknown": 200}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, sizes, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	eng, ok := result.DepartmentAnalytics["Eng"]
	if !ok {
		t.Fatal("Eng department missing from analytics")
	}
	if eng.Responses != 2 || eng.TotalEmployees != 10 || !almostEqual(eng.ParticipationRate, 20) {
		t.Fatalf("unexpected Eng stats: %+v", eng)
	}

	if _, ok := result.DepartmentAnalytics["Unknown"]; ok {
		t.Fatal("departments nobody responded from must stay absent")
	}

	// Only discovered departments feed the denominator: 5/10*100.
	if !almostEqual(result.ResponseRate, 50) {
		t.Fatalf("unexpected response rate: %v", result.ResponseRate)
	}
}

func TestComputeAnalyticsDefaultHeadcount(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	responses := []models.Response{submission(day, "Mystery", map[string]any{"q1": 5})}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, map[string]int{}, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}
	if got := result.DepartmentAnalytics["Mystery"].TotalEmployees; got != 50 {
		t.Fatalf("expected fallback headcount 50, got %d", got)
	}

	opts := testOpts
	opts.DefaultHeadcount = 8
	result, err = ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, map[string]int{}, opts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}
	if got := result.DepartmentAnalytics["Mystery"].TotalEmployees; got != 8 {
		t.Fatalf("expected configured headcount 8, got %d", got)
	}
}

func TestComputeAnalyticsRateGuards(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	responses := []models.Response{submission(day, "Ghosts", map[string]any{"q1": 5})}
	sizes := map[string]int{"Ghosts": 0}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, sizes, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	ghosts := result.DepartmentAnalytics["Ghosts"]
	if ghosts.ParticipationRate != 0 {
		t.Fatalf("expected participation 0 for zero headcount, got %v", ghosts.ParticipationRate)
	}
	if result.ResponseRate != 0 {
		t.Fatalf("expected response rate 0 for zero denominator, got %v", result.ResponseRate)
	}
	for _, rate := range []float64{ghosts.ParticipationRate, result.ResponseRate} {
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			t.Fatalf("rate is not finite: %v", rate)
		}
	}
}

func TestComputeAnalyticsStaleQuestionReference(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	responses := []models.Response{
		submission(day, "", map[string]any{"q1": 4, "q-deleted": 5}),
	}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("stale reference must not fail the aggregation: %v", err)
	}

	if _, ok := result.QuestionAnalytics["q-deleted"]; ok {
		t.Fatal("stale question must not appear in question analytics")
	}
	if got := result.CategoryDistribution["X"].TotalAnswersReceived; got != 1 {
		t.Fatalf("stale answer must not count anywhere, got %d received", got)
	}
}

func TestComputeAnalyticsZeroResponses(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	q2 := textQuestion("q2", "Y")

	result, err := ComputeAnalytics(surveyWith(q1, q2), []models.Question{q1, q2}, nil, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	if result.TotalResponses != 0 || result.ResponseRate != 0 {
		t.Fatalf("expected zeroed totals, got %+v", result)
	}
	if len(result.DepartmentAnalytics) != 0 {
		t.Fatalf("expected no departments, got %v", result.DepartmentAnalytics)
	}
	for category, stats := range result.CategoryDistribution {
		if stats.QuestionCount != 1 || stats.TotalAnswersReceived != 0 {
			t.Fatalf("unexpected stats for category %s: %+v", category, stats)
		}
	}
	if len(result.CategoryDistribution) != 2 {
		t.Fatalf("both categories must be seeded, got %v", result.CategoryDistribution)
	}
}

func TestComputeAnalyticsUncategorizedFallback(t *testing.T) {
	q1 := ratingQuestion("q1", "")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	responses := []models.Response{submission(day, "", map[string]any{"q1": 3})}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	stats, ok := result.CategoryDistribution[models.FallbackCategory]
	if !ok {
		t.Fatal("untagged questions must group under the fallback category")
	}
	if stats.QuestionCount != 1 || stats.TotalAnswersReceived != 1 {
		t.Fatalf("unexpected fallback stats: %+v", stats)
	}
}

func TestComputeAnalyticsMultipleChoice(t *testing.T) {
	q1 := choiceQuestion("q1", "X", "Remote", "Hybrid", "Office")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	responses := []models.Response{
		submission(day, "", map[string]any{"q1": "Remote"}),
		submission(day.Add(1*time.Minute), "", map[string]any{"q1": "Remote"}),
		submission(day.Add(2*time.Minute), "", map[string]any{"q1": "Office"}),
		submission(day.Add(3*time.Minute), "", map[string]any{"q1": "remote"}), // case matters
		submission(day.Add(4*time.Minute), "", map[string]any{"q1": 3}),        // wrong type
	}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	tallies, ok := result.QuestionAnalytics["q1"].Results.([]models.OptionTally)
	if !ok {
		t.Fatalf("expected option tallies, got %T", result.QuestionAnalytics["q1"].Results)
	}
	expected := []models.OptionTally{
		{Name: "Remote", Value: 2},
		{Name: "Hybrid", Value: 0},
		{Name: "Office", Value: 1},
	}
	if !reflect.DeepEqual(tallies, expected) {
		t.Fatalf("unexpected tallies: %+v", tallies)
	}
}

func TestComputeAnalyticsTextAnswers(t *testing.T) {
	q1 := textQuestion("q1", "Open Feedback")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	responses := []models.Response{
		submission(day, "", map[string]any{"q1": "more coffee"}),
		submission(day.Add(1*time.Minute), "", map[string]any{"q1": 42}),
		submission(day.Add(2*time.Minute), "", map[string]any{"q1": "less meetings"}),
	}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	stats := result.QuestionAnalytics["q1"]
	if !reflect.DeepEqual(stats.Responses, []string{"more coffee", "less meetings"}) {
		t.Fatalf("unexpected text responses: %v", stats.Responses)
	}
	if stats.Average != nil {
		t.Fatal("text questions must not carry an average")
	}
}

func TestComputeAnalyticsTrendWindow(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	now := time.Date(2024, 11, 12, 23, 30, 0, 0, time.UTC)

	responses := []models.Response{
		submission(now.AddDate(0, 0, -1), "", map[string]any{"q1": 4}),
		submission(now.AddDate(0, 0, -1).Add(time.Hour), "", map[string]any{"q1": 2}),
		submission(now, "", map[string]any{"q1": 5}),
		// Outside the window: contributes nothing.
		submission(now.AddDate(0, 0, -45), "", map[string]any{"q1": 1}),
	}

	result, err := ComputeAnalytics(surveyWith(q1), []models.Question{q1}, responses, nil, AnalyticsOptions{Now: now})
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	daily := result.Trends.Daily
	if len(daily) != 30 {
		t.Fatalf("expected exactly 30 trend entries, got %d", len(daily))
	}
	if daily[len(daily)-1].Date != "2024-11-12" {
		t.Fatalf("last entry must be today, got %s", daily[len(daily)-1].Date)
	}
	for i := 1; i < len(daily); i++ {
		if daily[i].Date <= daily[i-1].Date {
			t.Fatalf("dates must be strictly ascending: %s then %s", daily[i-1].Date, daily[i].Date)
		}
	}
	if daily[len(daily)-1].Responses != 1 || daily[len(daily)-2].Responses != 2 {
		t.Fatalf("unexpected trailing counts: %+v", daily[len(daily)-2:])
	}

	total := 0
	for _, point := range daily {
		total += point.Responses
	}
	if total != 3 {
		t.Fatalf("expected 3 responses inside the window, got %d", total)
	}
}

func TestComputeAnalyticsIdempotent(t *testing.T) {
	q1 := ratingQuestion("q1", "X")
	q2 := choiceQuestion("q2", "Y", "A", "B")
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)

	responses := []models.Response{
		submission(day, "Eng", map[string]any{"q1": 4, "q2": "A"}),
		submission(day.Add(time.Hour), "Sales", map[string]any{"q1": 2, "q2": "B"}),
	}
	sizes := map[string]int{"Eng": 12}

	first, err := ComputeAnalytics(surveyWith(q1, q2), []models.Question{q1, q2}, responses, sizes, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}
	second, err := ComputeAnalytics(surveyWith(q1, q2), []models.Question{q1, q2}, responses, sizes, testOpts)
	if err != nil {
		t.Fatalf("ComputeAnalytics error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must produce structurally identical output")
	}
}

func TestComputeAnalyticsNilSurvey(t *testing.T) {
	if _, err := ComputeAnalytics(nil, nil, nil, nil, testOpts); err != ErrSurveyNotFound {
		t.Fatalf("expected ErrSurveyNotFound, got %v", err)
	}
}
