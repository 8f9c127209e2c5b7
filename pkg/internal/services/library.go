package services

import (
	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// SeedQuestionLibrary inserts the shipped question library and the
// built-in survey templates. Existing rows are left untouched, so edits
// made through the catalog survive restarts.
func SeedQuestionLibrary() error {
	questions := standardQuestions()
	if err := database.C.Clauses(clause.OnConflict{DoNothing: true}).Create(&questions).Error; err != nil {
		return err
	}

	templates := builtinTemplates(questions)
	if err := database.C.Clauses(clause.OnConflict{DoNothing: true}).Create(&templates).Error; err != nil {
		return err
	}

	log.Info().
		Int("questions", len(questions)).
		Int("templates", len(templates)).
		Msg("Question library is ready.")

	return nil
}

func builtinRating(id, text, category string) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: id},
		Text:      text,
		Type:      models.QuestionTypeRating,
		Required:  true,
		Category:  category,
		IsBuiltIn: true,
	}
}

func builtinText(id, text, category string) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: id},
		Text:      text,
		Type:      models.QuestionTypeText,
		Required:  false,
		Category:  category,
		IsBuiltIn: true,
	}
}

func standardQuestions() []models.Question {
	return []models.Question{
		builtinRating("std-q1", "Management keeps me informed about important issues and changes.", "Management Communication"),
		builtinRating("std-q2", "Management makes its expectations clear & we understand how our role contributes to the organization's goals", "Role Clarity"),
		builtinRating("std-q3", "I can ask management any reasonable question and get a straight answer.", "Management Communication"),
		builtinRating("std-q4", "Management does a good job of attracting talent who fit in well here.", "Talent Management"),
		builtinRating("std-q5", "Management does a good job of assigning and coordinating people.", "Management Effectiveness"),
		builtinRating("std-q6", "Management trusts people to do a good job without watching over their shoulders.", "Trust & Autonomy"),
		builtinRating("std-q7", "Management has a clear view of where the organization is going and how to get there.", "Strategic Direction"),
		builtinRating("std-q8", "Management's actions match its words.", "Management Integrity"),
		builtinRating("std-q9", "Management is honest and ethical in its business practices.", "Ethics"),
		builtinRating("std-q10", "Our People Managers fully embody the best characteristics of our company.", "Leadership"),
		builtinRating("std-q11", "I am offered training or development to further myself professionally.", "Professional Development"),
		builtinRating("std-q12", "I am given the resources and equipment to do my job.", "Resources"),
		builtinRating("std-q13", "Management shows appreciation for good work and extra effort.", "Recognition"),
		builtinRating("std-q14", "Management recognizes honest mistakes as part of doing business.", "Psychological Safety"),
		builtinRating("std-q15", "We celebrate people who try new and better ways of doing things, regardless of the outcome.", "Innovation"),
		builtinRating("std-q16", "Management involves people & genuinely seeks and responds to suggestions and ideas.", "Employee Voice"),
		builtinRating("std-q17", "This is a psychologically and emotionally healthy place to work.", "Work Environment"),
		builtinRating("std-q18", "People are encouraged to balance their work life and their personal life.", "Work-Life Balance"),
		builtinRating("std-q19", "Management shows a sincere interest in me as a person, not just an employee.", "Employee Care"),
		builtinRating("std-q20", "People here are paid fairly for the work they do.", "Compensation"),
		builtinRating("std-q21", "I am able to take time off from work when I think it's necessary.", "Work-Life Balance"),
		builtinRating("std-q22", "Promotions go to those who best deserve them.", "Career Growth"),
		builtinRating("std-q23", "People avoid politicking and backstabbing as ways to get things done and avoid playing favourites", "Workplace Politics"),
		builtinRating("std-q24", "People here are treated fairly regardless of their age, Caste, Gender, Sexual Orientation.", "Diversity & Inclusion"),
		builtinRating("std-q25", "If I am unfairly treated, I believe I'll be given a fair hearing if I raise a case/ reach out to our P&C Team", "Fairness"),
		builtinRating("std-q26", "I feel I make a difference here & this is not 'just a job'.", "Purpose & Meaning"),
		builtinRating("std-q27", "When I look at what we accomplish, I feel a sense of pride.", "Pride"),
		builtinRating("std-q28", "People here are willing to put in extra effort to get the job done.", "Commitment"),
		builtinRating("std-q29", "People here quickly adapt to changes needed for our organization's success.", "Adaptability"),
		builtinRating("std-q30", "I want to work here for a long time.", "Retention"),
		builtinRating("std-q31", "I'm proud to tell others I work here.", "Pride"),
		builtinRating("std-q32", "People care about each other here & cooperate with each other.", "Collaboration"),
		builtinRating("std-q33", "People look forward to coming to work here.", "Engagement"),
		builtinRating("std-q34", "I feel good about the ways we contribute to the society.", "Social Impact"),
		builtinRating("std-q35", "Our respective business lines would rate the service we deliver as \"excellent\".", "Service Excellence"),
		builtinRating("std-q36", "People celebrate special events around here.", "Culture"),
		builtinRating("std-q37", "This is a fun place to work.", "Work Environment"),
		builtinRating("std-q38", "When you join the organization, you are made to feel welcome.", "Onboarding"),
		builtinRating("std-q39", "When people change jobs or work units, they are made to feel right at home.", "Internal Mobility"),
		builtinRating("std-q40", "Management does a good job of developing managers for leadership positions.", "Leadership Development"),
		builtinRating("std-q41", "Performance of employees here is fairly evaluated.", "Performance Management"),
		builtinRating("std-q42", "Management takes action on feedback gathered from employees.", "Feedback Loop"),
		builtinRating("std-q43", "My manager gives me useful feedback on how well I am performing", "Manager Feedback"),
		builtinRating("std-q44", "My manager keeps me informed about what is happening at the company", "Manager Communication"),
		builtinRating("std-q45", "Workloads are divided fairly among people where I work", "Workload"),
		builtinRating("std-q46", "Most of the systems and processes here support us getting our work done effectively", "Systems & Processes"),
		builtinRating("std-q47", "We hold ourselves and our team members accountable for results", "Accountability"),
		builtinRating("std-q48", "I am happy with my current role relative to what was described to me.", "Role Satisfaction"),
		builtinRating("std-q49", "Taking everything into account, I would say this is a great place to work.", "Overall Satisfaction"),
		builtinRating("std-q50", "Based on your experience so far, how likely are you to recommend a friend or a family member to join our company? Please share your response with 10 being most likely and 1 being least likely.", "eNPS"),
		builtinText("std-q51", "What do you like most about working at our company?", "Open Feedback"),
		builtinText("std-q52", "What would make our company an even better place to work?", "Improvement Suggestions"),
	}
}

func builtinTemplates(questions []models.Question) []models.SurveyTemplate {
	allIDs := lo.Map(questions, func(item models.Question, index int) string {
		return item.ID
	})

	return []models.SurveyTemplate{
		{
			BaseModel:   models.BaseModel{ID: "comprehensive"},
			Name:        "Comprehensive Employee Happiness Survey",
			Description: "A complete assessment covering all aspects of employee experience",
			QuestionIDs: datatypes.NewJSONSlice(allIDs),
			IsBuiltIn:   true,
		},
		{
			BaseModel:   models.BaseModel{ID: "management-focus"},
			Name:        "Management Effectiveness Survey",
			Description: "Focus on leadership, management practices, and communication",
			QuestionIDs: datatypes.NewJSONSlice([]string{
				"std-q1", "std-q2", "std-q3", "std-q5", "std-q6", "std-q7", "std-q8", "std-q9", "std-q10",
				"std-q13", "std-q16", "std-q40", "std-q42", "std-q43", "std-q44",
			}),
			IsBuiltIn: true,
		},
		{
			BaseModel:   models.BaseModel{ID: "engagement"},
			Name:        "Employee Engagement Pulse Check",
			Description: "Quick assessment of current engagement levels",
			QuestionIDs: datatypes.NewJSONSlice([]string{
				"std-q17", "std-q26", "std-q27", "std-q28", "std-q30", "std-q31", "std-q33", "std-q49",
				"std-q50", "std-q51",
			}),
			IsBuiltIn: true,
		},
		{
			BaseModel:   models.BaseModel{ID: "culture"},
			Name:        "Company Culture Survey",
			Description: "Evaluate the health of your organizational culture",
			QuestionIDs: datatypes.NewJSONSlice([]string{
				"std-q15", "std-q17", "std-q23", "std-q24", "std-q32", "std-q34", "std-q36", "std-q37",
				"std-q38",
			}),
			IsBuiltIn: true,
		},
		{
			BaseModel:   models.BaseModel{ID: "work-life"},
			Name:        "Work-Life Balance Assessment",
			Description: "Focus on wellbeing and balance between work and personal life",
			QuestionIDs: datatypes.NewJSONSlice([]string{"std-q18", "std-q19", "std-q21", "std-q17", "std-q52"}),
			IsBuiltIn:   true,
		},
	}
}
