package quiz

import (
	"fmt"
	"strings"
)

const (
	DefaultID         = "unknown"
	DefaultTitle      = "Unknown Problem"
	DefaultDifficulty = "medium"
	DefaultKeyInsight = "Add the key insight here"

	// used in the generated question when the source has no title
	fallbackQuestionSubject = "this problem"
)

// Source is the converter input. Every field is optional, a zero value
// is treated the same as a missing one and replaced by its default.
type Source struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	Description  string   `json:"description,omitempty"`
	QuizQuestion string   `json:"quiz_question,omitempty"`
}

type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	WhyWrong  string `json:"why_wrong,omitempty"`
}

type Quiz struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Record is a problem in the shape the quiz app reads from problems.json.
type Record struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Difficulty     string   `json:"difficulty"`
	Topics         []string `json:"topics"`
	ProblemSummary string   `json:"problem_summary"`
	Quiz           Quiz     `json:"quiz"`
	KeyInsight     string   `json:"key_insight"`
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func placeholderOptions() []Option {
	return []Option{
		{
			ID:        "A",
			Text:      "Brute force approach",
			IsCorrect: false,
			WhyWrong:  "This approach is inefficient",
		},
		{
			ID:        "B",
			Text:      "Optimized approach (to be filled)",
			IsCorrect: true,
		},
	}
}

func DefaultQuestion(title string) string {
	return fmt.Sprintf(
		"What is the main idea to solve '%s' efficiently?",
		orDefault(title, fallbackQuestionSubject),
	)
}

// Convert maps a scraped problem into a quiz record. It never fails, the
// quiz options are always the two placeholders.
func Convert(src Source) Record {
	topics := make([]string, len(src.Topics))
	copy(topics, src.Topics)

	question := src.QuizQuestion
	if question == "" {
		question = DefaultQuestion(src.Title)
	}

	return Record{
		ID:             orDefault(src.ID, DefaultID),
		Title:          orDefault(src.Title, DefaultTitle),
		Difficulty:     strings.ToLower(orDefault(src.Difficulty, DefaultDifficulty)),
		Topics:         topics,
		ProblemSummary: src.Description,
		Quiz: Quiz{
			Question: question,
			Options:  placeholderOptions(),
		},
		KeyInsight: DefaultKeyInsight,
	}
}
