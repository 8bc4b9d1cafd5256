package quiz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var twoSum = Source{
	ID:          "lc_001",
	Title:       "Two Sum",
	Difficulty:  "Easy",
	Topics:      []string{"array", "hash_map"},
	Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
}

func requirePlaceholderOptions(t testing.TB, options []Option) {
	require.Len(t, options, 2)
	require.Equal(t, "A", options[0].ID)
	require.False(t, options[0].IsCorrect)
	require.Equal(t, "This approach is inefficient", options[0].WhyWrong)
	require.Equal(t, "B", options[1].ID)
	require.True(t, options[1].IsCorrect)
	require.Empty(t, options[1].WhyWrong)
}

func TestConvert(t *testing.T) {
	record := Convert(twoSum)

	require.Equal(t, "lc_001", record.ID)
	require.Equal(t, "Two Sum", record.Title)
	require.Equal(t, "easy", record.Difficulty)
	require.Equal(t, []string{"array", "hash_map"}, record.Topics)
	require.Equal(t, twoSum.Description, record.ProblemSummary)
	require.Equal(t, "What is the main idea to solve 'Two Sum' efficiently?", record.Quiz.Question)
	require.Equal(t, DefaultKeyInsight, record.KeyInsight)
	requirePlaceholderOptions(t, record.Quiz.Options)
}

func TestConvertDefaults(t *testing.T) {
	record := Convert(Source{})

	require.Equal(t, "unknown", record.ID)
	require.Equal(t, "Unknown Problem", record.Title)
	require.Equal(t, "medium", record.Difficulty)
	require.NotNil(t, record.Topics)
	require.Empty(t, record.Topics)
	require.Equal(t, "", record.ProblemSummary)
	require.Equal(t, "What is the main idea to solve 'this problem' efficiently?", record.Quiz.Question)
	requirePlaceholderOptions(t, record.Quiz.Options)
}

func TestConvertMissingID(t *testing.T) {
	src := twoSum
	src.ID = ""
	require.Equal(t, "unknown", Convert(src).ID)
}

func TestConvertQuestionOverride(t *testing.T) {
	src := twoSum
	src.QuizQuestion = "Which data structure gives O(1) complement lookups?"

	overridden := Convert(src)
	plain := Convert(twoSum)

	require.Equal(t, src.QuizQuestion, overridden.Quiz.Question)
	plain.Quiz.Question = overridden.Quiz.Question
	if diff := cmp.Diff(plain, overridden); diff != "" {
		t.Fatalf("override changed more than the question (-want +got):\n%s", diff)
	}
}

func TestConvertIdempotent(t *testing.T) {
	first := Convert(twoSum)
	second := Convert(twoSum)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("conversions differ (-first +second):\n%s", diff)
	}
}

func TestConvertCopiesTopics(t *testing.T) {
	src := Source{Topics: []string{"array"}}
	record := Convert(src)
	record.Topics[0] = "mutated"
	require.Equal(t, "array", src.Topics[0])
}
