package service

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lernraum_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawAnswer(t *testing.T, questionID uint, payload string) model.SurveyAnswer {
	t.Helper()
	return model.SurveyAnswer{QuestionID: questionID, Answer: json.RawMessage(payload)}
}

func TestAggregateResultsSingleChoice(t *testing.T) {
	questions := []model.SurveyQuestion{{
		BaseModel: model.BaseModel{ID: 1},
		Type:      model.SingleChoice,
		Label:     "Lieblingssprache",
		Options:   json.RawMessage(`["Go","Rust"]`),
	}}
	answers := []model.SurveyAnswer{
		rawAnswer(t, 1, `{"type":"option","value":"Go"}`),
		rawAnswer(t, 1, `{"type":"option","value":"Go"}`),
		rawAnswer(t, 1, `{"type":"other","value":"Zig"}`),
		rawAnswer(t, 1, `{"type":"other","value":"   "}`),
	}

	results := AggregateResults(questions, answers)
	require.Len(t, results, 1)
	r := results[0]

	assert.Equal(t, 4, r.Answered)
	assert.Equal(t, map[string]int{"Go": 2}, r.Counts)
	// Leerer Freitext zählt als "Anderes", taucht aber nicht in den Texten auf
	assert.Equal(t, 2, r.OtherCount)
	assert.Equal(t, []string{"Zig"}, r.OtherTexts)
}

func TestAggregateResultsMultipleChoice(t *testing.T) {
	questions := []model.SurveyQuestion{{
		BaseModel: model.BaseModel{ID: 2},
		Type:      model.MultipleChoice,
		Label:     "Themen",
		Options:   json.RawMessage(`["A","B","C"]`),
	}}
	answers := []model.SurveyAnswer{
		rawAnswer(t, 2, `{"values":["A","C"],"otherText":null}`),
		rawAnswer(t, 2, `{"values":["A"],"otherText":"D"}`),
		rawAnswer(t, 2, `{"values":[],"otherText":null}`),
	}

	results := AggregateResults(questions, answers)
	require.Len(t, results, 1)
	r := results[0]

	// Die leere Abgabe zählt nicht als beantwortet
	assert.Equal(t, 2, r.Answered)
	assert.Equal(t, map[string]int{"A": 2, "C": 1}, r.Counts)
	assert.Equal(t, 1, r.OtherCount)
	assert.Equal(t, []string{"D"}, r.OtherTexts)
}

func TestAggregateResultsScale(t *testing.T) {
	min, max := 1, 5
	questions := []model.SurveyQuestion{{
		BaseModel: model.BaseModel{ID: 3},
		Type:      model.Scale,
		Label:     "Zufriedenheit",
		MinValue:  &min,
		MaxValue:  &max,
	}}
	answers := []model.SurveyAnswer{
		rawAnswer(t, 3, `{"value":3}`),
		rawAnswer(t, 3, `{"value":3}`),
		rawAnswer(t, 3, `{"value":5}`),
	}

	results := AggregateResults(questions, answers)
	require.Len(t, results, 1)
	r := results[0]

	assert.Equal(t, 3, r.Answered)
	assert.Equal(t, 11, r.Sum)
	assert.InDelta(t, 11.0/3.0, r.Mean, 1e-9)
	assert.Equal(t, map[int]int{3: 2, 5: 1}, r.ScaleCounts)
	assert.Equal(t, 1, r.Min)
	assert.Equal(t, 5, r.Max)
}

func TestAggregateResultsText(t *testing.T) {
	questions := []model.SurveyQuestion{{
		BaseModel: model.BaseModel{ID: 4},
		Type:      model.LongText,
		Label:     "Feedback",
	}}
	answers := []model.SurveyAnswer{
		rawAnswer(t, 4, `{"value":"Super Kurs"}`),
		rawAnswer(t, 4, `{"value":""}`),
	}

	results := AggregateResults(questions, answers)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Answered)
	assert.Equal(t, []string{"Super Kurs"}, results[0].Texts)
}

func TestAggregateResultsSkipsStaleAndBrokenAnswers(t *testing.T) {
	questions := []model.SurveyQuestion{{
		BaseModel: model.BaseModel{ID: 5},
		Type:      model.Scale,
		Label:     "Skala",
	}}
	answers := []model.SurveyAnswer{
		rawAnswer(t, 99, `{"value":3}`),  // Frage existiert nicht mehr
		rawAnswer(t, 5, `{"value":"x"}`), // nicht dekodierbar
		rawAnswer(t, 5, `{"value":2}`),
	}

	results := AggregateResults(questions, answers)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Answered)
	assert.Equal(t, 2, results[0].Sum)
}

func TestBuildResultsCSV(t *testing.T) {
	questions := []model.SurveyQuestion{
		{BaseModel: model.BaseModel{ID: 1}, Type: model.ShortText, Label: "Wie  heißt\ndu?"},
		{BaseModel: model.BaseModel{ID: 2}, Type: model.MultipleChoice, Label: "Themen", Options: json.RawMessage(`["A","B"]`)},
		{BaseModel: model.BaseModel{ID: 3}, Type: model.Scale, Label: "Note"},
	}
	userID := uint(42)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	responses := []model.SurveyResponse{
		{ID: 10, UserID: &userID, CreatedAt: createdAt},
		{ID: 11, UserID: nil, CreatedAt: createdAt},
	}
	answers := []model.SurveyAnswer{
		{ResponseID: 10, QuestionID: 1, Answer: json.RawMessage(`{"value":"Mia, \"die Erste\""}`)},
		{ResponseID: 10, QuestionID: 2, Answer: json.RawMessage(`{"values":["A","B"],"otherText":"C"}`)},
		{ResponseID: 10, QuestionID: 3, Answer: json.RawMessage(`{"value":4}`)},
		{ResponseID: 11, QuestionID: 3, Answer: json.RawMessage(`{"value":2}`)},
	}

	out, err := BuildResultsCSV(questions, responses, answers)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Whitespace in Labels wird für die Spaltenköpfe zusammengezogen
	assert.Equal(t, []string{"response_id", "user_id", "created_at", "Wie heißt du?", "Themen", "Note"}, records[0])

	assert.Equal(t, "10", records[1][0])
	assert.Equal(t, "42", records[1][1])
	assert.Equal(t, "2026-03-01T12:00:00Z", records[1][2])
	assert.Equal(t, `Mia, "die Erste"`, records[1][3])
	assert.JSONEq(t, `{"values":["A","B"],"otherText":"C"}`, records[1][4])
	assert.Equal(t, "4", records[1][5])

	// Anonyme Teilnahme ohne user_id, fehlende Antworten als leere Zellen
	assert.Equal(t, []string{"11", "", "2026-03-01T12:00:00Z", "", "", "2"}, records[2])
}
