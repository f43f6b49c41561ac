package service

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lernraum_backend/internal/model"
)

// QuestionResult ist die Auswertung einer einzelnen Frage. Je nach Fragetyp
// ist nur eine Teilmenge der Felder belegt.
type QuestionResult struct {
	QuestionID uint               `json:"questionId"`
	Label      string             `json:"label"`
	Type       model.QuestionType `json:"type"`
	Answered   int                `json:"answered"`

	// Auswahltypen
	Counts     map[string]int `json:"counts,omitempty"`
	OtherCount int            `json:"otherCount,omitempty"`
	OtherTexts []string       `json:"otherTexts,omitempty"`

	// Textfragen
	Texts []string `json:"texts,omitempty"`

	// Skalen
	Min         int         `json:"min,omitempty"`
	Max         int         `json:"max,omitempty"`
	Sum         int         `json:"sum,omitempty"`
	Mean        float64     `json:"mean,omitempty"`
	ScaleCounts map[int]int `json:"scaleCounts,omitempty"`
}

type SurveyResults struct {
	SurveyID       uint             `json:"surveyId"`
	Title          string           `json:"title"`
	TotalResponses int              `json:"totalResponses"`
	Questions      []QuestionResult `json:"questions"`
}

// AggregateResults verdichtet die Antwortmenge pro Frage. Die Funktion ist
// rein; Antworten auf unbekannte (z. B. inzwischen gelöschte) Fragen werden
// übersprungen, nicht dekodierbare Antworten ebenfalls.
func AggregateResults(questions []model.SurveyQuestion, answers []model.SurveyAnswer) []QuestionResult {
	results := make([]QuestionResult, len(questions))
	index := make(map[uint]*QuestionResult, len(questions))

	for i := range questions {
		q := &questions[i]
		r := QuestionResult{QuestionID: q.ID, Label: q.Label, Type: q.Type}
		switch q.Type {
		case model.SingleChoice, model.MultipleChoice:
			r.Counts = map[string]int{}
			r.OtherTexts = []string{}
		case model.Scale:
			r.ScaleCounts = map[int]int{}
			r.Min, r.Max = q.ScaleBounds()
		default:
			r.Texts = []string{}
		}
		results[i] = r
		index[q.ID] = &results[i]
	}

	for _, a := range answers {
		r, ok := index[a.QuestionID]
		if !ok {
			continue
		}
		value, err := model.DecodeAnswerValue(r.Type, a.Answer)
		if err != nil {
			continue
		}

		switch r.Type {
		case model.SingleChoice:
			switch {
			case value.Option != nil:
				r.Counts[*value.Option]++
				r.Answered++
			case value.OtherText != nil:
				if text := strings.TrimSpace(*value.OtherText); text != "" {
					r.OtherTexts = append(r.OtherTexts, text)
				}
				r.OtherCount++
				r.Answered++
			}

		case model.MultipleChoice:
			for _, v := range value.Values {
				r.Counts[v]++
			}
			if value.OtherText != nil && *value.OtherText != "" {
				r.OtherTexts = append(r.OtherTexts, *value.OtherText)
				r.OtherCount++
			}
			if len(value.Values) > 0 || (value.OtherText != nil && *value.OtherText != "") {
				r.Answered++
			}

		case model.Scale:
			if value.Scale != nil {
				r.ScaleCounts[*value.Scale]++
				r.Sum += *value.Scale
				r.Answered++
			}

		default:
			if value.Text != "" {
				r.Texts = append(r.Texts, value.Text)
				r.Answered++
			}
		}
	}

	for i := range results {
		r := &results[i]
		if r.Type == model.Scale && r.Answered > 0 {
			r.Mean = float64(r.Sum) / float64(r.Answered)
		}
	}
	return results
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseLabel normalisiert Fragenlabels für CSV-Spaltenköpfe.
func collapseLabel(label string) string {
	return whitespaceRun.ReplaceAllString(label, " ")
}

// BuildResultsCSV baut den RFC-4180-konformen Export. Eine Zeile pro
// Teilnahme, Spalten in Fragereihenfolge. Mehrfachauswahlen stehen als
// JSON in der Zelle, damit getrennte Werte und Freitext erhalten bleiben.
func BuildResultsCSV(questions []model.SurveyQuestion, responses []model.SurveyResponse, answers []model.SurveyAnswer) ([]byte, error) {
	header := []string{"response_id", "user_id", "created_at"}
	for _, q := range questions {
		header = append(header, collapseLabel(q.Label))
	}

	questionIndex := make(map[uint]int, len(questions))
	for i, q := range questions {
		questionIndex[q.ID] = i
	}

	// Zellen pro (Teilnahme, Frage) vorbereiten
	cells := make(map[uint][]string, len(responses))
	for _, resp := range responses {
		cells[resp.ID] = make([]string, len(questions))
	}

	for _, a := range answers {
		row, ok := cells[a.ResponseID]
		if !ok {
			continue
		}
		col, ok := questionIndex[a.QuestionID]
		if !ok {
			continue
		}
		q := questions[col]
		value, err := model.DecodeAnswerValue(q.Type, a.Answer)
		if err != nil {
			continue
		}
		row[col] = csvCell(q.Type, value)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, resp := range responses {
		userID := ""
		if resp.UserID != nil {
			userID = strconv.FormatUint(uint64(*resp.UserID), 10)
		}
		record := []string{
			strconv.FormatUint(uint64(resp.ID), 10),
			userID,
			resp.CreatedAt.Format(time.RFC3339),
		}
		record = append(record, cells[resp.ID]...)
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvCell(kind model.QuestionType, value model.AnswerValue) string {
	switch kind {
	case model.SingleChoice:
		if value.OtherText != nil {
			return *value.OtherText
		}
		if value.Option != nil {
			return *value.Option
		}
		return ""
	case model.MultipleChoice:
		encoded, err := value.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(encoded)
	case model.Scale:
		if value.Scale != nil {
			return strconv.Itoa(*value.Scale)
		}
		return ""
	default:
		return value.Text
	}
}

// Results lädt und verdichtet alle Teilnahmen einer Umfrage.
func (s *SurveyService) Results(surveyID uint) (*SurveyResults, error) {
	survey, err := s.SurveyRepo.FindByID(surveyID)
	if err != nil {
		return nil, err
	}

	responses, err := s.SurveyRepo.ListResponses(surveyID)
	if err != nil {
		return nil, err
	}
	answers, err := s.SurveyRepo.ListAnswers(surveyID)
	if err != nil {
		return nil, err
	}

	return &SurveyResults{
		SurveyID:       survey.ID,
		Title:          survey.Title,
		TotalResponses: len(responses),
		Questions:      AggregateResults(survey.Questions, answers),
	}, nil
}

// ExportCSV liefert den kompletten Export als Dateiinhalt.
func (s *SurveyService) ExportCSV(surveyID uint) ([]byte, error) {
	survey, err := s.SurveyRepo.FindByID(surveyID)
	if err != nil {
		return nil, err
	}
	responses, err := s.SurveyRepo.ListResponses(surveyID)
	if err != nil {
		return nil, err
	}
	answers, err := s.SurveyRepo.ListAnswers(surveyID)
	if err != nil {
		return nil, err
	}
	return BuildResultsCSV(survey.Questions, responses, answers)
}
