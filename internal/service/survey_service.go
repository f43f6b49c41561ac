package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"
	"lernraum_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type SurveyService struct {
	SurveyRepo *repository.SurveyRepository
}

func NewSurveyService(surveyRepo *repository.SurveyRepository) *SurveyService {
	return &SurveyService{SurveyRepo: surveyRepo}
}

// GetSurveyByToken liefert eine Umfrage zum Einbetten. Inaktive und
// unbekannte Tokens sind nach außen nicht unterscheidbar.
func (s *SurveyService) GetSurveyByToken(token string) (*model.Survey, error) {
	survey, err := s.SurveyRepo.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSurveyNotFound
	}
	if err != nil {
		return nil, err
	}
	if !survey.IsActive {
		return nil, util.ErrSurveyInactive
	}
	return survey, nil
}

// ValidationError trägt die Pflichtfrage, an der die Abgabe gescheitert ist.
type ValidationError struct {
	QuestionID uint
	Label      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Bitte Frage ausfüllen: %s", e.Label)
}

// Submit prüft und speichert eine komplette Abgabe. Reihenfolge der
// Prüfungen: Umfrage verfügbar, Login-Pflicht, dann Frage für Frage.
// Geschrieben wird erst, wenn alles gültig ist, und dann in einer
// Transaktion.
func (s *SurveyService) Submit(token string, userID *uint, rawAnswers map[uint]json.RawMessage) (*model.SurveyResponse, error) {
	survey, err := s.GetSurveyByToken(token)
	if err != nil {
		return nil, err
	}

	if !survey.IsAnonymous && userID == nil {
		return nil, util.ErrLoginRequired
	}
	// Bei anonymen Umfragen wird auch ein vorhandener Login nicht gespeichert
	if survey.IsAnonymous {
		userID = nil
	}

	var answers []model.SurveyAnswer
	for i := range survey.Questions {
		q := &survey.Questions[i]

		raw, ok := rawAnswers[q.ID]
		if !ok || len(raw) == 0 {
			if q.Required {
				return nil, &ValidationError{QuestionID: q.ID, Label: q.Label}
			}
			continue
		}

		value, err := model.DecodeAnswerValue(q.Type, raw)
		if err != nil {
			return nil, err
		}

		if value.IsEmpty() {
			if q.Required {
				return nil, &ValidationError{QuestionID: q.ID, Label: q.Label}
			}
			continue
		}

		if err := validateAnswer(q, value); err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		answers = append(answers, model.SurveyAnswer{
			QuestionID: q.ID,
			Answer:     encoded,
		})
	}

	response := &model.SurveyResponse{
		SurveyID: survey.ID,
		UserID:   userID,
	}
	if err := s.SurveyRepo.CreateResponseWithAnswers(response, answers); err != nil {
		return nil, err
	}

	monitoring.SurveySubmissions.WithLabelValues(survey.Token).Inc()
	return response, nil
}

// validateAnswer prüft eine nicht-leere Antwort gegen die Fragedefinition.
func validateAnswer(q *model.SurveyQuestion, value model.AnswerValue) error {
	switch q.Type {
	case model.SingleChoice:
		if value.OtherText != nil {
			if !q.AllowOther {
				return fmt.Errorf("Frage %q erlaubt keine Freitext-Antwort", q.Label)
			}
			return nil
		}
		if !containsOption(q.OptionList(), *value.Option) {
			return fmt.Errorf("Ungültige Option für Frage %q", q.Label)
		}

	case model.MultipleChoice:
		opts := q.OptionList()
		for _, v := range value.Values {
			if !containsOption(opts, v) {
				return fmt.Errorf("Ungültige Option für Frage %q", q.Label)
			}
		}
		if value.OtherText != nil && !q.AllowOther {
			return fmt.Errorf("Frage %q erlaubt keine Freitext-Antwort", q.Label)
		}

	case model.Scale:
		min, max := q.ScaleBounds()
		if *value.Scale < min || *value.Scale > max {
			return fmt.Errorf("Wert außerhalb der Skala für Frage %q", q.Label)
		}
	}
	return nil
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// --- Verwaltung ---

func (s *SurveyService) CreateSurvey(survey *model.Survey) error {
	if survey.Token == "" {
		survey.Token = model.GenerateUUID()
	}
	for i := range survey.Questions {
		survey.Questions[i].OrderIndex = i
	}
	return s.SurveyRepo.Create(survey)
}

func (s *SurveyService) ListSurveys() ([]model.Survey, error) {
	return s.SurveyRepo.List()
}

func (s *SurveyService) GetSurvey(id uint) (*model.Survey, error) {
	return s.SurveyRepo.FindByID(id)
}

// UpdateSurvey aktualisiert Kopfdaten und ersetzt den Fragenkatalog.
func (s *SurveyService) UpdateSurvey(survey *model.Survey) error {
	existing, err := s.SurveyRepo.FindByID(survey.ID)
	if err != nil {
		return err
	}
	survey.Token = existing.Token
	survey.CreatedAt = existing.CreatedAt

	questions := survey.Questions
	for i := range questions {
		questions[i].OrderIndex = i
	}
	survey.Questions = nil

	if err := s.SurveyRepo.Update(survey); err != nil {
		return err
	}
	return s.SurveyRepo.ReplaceQuestions(survey.ID, questions)
}

// AddQuestion hängt eine Frage ans Ende des Katalogs.
func (s *SurveyService) AddQuestion(surveyID uint, question *model.SurveyQuestion) error {
	if _, err := s.SurveyRepo.FindByID(surveyID); err != nil {
		return err
	}
	max, err := s.SurveyRepo.MaxOrderIndex(surveyID)
	if err != nil {
		return err
	}
	question.SurveyID = surveyID
	question.OrderIndex = max + 1
	return s.SurveyRepo.CreateQuestion(question)
}

func (s *SurveyService) UpdateQuestion(surveyID uint, question *model.SurveyQuestion) error {
	existing, err := s.SurveyRepo.FindQuestion(question.ID)
	if err != nil {
		return err
	}
	if existing.SurveyID != surveyID {
		return gorm.ErrRecordNotFound
	}
	question.SurveyID = existing.SurveyID
	question.OrderIndex = existing.OrderIndex
	question.CreatedAt = existing.CreatedAt
	return s.SurveyRepo.UpdateQuestion(question)
}

func (s *SurveyService) DeleteQuestion(surveyID, questionID uint) error {
	existing, err := s.SurveyRepo.FindQuestion(questionID)
	if err != nil {
		return err
	}
	if existing.SurveyID != surveyID {
		return gorm.ErrRecordNotFound
	}
	return s.SurveyRepo.DeleteQuestion(questionID)
}

func (s *SurveyService) SetActive(id uint, active bool) error {
	survey, err := s.SurveyRepo.FindByID(id)
	if err != nil {
		return err
	}
	survey.IsActive = active
	return s.SurveyRepo.Update(survey)
}

func (s *SurveyService) DeleteSurvey(id uint) error {
	return s.SurveyRepo.Delete(id)
}
