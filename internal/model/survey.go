package model

import (
	"encoding/json"
	"time"
)

type QuestionType string

const (
	ShortText      QuestionType = "short_text"
	LongText       QuestionType = "long_text"
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
	Scale          QuestionType = "scale"
)

// DefaultScaleMin/Max greifen, wenn eine Skalenfrage keine Grenzen setzt.
const (
	DefaultScaleMin = 1
	DefaultScaleMax = 10
)

// Survey wird über ihren Token als Platzhalter in Markdown-Inhalte
// eingebettet (<Survey{token}>).
// swagger:model Survey
type Survey struct {
	BaseModel
	Token       string           `gorm:"size:64;uniqueIndex;not null" json:"token"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	IsAnonymous bool             `gorm:"default:false" json:"isAnonymous"`
	IsActive    bool             `gorm:"default:true" json:"isActive"`
	Questions   []SurveyQuestion `gorm:"foreignKey:SurveyID" json:"questions,omitempty"`
}

func (Survey) TableName() string {
	return "surveys"
}

// swagger:model SurveyQuestion
type SurveyQuestion struct {
	BaseModel
	SurveyID    uint            `gorm:"index;not null" json:"surveyId"`
	OrderIndex  int             `gorm:"default:0" json:"orderIndex"`
	Type        QuestionType    `gorm:"size:50;not null" json:"type"`
	Label       string          `gorm:"size:255;not null" json:"label"`
	Description string          `gorm:"type:text" json:"description"`
	Required    bool            `gorm:"default:false" json:"required"`
	Options     json.RawMessage `gorm:"type:json" json:"options,omitempty"` // []string, nur Auswahltypen
	MinValue    *int            `json:"minValue,omitempty"`
	MaxValue    *int            `json:"maxValue,omitempty"`
	AllowOther  bool            `gorm:"default:false" json:"allowOther"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

// OptionList dekodiert die Optionsliste; nil bei Nicht-Auswahltypen oder
// fehlerhaftem JSON.
func (q *SurveyQuestion) OptionList() []string {
	if len(q.Options) == 0 {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}

// ScaleBounds liefert die effektiven Grenzen einer Skalenfrage.
func (q *SurveyQuestion) ScaleBounds() (min, max int) {
	min, max = DefaultScaleMin, DefaultScaleMax
	if q.MinValue != nil {
		min = *q.MinValue
	}
	if q.MaxValue != nil {
		max = *q.MaxValue
	}
	return min, max
}

// SurveyResponse ist eine abgeschlossene Teilnahme; bei anonymen Umfragen
// bleibt UserID leer. Einmal angelegt wird sie nie verändert.
type SurveyResponse struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SurveyID  uint      `gorm:"index;not null" json:"surveyId"`
	UserID    *uint     `gorm:"index" json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

// SurveyAnswer hält genau eine Antwort pro (Response, Frage); das
// Answer-JSON ist die serialisierte Form von AnswerValue.
type SurveyAnswer struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ResponseID uint            `gorm:"index;not null" json:"responseId"`
	QuestionID uint            `gorm:"index;not null" json:"questionId"`
	Answer     json.RawMessage `gorm:"type:json;not null" json:"answer"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (SurveyAnswer) TableName() string {
	return "survey_answers"
}
