package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerValue ist die getaggte Summe aller Antwortformen. Pro Fragetyp ist
// genau eine Teilmenge der Felder belegt; Kodierung und Dekodierung prüfen,
// dass Form und Fragetyp zusammenpassen, damit unpassende Payloads gar nicht
// erst entstehen können.
type AnswerValue struct {
	Kind      QuestionType `json:"-"`
	Text      string       `json:"-"` // short_text / long_text
	Option    *string      `json:"-"` // single_choice: gewählte Option
	OtherText *string      `json:"-"` // single_choice / multiple_choice: Freitext "Anderes"
	Values    []string     `json:"-"` // multiple_choice
	Scale     *int         `json:"-"` // scale
}

// Drahtformate, kompatibel zum bestehenden survey_answers-Schema.
type textPayload struct {
	Value string `json:"value"`
}

type singleChoicePayload struct {
	Type  string  `json:"type"` // "option" | "other"
	Value *string `json:"value"`
}

type multipleChoicePayload struct {
	Values    []string `json:"values"`
	OtherText *string  `json:"otherText"`
}

type scalePayload struct {
	Value *int `json:"value"`
}

func TextAnswer(kind QuestionType, value string) AnswerValue {
	return AnswerValue{Kind: kind, Text: value}
}

func OptionAnswer(option string) AnswerValue {
	return AnswerValue{Kind: SingleChoice, Option: &option}
}

func OtherAnswer(text string) AnswerValue {
	return AnswerValue{Kind: SingleChoice, OtherText: &text}
}

func MultiAnswer(values []string, otherText *string) AnswerValue {
	return AnswerValue{Kind: MultipleChoice, Values: values, OtherText: otherText}
}

func ScaleAnswer(value int) AnswerValue {
	return AnswerValue{Kind: Scale, Scale: &value}
}

// IsEmpty meldet, ob die Antwort als "nicht beantwortet" gilt. Pflichtfragen
// mit leerer Antwort werden vor dem Schreiben abgewiesen, optionale leere
// Antworten erzeugen gar keine Zeile.
func (v AnswerValue) IsEmpty() bool {
	switch v.Kind {
	case ShortText, LongText:
		return strings.TrimSpace(v.Text) == ""
	case SingleChoice:
		if v.OtherText != nil && strings.TrimSpace(*v.OtherText) != "" {
			return false
		}
		return v.Option == nil || *v.Option == ""
	case MultipleChoice:
		if len(v.Values) > 0 {
			return false
		}
		return v.OtherText == nil || strings.TrimSpace(*v.OtherText) == ""
	case Scale:
		return v.Scale == nil
	}
	return true
}

// MarshalJSON erzeugt das typabhängige Drahtformat.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ShortText, LongText:
		return json.Marshal(textPayload{Value: v.Text})
	case SingleChoice:
		if v.OtherText != nil {
			return json.Marshal(singleChoicePayload{Type: "other", Value: v.OtherText})
		}
		return json.Marshal(singleChoicePayload{Type: "option", Value: v.Option})
	case MultipleChoice:
		values := v.Values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(multipleChoicePayload{Values: values, OtherText: v.OtherText})
	case Scale:
		return json.Marshal(scalePayload{Value: v.Scale})
	}
	return nil, fmt.Errorf("answer value: unknown question type %q", v.Kind)
}

// DecodeAnswerValue liest ein Antwort-JSON in der für den Fragetyp gültigen
// Form; jede Abweichung ist ein Fehler, kein stilles Raten.
func DecodeAnswerValue(kind QuestionType, raw json.RawMessage) (AnswerValue, error) {
	switch kind {
	case ShortText, LongText:
		var p textPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return AnswerValue{}, fmt.Errorf("answer value: invalid %s payload: %w", kind, err)
		}
		return AnswerValue{Kind: kind, Text: p.Value}, nil

	case SingleChoice:
		var p singleChoicePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return AnswerValue{}, fmt.Errorf("answer value: invalid single_choice payload: %w", err)
		}
		switch p.Type {
		case "option":
			return AnswerValue{Kind: SingleChoice, Option: p.Value}, nil
		case "other":
			return AnswerValue{Kind: SingleChoice, OtherText: p.Value}, nil
		}
		return AnswerValue{}, fmt.Errorf("answer value: invalid single_choice tag %q", p.Type)

	case MultipleChoice:
		var p multipleChoicePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return AnswerValue{}, fmt.Errorf("answer value: invalid multiple_choice payload: %w", err)
		}
		return AnswerValue{Kind: MultipleChoice, Values: p.Values, OtherText: p.OtherText}, nil

	case Scale:
		var p scalePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return AnswerValue{}, fmt.Errorf("answer value: invalid scale payload: %w", err)
		}
		return AnswerValue{Kind: Scale, Scale: p.Value}, nil
	}
	return AnswerValue{}, fmt.Errorf("answer value: unknown question type %q", kind)
}
