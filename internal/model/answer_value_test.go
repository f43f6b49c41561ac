package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswerValueText(t *testing.T) {
	value, err := DecodeAnswerValue(ShortText, json.RawMessage(`{"value":"Hallo"}`))
	require.NoError(t, err)
	assert.Equal(t, "Hallo", value.Text)

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"Hallo"}`, string(encoded))
}

func TestDecodeAnswerValueSingleChoice(t *testing.T) {
	value, err := DecodeAnswerValue(SingleChoice, json.RawMessage(`{"type":"option","value":"Go"}`))
	require.NoError(t, err)
	require.NotNil(t, value.Option)
	assert.Equal(t, "Go", *value.Option)
	assert.Nil(t, value.OtherText)

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"option","value":"Go"}`, string(encoded))
}

func TestDecodeAnswerValueSingleChoiceOther(t *testing.T) {
	value, err := DecodeAnswerValue(SingleChoice, json.RawMessage(`{"type":"other","value":"Zig"}`))
	require.NoError(t, err)
	require.NotNil(t, value.OtherText)
	assert.Equal(t, "Zig", *value.OtherText)
	assert.Nil(t, value.Option)
}

func TestDecodeAnswerValueSingleChoiceBadTag(t *testing.T) {
	_, err := DecodeAnswerValue(SingleChoice, json.RawMessage(`{"type":"both","value":"x"}`))
	assert.Error(t, err)
}

func TestDecodeAnswerValueMultipleChoice(t *testing.T) {
	value, err := DecodeAnswerValue(MultipleChoice, json.RawMessage(`{"values":["A","B"],"otherText":"C"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, value.Values)
	require.NotNil(t, value.OtherText)
	assert.Equal(t, "C", *value.OtherText)

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"values":["A","B"],"otherText":"C"}`, string(encoded))
}

func TestDecodeAnswerValueScale(t *testing.T) {
	value, err := DecodeAnswerValue(Scale, json.RawMessage(`{"value":7}`))
	require.NoError(t, err)
	require.NotNil(t, value.Scale)
	assert.Equal(t, 7, *value.Scale)
}

func TestDecodeAnswerValueShapeMismatch(t *testing.T) {
	_, err := DecodeAnswerValue(Scale, json.RawMessage(`{"value":"sieben"}`))
	assert.Error(t, err)

	_, err = DecodeAnswerValue(MultipleChoice, json.RawMessage(`{"values":"A"}`))
	assert.Error(t, err)

	_, err = DecodeAnswerValue(ShortText, json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestDecodeAnswerValueUnknownType(t *testing.T) {
	_, err := DecodeAnswerValue(QuestionType("matrix"), json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestAnswerValueIsEmpty(t *testing.T) {
	empty := ""
	other := "eigene Antwort"

	assert.True(t, TextAnswer(ShortText, "   ").IsEmpty())
	assert.False(t, TextAnswer(LongText, "x").IsEmpty())

	assert.True(t, AnswerValue{Kind: SingleChoice}.IsEmpty())
	assert.True(t, OptionAnswer("").IsEmpty())
	assert.False(t, OptionAnswer("A").IsEmpty())
	assert.True(t, OtherAnswer("  ").IsEmpty())
	assert.False(t, OtherAnswer(other).IsEmpty())

	assert.True(t, MultiAnswer(nil, nil).IsEmpty())
	assert.True(t, MultiAnswer(nil, &empty).IsEmpty())
	assert.False(t, MultiAnswer([]string{"A"}, nil).IsEmpty())
	assert.False(t, MultiAnswer(nil, &other).IsEmpty())

	assert.True(t, AnswerValue{Kind: Scale}.IsEmpty())
	assert.False(t, ScaleAnswer(0).IsEmpty())
}
