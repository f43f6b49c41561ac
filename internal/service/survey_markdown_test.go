package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMarkdownSurveys(t *testing.T) {
	segments := SplitMarkdownSurveys("Hallo\n\n<Surveyabc123>\n\nDanke!")

	assert.Len(t, segments, 3)
	assert.Equal(t, MarkdownSegment{Type: "text", Text: "Hallo\n\n"}, segments[0])
	assert.Equal(t, MarkdownSegment{Type: "survey", Token: "abc123"}, segments[1])
	assert.Equal(t, MarkdownSegment{Type: "text", Text: "\n\nDanke!"}, segments[2])
}

func TestSplitMarkdownSurveysNoPlaceholder(t *testing.T) {
	segments := SplitMarkdownSurveys("Nur Text, keine Umfrage.")

	assert.Len(t, segments, 1)
	assert.Equal(t, "text", segments[0].Type)
	assert.Equal(t, "Nur Text, keine Umfrage.", segments[0].Text)
}

func TestSplitMarkdownSurveysEmptyContent(t *testing.T) {
	assert.Empty(t, SplitMarkdownSurveys(""))
}

func TestSplitMarkdownSurveysAdjacentPlaceholders(t *testing.T) {
	segments := SplitMarkdownSurveys("<Surveyaaa><Surveybbb>")

	// Kein leeres Textsegment zwischen den Platzhaltern
	assert.Len(t, segments, 2)
	assert.Equal(t, "aaa", segments[0].Token)
	assert.Equal(t, "bbb", segments[1].Token)
}

func TestSplitMarkdownSurveysMalformedStaysText(t *testing.T) {
	for _, content := range []string{
		"<Survey>",
		"<Survey abc>",
		"<Survey(x)>",
		"<survey_abc>",
	} {
		segments := SplitMarkdownSurveys(content)
		assert.Len(t, segments, 1, content)
		assert.Equal(t, "text", segments[0].Type, content)
		assert.Equal(t, content, segments[0].Text, content)
	}
}

func TestSplitMarkdownSurveysRoundTrip(t *testing.T) {
	content := "a<Surveyx_1>b<Surveyx-2>c"
	var rebuilt string
	for _, seg := range SplitMarkdownSurveys(content) {
		if seg.Type == "survey" {
			rebuilt += "<Survey" + seg.Token + ">"
		} else {
			rebuilt += seg.Text
		}
	}
	assert.Equal(t, content, rebuilt)
}

func TestSurveyTokensKeepsDuplicates(t *testing.T) {
	tokens := SurveyTokens("<Surveyfoo> dazwischen <Surveybar> und nochmal <Surveyfoo>")
	assert.Equal(t, []string{"foo", "bar", "foo"}, tokens)
}
